package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"press-kit.backend/internal/domain/entities"
	domainerrors "press-kit.backend/internal/domain/errors"
	"press-kit.backend/internal/infrastructure/models"
)

type PressReleaseRepository struct {
	db *gorm.DB
}

func NewPressReleaseRepository(db *gorm.DB) *PressReleaseRepository {
	return &PressReleaseRepository{db: db}
}

func (r *PressReleaseRepository) Create(ctx context.Context, release *entities.PressRelease) error {
	m, err := r.toModel(release)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	release.ID = m.ID
	release.CreatedAt = m.CreatedAt
	release.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *PressReleaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PressRelease, error) {
	var m models.PressRelease
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

// ListPublished is the public listing path: drafts are never visible here.
func (r *PressReleaseRepository) ListPublished(ctx context.Context) ([]*entities.PressRelease, error) {
	var ms []models.PressRelease
	if err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("publish_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms)
}

// ListAdmin is the admin listing path: all records including drafts.
func (r *PressReleaseRepository) ListAdmin(ctx context.Context) ([]*entities.PressRelease, error) {
	var ms []models.PressRelease
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms)
}

func (r *PressReleaseRepository) Update(ctx context.Context, release *entities.PressRelease) error {
	tags, err := json.Marshal(release.Tags)
	if err != nil {
		return err
	}
	attachments, err := json.Marshal(release.Attachments)
	if err != nil {
		return err
	}

	// created_at is deliberately absent: creation time is immutable.
	updates := map[string]interface{}{
		"title":              release.Title,
		"subtitle":           release.Subtitle.Ptr(),
		"content":            release.Content,
		"excerpt":            release.Excerpt,
		"publish_date":       release.PublishDate,
		"author":             release.Author.Ptr(),
		"category":           release.Category.Ptr(),
		"tags":               string(tags),
		"featured_image_url": release.FeaturedImageURL.Ptr(),
		"attachments":        string(attachments),
		"is_published":       release.IsPublished,
		"updated_at":         time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.PressRelease{}).
		Where("id = ?", release.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *PressReleaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PressRelease{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *PressReleaseRepository) toEntities(ms []models.PressRelease) ([]*entities.PressRelease, error) {
	items := make([]*entities.PressRelease, 0, len(ms))
	for i := range ms {
		e, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func (r *PressReleaseRepository) toEntity(m *models.PressRelease) (*entities.PressRelease, error) {
	tags := []string{}
	if m.Tags != "" {
		if err := json.Unmarshal([]byte(m.Tags), &tags); err != nil {
			return nil, err
		}
	}
	attachments := []entities.PressReleaseAttachment{}
	if m.Attachments != "" {
		if err := json.Unmarshal([]byte(m.Attachments), &attachments); err != nil {
			return nil, err
		}
	}
	return &entities.PressRelease{
		ID:               m.ID,
		Title:            m.Title,
		Subtitle:         null.StringFromPtr(m.Subtitle),
		Content:          m.Content,
		Excerpt:          m.Excerpt,
		PublishDate:      m.PublishDate,
		Author:           null.StringFromPtr(m.Author),
		Category:         null.StringFromPtr(m.Category),
		Tags:             tags,
		FeaturedImageURL: null.StringFromPtr(m.FeaturedImageURL),
		Attachments:      attachments,
		IsPublished:      m.IsPublished,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

func (r *PressReleaseRepository) toModel(e *entities.PressRelease) (*models.PressRelease, error) {
	tags, err := json.Marshal(e.Tags)
	if err != nil {
		return nil, err
	}
	attachments, err := json.Marshal(e.Attachments)
	if err != nil {
		return nil, err
	}
	return &models.PressRelease{
		ID:               e.ID,
		Title:            e.Title,
		Subtitle:         e.Subtitle.Ptr(),
		Content:          e.Content,
		Excerpt:          e.Excerpt,
		PublishDate:      e.PublishDate,
		Author:           e.Author.Ptr(),
		Category:         e.Category.Ptr(),
		Tags:             string(tags),
		FeaturedImageURL: e.FeaturedImageURL.Ptr(),
		Attachments:      string(attachments),
		IsPublished:      e.IsPublished,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}, nil
}
