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

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *entities.TeamMember) error {
	m, err := r.toModel(member)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	member.ID = m.ID
	member.CreatedAt = m.CreatedAt
	member.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	var m models.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

func (r *TeamMemberRepository) List(ctx context.Context) ([]*entities.TeamMember, error) {
	var ms []models.TeamMember
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.TeamMember, 0, len(ms))
	for i := range ms {
		e, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func (r *TeamMemberRepository) Update(ctx context.Context, member *entities.TeamMember) error {
	bookLinks, err := json.Marshal(member.BookLinks)
	if err != nil {
		return err
	}
	socialLinks, err := json.Marshal(member.SocialLinks)
	if err != nil {
		return err
	}

	// created_at is deliberately absent: creation time is immutable.
	updates := map[string]interface{}{
		"name":          member.Name,
		"bio":           member.Bio,
		"photo_url":     member.PhotoURL,
		"connect_email": member.ConnectEmail.Ptr(),
		"book_links":    string(bookLinks),
		"social_links":  string(socialLinks),
		"updated_at":    time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("id = ?", member.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamMemberRepository) toEntity(m *models.TeamMember) (*entities.TeamMember, error) {
	bookLinks := []entities.BookLink{}
	if m.BookLinks != "" {
		if err := json.Unmarshal([]byte(m.BookLinks), &bookLinks); err != nil {
			return nil, err
		}
	}
	socialLinks := []entities.SocialLink{}
	if m.SocialLinks != "" {
		if err := json.Unmarshal([]byte(m.SocialLinks), &socialLinks); err != nil {
			return nil, err
		}
	}
	return &entities.TeamMember{
		ID:           m.ID,
		Name:         m.Name,
		Bio:          m.Bio,
		PhotoURL:     m.PhotoURL,
		ConnectEmail: null.StringFromPtr(m.ConnectEmail),
		BookLinks:    bookLinks,
		SocialLinks:  socialLinks,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

func (r *TeamMemberRepository) toModel(e *entities.TeamMember) (*models.TeamMember, error) {
	bookLinks, err := json.Marshal(e.BookLinks)
	if err != nil {
		return nil, err
	}
	socialLinks, err := json.Marshal(e.SocialLinks)
	if err != nil {
		return nil, err
	}
	return &models.TeamMember{
		ID:           e.ID,
		Name:         e.Name,
		Bio:          e.Bio,
		PhotoURL:     e.PhotoURL,
		ConnectEmail: e.ConnectEmail.Ptr(),
		BookLinks:    string(bookLinks),
		SocialLinks:  string(socialLinks),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}, nil
}
