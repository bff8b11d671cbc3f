package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"press-kit.backend/internal/domain/entities"
	"press-kit.backend/internal/infrastructure/models"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, asset *entities.Asset) error {
	m := &models.Asset{
		ID:          asset.ID,
		Path:        asset.Path,
		URL:         asset.URL,
		ContentType: asset.ContentType,
		Size:        asset.Size,
		Kind:        string(asset.Kind),
		UploadedBy:  asset.UploadedBy.Ptr(),
		CreatedAt:   asset.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	asset.ID = m.ID
	asset.CreatedAt = m.CreatedAt
	return nil
}

func (r *AssetRepository) List(ctx context.Context) ([]*entities.Asset, error) {
	var ms []models.Asset
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Asset, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		items = append(items, &entities.Asset{
			ID:          m.ID,
			Path:        m.Path,
			URL:         m.URL,
			ContentType: m.ContentType,
			Size:        m.Size,
			Kind:        entities.AttachmentType(m.Kind),
			UploadedBy:  null.StringFromPtr(m.UploadedBy),
			CreatedAt:   m.CreatedAt,
		})
	}
	return items, nil
}
