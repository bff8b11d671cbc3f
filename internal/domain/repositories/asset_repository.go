package repositories

import (
	"context"

	"press-kit.backend/internal/domain/entities"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *entities.Asset) error
	List(ctx context.Context) ([]*entities.Asset, error)
}
