package repositories

import (
	"context"

	"github.com/google/uuid"
	"press-kit.backend/internal/domain/entities"
)

// PressReleaseRepository has two listing modes: the public path only ever
// sees published records ordered by publish date, the admin path sees drafts
// too, ordered by creation time.
type PressReleaseRepository interface {
	ListPublished(ctx context.Context) ([]*entities.PressRelease, error)
	ListAdmin(ctx context.Context) ([]*entities.PressRelease, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PressRelease, error)
	Create(ctx context.Context, release *entities.PressRelease) error
	Update(ctx context.Context, release *entities.PressRelease) error
	Delete(ctx context.Context, id uuid.UUID) error
}
