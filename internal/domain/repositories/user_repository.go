package repositories

import (
	"context"

	"github.com/google/uuid"
	"press-kit.backend/internal/domain/entities"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) error
}
