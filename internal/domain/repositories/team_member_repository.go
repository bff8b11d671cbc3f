package repositories

import (
	"context"

	"github.com/google/uuid"
	"press-kit.backend/internal/domain/entities"
)

type TeamMemberRepository interface {
	List(ctx context.Context) ([]*entities.TeamMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error)
	Create(ctx context.Context, member *entities.TeamMember) error
	Update(ctx context.Context, member *entities.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}
