package contract

import (
	"context"

	"teamspace-be/internal/entity"

	"github.com/google/uuid"
)

// UserRepository is the shared-database user store. Find methods return
// (nil, nil) when no row matches.
//
// Contracts are storage-agnostic on purpose: the gorm implementations
// apply query specifications internally, and the memory package backs
// the same interfaces for tests.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)
	FindByResetTokenHash(ctx context.Context, tokenHash string) (*entity.User, error)
}
