package contract

import (
	"context"

	"teamspace-be/internal/entity"

	"github.com/google/uuid"
)

type MembershipRepository interface {
	Create(ctx context.Context, membership *entity.Membership) error
	Update(ctx context.Context, membership *entity.Membership) error
	// FindByPair resolves the unique (workspace, user) membership,
	// (nil, nil) when the user is not a member.
	FindByPair(ctx context.Context, workspaceId, userId uuid.UUID) (*entity.Membership, error)
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Membership, error)
	FindAllByWorkspace(ctx context.Context, workspaceId uuid.UUID) ([]*entity.Membership, error)
	// DeleteByPair returns the number of rows removed (0 or 1).
	DeleteByPair(ctx context.Context, workspaceId, userId uuid.UUID) (int64, error)
	DeleteAllByWorkspace(ctx context.Context, workspaceId uuid.UUID) error
}
