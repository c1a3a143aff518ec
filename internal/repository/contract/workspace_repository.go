package contract

import (
	"context"

	"teamspace-be/internal/entity"

	"github.com/google/uuid"
)

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *entity.Workspace) error
	Update(ctx context.Context, workspace *entity.Workspace) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Workspace, error)
}
