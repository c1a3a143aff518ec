package contract

import (
	"context"
	"time"

	"teamspace-be/internal/entity"

	"github.com/google/uuid"
)

// RecordListQuery carries pre-validated list parameters. SearchFields
// come from the service's field lookup table; an empty slice or query
// disables filtering.
type RecordListQuery struct {
	Search       string
	SearchFields []string
	Limit        int
	Offset       int
}

// RecordBulkChanges is applied to every record matched by UpdateByIDs.
// Nil State leaves state untouched; the audit stamps always apply.
type RecordBulkChanges struct {
	State     *entity.RecordState
	UpdatedBy *uuid.UUID
	UpdatedAt time.Time
}

// RecordRepository operates strictly inside one workspace partition;
// instances are obtained per workspace from a RecordRepositoryFactory.
type RecordRepository interface {
	Create(ctx context.Context, record *entity.Record) error
	Update(ctx context.Context, record *entity.Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)
	// Delete returns the number of rows removed (0 or 1).
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	UpdateByIDs(ctx context.Context, ids []uuid.UUID, changes RecordBulkChanges) (int64, error)
	// List returns one page ordered by created_at DESC, id DESC, plus
	// the total match count.
	List(ctx context.Context, q RecordListQuery) ([]*entity.Record, int64, error)
}

// RecordRepositoryFactory resolves the repository bound to a
// workspace's dedicated partition.
type RecordRepositoryFactory interface {
	ForWorkspace(ctx context.Context, workspaceId uuid.UUID) (RecordRepository, error)
}
