// Package partition maps workspace identifiers to their dedicated
// record partitions. Each workspace owns a Postgres schema named
// ws_<32 hex digits of the workspace uuid>; records never leave that
// schema and no record query runs without a resolved handle.
package partition

import (
	"context"
	"fmt"
	"strings"

	"teamspace-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const schemaPrefix = "ws_"

// SchemaName derives the partition schema for a workspace. The mapping
// is deterministic and collision-free: one uuid, one schema. The name
// is built from uuid hex only, so it is safe to interpolate into DDL.
func SchemaName(workspaceId uuid.UUID) string {
	return schemaPrefix + strings.ReplaceAll(workspaceId.String(), "-", "")
}

// Handle is a resolved partition. It is cheap to copy around and safe
// for concurrent use; all state lives in the underlying connection.
type Handle struct {
	schema string
	db     *gorm.DB
}

func (h *Handle) Schema() string {
	return h.schema
}

// Records returns a query builder bound to the partition's records
// table.
func (h *Handle) Records(ctx context.Context) *gorm.DB {
	return h.db.WithContext(ctx).Table(h.schema + ".records")
}

// Router resolves workspace ids to partition handles. Resolution is
// pure; handles are cached process-wide for reuse.
type Router struct {
	db      *gorm.DB
	handles *cache.Cache
}

func NewRouter(db *gorm.DB) *Router {
	return &Router{
		db:      db,
		handles: cache.New(cache.NoExpiration, 0),
	}
}

func (r *Router) Resolve(workspaceId uuid.UUID) (*Handle, error) {
	if r == nil || r.db == nil {
		return nil, apperror.Configuration("workspace database connection is not configured")
	}

	schema := SchemaName(workspaceId)
	if x, found := r.handles.Get(schema); found {
		return x.(*Handle), nil
	}

	h := &Handle{schema: schema, db: r.db}
	r.handles.Set(schema, h, cache.NoExpiration)
	return h, nil
}

// Provision creates the partition schema and its records table. It is
// idempotent and called once per workspace, right after the workspace
// row is committed.
func (r *Router) Provision(ctx context.Context, workspaceId uuid.UUID) error {
	h, err := r.Resolve(workspaceId)
	if err != nil {
		return err
	}

	stmts := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, h.schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.records (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			title varchar(255) NOT NULL,
			state varchar(32) NOT NULL DEFAULT 'draft',
			created_by uuid,
			updated_by uuid,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz
		)`, h.schema),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_records_created_at_idx ON %s.records (created_at DESC, id DESC)`, h.schema, h.schema),
	}

	for _, stmt := range stmts {
		if err := r.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// Drop removes a workspace's partition and evicts its cached handle.
// Runs out of band of the shared-database transaction that deletes the
// workspace row; the caller decides how to surface failures.
func (r *Router) Drop(ctx context.Context, workspaceId uuid.UUID) error {
	if r == nil || r.db == nil {
		return apperror.Configuration("workspace database connection is not configured")
	}

	schema := SchemaName(workspaceId)
	r.handles.Delete(schema)
	return r.db.WithContext(ctx).Exec(fmt.Sprintf(`DROP SCHEMA IF EXISTS %s CASCADE`, schema)).Error
}
