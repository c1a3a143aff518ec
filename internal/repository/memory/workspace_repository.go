package memory

import (
	"context"
	"sync"

	"teamspace-be/internal/entity"
	"teamspace-be/internal/repository/contract"

	"github.com/google/uuid"
)

type WorkspaceRepository struct {
	mu         sync.RWMutex
	workspaces map[uuid.UUID]*entity.Workspace
}

func NewWorkspaceRepository() *WorkspaceRepository {
	return &WorkspaceRepository{
		workspaces: make(map[uuid.UUID]*entity.Workspace),
	}
}

var _ contract.WorkspaceRepository = (*WorkspaceRepository)(nil)

func cloneWorkspace(w *entity.Workspace) *entity.Workspace {
	if w == nil {
		return nil
	}
	c := *w
	return &c
}

func (r *WorkspaceRepository) Create(ctx context.Context, workspace *entity.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workspaces[workspace.Id] = cloneWorkspace(workspace)
	return nil
}

func (r *WorkspaceRepository) Update(ctx context.Context, workspace *entity.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workspaces[workspace.Id] = cloneWorkspace(workspace)
	return nil
}

func (r *WorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workspaces, id)
	return nil
}

func (r *WorkspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneWorkspace(r.workspaces[id]), nil
}

func (r *WorkspaceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*entity.Workspace, 0, len(ids))
	for _, id := range ids {
		if w, ok := r.workspaces[id]; ok {
			result = append(result, cloneWorkspace(w))
		}
	}
	return result, nil
}
