package memory

import (
	"context"
	"sync"

	"teamspace-be/internal/repository/contract"

	"github.com/google/uuid"
)

type RecordRepositoryFactory struct {
	mu         sync.Mutex
	partitions map[uuid.UUID]*RecordRepository
}

func NewRecordRepositoryFactory() *RecordRepositoryFactory {
	return &RecordRepositoryFactory{
		partitions: make(map[uuid.UUID]*RecordRepository),
	}
}

var _ contract.RecordRepositoryFactory = (*RecordRepositoryFactory)(nil)

func (f *RecordRepositoryFactory) ForWorkspace(ctx context.Context, workspaceId uuid.UUID) (contract.RecordRepository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	repo, ok := f.partitions[workspaceId]
	if !ok {
		repo = NewRecordRepository()
		f.partitions[workspaceId] = repo
	}
	return repo, nil
}

// Drop discards a workspace's partition, mirroring the schema drop of
// the real router.
func (f *RecordRepositoryFactory) Drop(workspaceId uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.partitions, workspaceId)
}
