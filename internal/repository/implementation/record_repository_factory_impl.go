package implementation

import (
	"context"

	"teamspace-be/internal/partition"
	"teamspace-be/internal/repository/contract"

	"github.com/google/uuid"
)

type RecordRepositoryFactoryImpl struct {
	router *partition.Router
}

func NewRecordRepositoryFactory(router *partition.Router) contract.RecordRepositoryFactory {
	return &RecordRepositoryFactoryImpl{router: router}
}

func (f *RecordRepositoryFactoryImpl) ForWorkspace(ctx context.Context, workspaceId uuid.UUID) (contract.RecordRepository, error) {
	handle, err := f.router.Resolve(workspaceId)
	if err != nil {
		return nil, err
	}
	return NewRecordRepository(handle), nil
}
