package unitofwork

import (
	"context"

	"teamspace-be/internal/repository/contract"
)

// UnitOfWork scopes shared-database repositories to one request and,
// when Begin is called, to one transaction. Record repositories are
// not part of it: they bind to workspace partitions and are obtained
// from a contract.RecordRepositoryFactory.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	WorkspaceRepository() contract.WorkspaceRepository
	MembershipRepository() contract.MembershipRepository
}
