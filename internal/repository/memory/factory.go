package memory

import (
	"context"

	"teamspace-be/internal/repository/contract"
	"teamspace-be/internal/repository/unitofwork"
)

// Factory satisfies unitofwork.RepositoryFactory over shared in-memory
// repositories. Transactions are accepted and ignored; tests exercise
// service semantics, not storage atomicity.
type Factory struct {
	Users       *UserRepository
	Workspaces  *WorkspaceRepository
	Memberships *MembershipRepository
}

func NewFactory() *Factory {
	return &Factory{
		Users:       NewUserRepository(),
		Workspaces:  NewWorkspaceRepository(),
		Memberships: NewMembershipRepository(),
	}
}

var _ unitofwork.RepositoryFactory = (*Factory)(nil)

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{factory: f}
}

type unitOfWork struct {
	factory *Factory
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return u.factory.Users
}

func (u *unitOfWork) WorkspaceRepository() contract.WorkspaceRepository {
	return u.factory.Workspaces
}

func (u *unitOfWork) MembershipRepository() contract.MembershipRepository {
	return u.factory.Memberships
}
