package service

import (
	"context"

	"teamspace-be/internal/entity"
	"teamspace-be/internal/pkg/apperror"
	"teamspace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAccessService interface {
	// Authorize resolves the caller's membership in a workspace.
	// The workspace id arrives as the raw path segment; it is parsed
	// before any lookup. A missing membership is always reported as
	// forbidden so callers learn nothing about workspace existence.
	Authorize(ctx context.Context, userId uuid.UUID, workspaceId string) (*entity.Membership, error)
}

type accessService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAccessService(uowFactory unitofwork.RepositoryFactory) IAccessService {
	return &accessService{
		uowFactory: uowFactory,
	}
}

func (s *accessService) Authorize(ctx context.Context, userId uuid.UUID, workspaceId string) (*entity.Membership, error) {
	wsId, err := uuid.Parse(workspaceId)
	if err != nil {
		return nil, apperror.InvalidIdentifier("invalid workspace id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	membership, err := uow.MembershipRepository().FindByPair(ctx, wsId, userId)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, apperror.Forbidden("no access to workspace")
	}

	return membership, nil
}
