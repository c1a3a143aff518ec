package service

import (
	"context"
	"strings"
	"time"

	"teamspace-be/internal/dto"
	"teamspace-be/internal/entity"
	"teamspace-be/internal/pkg/apperror"
	"teamspace-be/internal/pkg/logger"
	"teamspace-be/internal/repository/unitofwork"
	"teamspace-be/pkg/events"
	pktNats "teamspace-be/pkg/nats"

	"github.com/google/uuid"
)

// PartitionManager provisions and tears down workspace partitions.
// Implemented by partition.Router; tests substitute an in-memory one.
type PartitionManager interface {
	Provision(ctx context.Context, workspaceId uuid.UUID) error
	Drop(ctx context.Context, workspaceId uuid.UUID) error
}

type IWorkspaceService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateWorkspaceRequest) (*dto.CreateWorkspaceResponse, error)
	Get(ctx context.Context, userId uuid.UUID, workspaceId string) (*dto.WorkspaceResponse, error)
	Update(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.UpdateWorkspaceRequest) error
	Delete(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.DeleteWorkspaceRequest) error
	List(ctx context.Context, userId uuid.UUID) ([]*dto.WorkspaceResponse, error)
}

type workspaceService struct {
	uowFactory     unitofwork.RepositoryFactory
	accessService  IAccessService
	partitions     PartitionManager
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewWorkspaceService(
	uowFactory unitofwork.RepositoryFactory,
	accessService IAccessService,
	partitions PartitionManager,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IWorkspaceService {
	return &workspaceService{
		uowFactory:     uowFactory,
		accessService:  accessService,
		partitions:     partitions,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *workspaceService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateWorkspaceRequest) (*dto.CreateWorkspaceResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace := &entity.Workspace{
		Id:        uuid.New(),
		Name:      name,
		CreatedBy: userId,
		CreatedAt: time.Now(),
	}
	membership := &entity.Membership{
		Id:          uuid.New(),
		WorkspaceId: workspace.Id,
		UserId:      userId,
		Role:        entity.MemberRoleOwner,
		CreatedAt:   time.Now(),
	}

	// Workspace row and owner membership commit together; a member-less
	// workspace must never become visible.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.WorkspaceRepository().Create(ctx, workspace); err != nil {
		return nil, err
	}
	if err := uow.MembershipRepository().Create(ctx, membership); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.partitions.Provision(ctx, workspace.Id); err != nil {
		s.logger.Error("WorkspaceService", "Failed to provision workspace partition", map[string]interface{}{
			"workspace_id": workspace.Id.String(),
			"error":        err.Error(),
		})
		return nil, err
	}

	s.publishAudit(ctx, events.TypeWorkspaceCreated, map[string]interface{}{
		"workspace_id": workspace.Id.String(),
		"user_id":      userId.String(),
	})

	return &dto.CreateWorkspaceResponse{Id: workspace.Id}, nil
}

func (s *workspaceService) Get(ctx context.Context, userId uuid.UUID, workspaceId string) (*dto.WorkspaceResponse, error) {
	membership, err := s.accessService.Authorize(ctx, userId, workspaceId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := uow.WorkspaceRepository().FindByID(ctx, membership.WorkspaceId)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		// Membership without metadata means the shared DB is
		// inconsistent; report the workspace, not the membership.
		return nil, apperror.NotFound("workspace not found")
	}

	return &dto.WorkspaceResponse{
		Id:        workspace.Id,
		Name:      workspace.Name,
		Role:      string(membership.Role),
		CreatedAt: workspace.CreatedAt,
		UpdatedAt: workspace.UpdatedAt,
	}, nil
}

func (s *workspaceService) Update(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.UpdateWorkspaceRequest) error {
	membership, err := s.accessService.Authorize(ctx, userId, workspaceId)
	if err != nil {
		return err
	}
	if !membership.Can(entity.ActionUpdateWorkspace) {
		return apperror.Forbidden("no access to workspace")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := uow.WorkspaceRepository().FindByID(ctx, membership.WorkspaceId)
	if err != nil {
		return err
	}
	if workspace == nil {
		return apperror.NotFound("workspace not found")
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		workspace.Name = name
	}
	now := time.Now()
	workspace.UpdatedAt = &now

	return uow.WorkspaceRepository().Update(ctx, workspace)
}

func (s *workspaceService) Delete(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.DeleteWorkspaceRequest) error {
	membership, err := s.accessService.Authorize(ctx, userId, workspaceId)
	if err != nil {
		return err
	}
	if !membership.Can(entity.ActionDeleteWorkspace) {
		return apperror.Forbidden("only owners can delete workspaces")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	workspace, err := uow.WorkspaceRepository().FindByID(ctx, membership.WorkspaceId)
	if err != nil {
		return err
	}
	if workspace == nil {
		return apperror.NotFound("workspace not found")
	}

	// Deliberate friction before a destructive action.
	if req.ConfirmationName != workspace.Name {
		return apperror.Validation("workspace name does not match confirmation")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.WorkspaceRepository().Delete(ctx, workspace.Id); err != nil {
		return err
	}
	if err := uow.MembershipRepository().DeleteAllByWorkspace(ctx, workspace.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	// Partition teardown is out of band: the workspace is gone either
	// way, an orphaned schema is an operational cleanup task.
	if err := s.partitions.Drop(ctx, workspace.Id); err != nil {
		s.logger.Error("WorkspaceService", "Failed to drop workspace partition", map[string]interface{}{
			"workspace_id": workspace.Id.String(),
			"error":        err.Error(),
		})
		s.publishAudit(ctx, events.TypePartitionOrphan, map[string]interface{}{
			"workspace_id": workspace.Id.String(),
		})
	}

	s.publishAudit(ctx, events.TypeWorkspaceDeleted, map[string]interface{}{
		"workspace_id": workspace.Id.String(),
		"user_id":      userId.String(),
	})

	return nil
}

func (s *workspaceService) List(ctx context.Context, userId uuid.UUID) ([]*dto.WorkspaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	memberships, err := uow.MembershipRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.WorkspaceId)
	}

	workspaces, err := uow.WorkspaceRepository().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*entity.Workspace, len(workspaces))
	for _, w := range workspaces {
		byId[w.Id] = w
	}

	result := make([]*dto.WorkspaceResponse, 0, len(memberships))
	for _, m := range memberships {
		w, ok := byId[m.WorkspaceId]
		if !ok {
			continue
		}
		result = append(result, &dto.WorkspaceResponse{
			Id:        w.Id,
			Name:      w.Name,
			Role:      string(m.Role),
			CreatedAt: w.CreatedAt,
			UpdatedAt: w.UpdatedAt,
		})
	}
	return result, nil
}

func (s *workspaceService) publishAudit(ctx context.Context, eventType string, data map[string]interface{}) {
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		s.logger.Warn("WorkspaceService", "Failed to publish audit event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
