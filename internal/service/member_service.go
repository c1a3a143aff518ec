package service

import (
	"context"
	"encoding/json"
	"fmt"
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

type IMemberService interface {
	List(ctx context.Context, userId uuid.UUID, workspaceId string) (*dto.ListMembersResponse, error)
	Invite(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.InviteMemberRequest) (*dto.InviteMemberResponse, error)
	Remove(ctx context.Context, userId uuid.UUID, workspaceId string, memberId string) error
	PromoteOwner(ctx context.Context, userId uuid.UUID, workspaceId string, memberId string) error
}

type memberService struct {
	uowFactory       unitofwork.RepositoryFactory
	accessService    IAccessService
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	clientURL        string
	logger           logger.ILogger
}

func NewMemberService(
	uowFactory unitofwork.RepositoryFactory,
	accessService IAccessService,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	clientURL string,
	log logger.ILogger,
) IMemberService {
	return &memberService{
		uowFactory:       uowFactory,
		accessService:    accessService,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		clientURL:        clientURL,
		logger:           log,
	}
}

func (s *memberService) List(ctx context.Context, userId uuid.UUID, workspaceId string) (*dto.ListMembersResponse, error) {
	membership, err := s.accessService.Authorize(ctx, userId, workspaceId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	memberships, err := uow.MembershipRepository().FindAllByWorkspace(ctx, membership.WorkspaceId)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.UserId)
	}
	resolver := newUserResolver(uow.UserRepository())
	summaries, err := resolver.BatchResolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	members := make([]*dto.MemberResponse, 0, len(memberships))
	for _, m := range memberships {
		resp := &dto.MemberResponse{
			UserId: m.UserId,
			Role:   string(m.Role),
			Status: string(entity.UserStatusPending),
		}
		if summary := summaries[m.UserId]; summary != nil {
			resp.Email = summary.Email
			resp.Status = summary.Status
		}
		members = append(members, resp)
	}

	return &dto.ListMembersResponse{
		Members:         members,
		CurrentUserId:   userId,
		CurrentUserRole: string(membership.Role),
	}, nil
}

func (s *memberService) Invite(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.InviteMemberRequest) (*dto.InviteMemberResponse, error) {
	membership, err := s.accessService.Authorize(ctx, userId, workspaceId)
	if err != nil {
		return nil, err
	}
	if !membership.Can(entity.ActionManageMembers) {
		return nil, apperror.Forbidden("only owners can manage members")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, apperror.Validation("email is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := uow.WorkspaceRepository().FindByID(ctx, membership.WorkspaceId)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, apperror.NotFound("workspace not found")
	}

	user, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Placeholder account; it becomes active once the invitee
		// registers or resets a password with this email.
		user = &entity.User{
			Id:        uuid.New(),
			Email:     email,
			Status:    entity.UserStatusPending,
			CreatedAt: time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	}

	existing, err := uow.MembershipRepository().FindByPair(ctx, membership.WorkspaceId, user.Id)
	if err != nil {
		return nil, err
	}
	alreadyMember := existing != nil
	if !alreadyMember {
		if err := uow.MembershipRepository().Create(ctx, &entity.Membership{
			Id:          uuid.New(),
			WorkspaceId: membership.WorkspaceId,
			UserId:      user.Id,
			Role:        entity.MemberRoleEditor,
			CreatedAt:   time.Now(),
		}); err != nil {
			return nil, err
		}
	}

	s.publishMail(dto.MailMessage{
		Kind:          dto.MailKindInvite,
		To:            user.Email,
		WorkspaceName: workspace.Name,
		URL:           fmt.Sprintf("%s/w/%s", s.clientURL, workspace.Id),
	})

	if err := s.eventPublisher.Publish(ctx, events.New(events.TypeMemberInvited, map[string]interface{}{
		"workspace_id": workspace.Id.String(),
		"user_id":      user.Id.String(),
		"invited_by":   userId.String(),
	})); err != nil {
		s.logger.Warn("MemberService", "Failed to publish audit event", map[string]interface{}{"error": err.Error()})
	}

	return &dto.InviteMemberResponse{
		UserId:        user.Id,
		Status:        string(user.ResolveStatus()),
		AlreadyMember: alreadyMember,
	}, nil
}

func (s *memberService) Remove(ctx context.Context, userId uuid.UUID, workspaceId string, memberId string) error {
	membership, err := s.accessService.Authorize(ctx, userId, workspaceId)
	if err != nil {
		return err
	}
	if !membership.Can(entity.ActionManageMembers) {
		return apperror.Forbidden("only owners can manage members")
	}

	targetId, err := uuid.Parse(memberId)
	if err != nil {
		return apperror.InvalidIdentifier("invalid member id")
	}
	if targetId == userId {
		return apperror.Validation("owners cannot remove themselves")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	deleted, err := uow.MembershipRepository().DeleteByPair(ctx, membership.WorkspaceId, targetId)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperror.NotFound("workspace member not found")
	}

	if err := s.eventPublisher.Publish(ctx, events.New(events.TypeMemberRemoved, map[string]interface{}{
		"workspace_id": membership.WorkspaceId.String(),
		"user_id":      targetId.String(),
		"removed_by":   userId.String(),
	})); err != nil {
		s.logger.Warn("MemberService", "Failed to publish audit event", map[string]interface{}{"error": err.Error()})
	}

	return nil
}

func (s *memberService) PromoteOwner(ctx context.Context, userId uuid.UUID, workspaceId string, memberId string) error {
	membership, err := s.accessService.Authorize(ctx, userId, workspaceId)
	if err != nil {
		return err
	}
	if !membership.Can(entity.ActionManageMembers) {
		return apperror.Forbidden("only owners can manage members")
	}

	targetId, err := uuid.Parse(memberId)
	if err != nil {
		return apperror.InvalidIdentifier("invalid member id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	target, err := uow.MembershipRepository().FindByPair(ctx, membership.WorkspaceId, targetId)
	if err != nil {
		return err
	}
	if target == nil {
		return apperror.NotFound("workspace member not found")
	}
	if target.Role == entity.MemberRoleOwner {
		return nil
	}

	target.Role = entity.MemberRoleOwner
	now := time.Now()
	target.UpdatedAt = &now
	if err := uow.MembershipRepository().Update(ctx, target); err != nil {
		return err
	}

	if err := s.eventPublisher.Publish(ctx, events.New(events.TypeMemberPromoted, map[string]interface{}{
		"workspace_id": membership.WorkspaceId.String(),
		"user_id":      targetId.String(),
		"promoted_by":  userId.String(),
	})); err != nil {
		s.logger.Warn("MemberService", "Failed to publish audit event", map[string]interface{}{"error": err.Error()})
	}

	return nil
}

func (s *memberService) publishMail(msg dto.MailMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("MemberService", "Failed to marshal mail message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(context.Background(), payload); err != nil {
		s.logger.Error("MemberService", "Failed to publish mail message", map[string]interface{}{
			"to":    msg.To,
			"error": err.Error(),
		})
	}
}
