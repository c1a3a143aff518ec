package memory

import (
	"context"
	"sort"
	"sync"

	"teamspace-be/internal/entity"
	"teamspace-be/internal/repository/contract"

	"github.com/google/uuid"
)

type memberKey struct {
	workspaceId uuid.UUID
	userId      uuid.UUID
}

type MembershipRepository struct {
	mu      sync.RWMutex
	members map[memberKey]*entity.Membership
}

func NewMembershipRepository() *MembershipRepository {
	return &MembershipRepository{
		members: make(map[memberKey]*entity.Membership),
	}
}

var _ contract.MembershipRepository = (*MembershipRepository)(nil)

func cloneMembership(m *entity.Membership) *entity.Membership {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func sortByCreatedAt(members []*entity.Membership) {
	sort.Slice(members, func(i, j int) bool {
		return members[i].CreatedAt.Before(members[j].CreatedAt)
	})
}

func (r *MembershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := memberKey{membership.WorkspaceId, membership.UserId}
	r.members[key] = cloneMembership(membership)
	return nil
}

func (r *MembershipRepository) Update(ctx context.Context, membership *entity.Membership) error {
	return r.Create(ctx, membership)
}

func (r *MembershipRepository) FindByPair(ctx context.Context, workspaceId, userId uuid.UUID) (*entity.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneMembership(r.members[memberKey{workspaceId, userId}]), nil
}

func (r *MembershipRepository) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*entity.Membership, 0)
	for _, m := range r.members {
		if m.UserId == userId {
			result = append(result, cloneMembership(m))
		}
	}
	sortByCreatedAt(result)
	return result, nil
}

func (r *MembershipRepository) FindAllByWorkspace(ctx context.Context, workspaceId uuid.UUID) ([]*entity.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*entity.Membership, 0)
	for _, m := range r.members {
		if m.WorkspaceId == workspaceId {
			result = append(result, cloneMembership(m))
		}
	}
	sortByCreatedAt(result)
	return result, nil
}

func (r *MembershipRepository) DeleteByPair(ctx context.Context, workspaceId, userId uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := memberKey{workspaceId, userId}
	if _, ok := r.members[key]; !ok {
		return 0, nil
	}
	delete(r.members, key)
	return 1, nil
}

func (r *MembershipRepository) DeleteAllByWorkspace(ctx context.Context, workspaceId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.members {
		if key.workspaceId == workspaceId {
			delete(r.members, key)
		}
	}
	return nil
}
