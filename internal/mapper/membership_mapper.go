package mapper

import (
	"time"

	"teamspace-be/internal/entity"
	"teamspace-be/internal/model"
)

type MembershipMapper struct{}

func NewMembershipMapper() *MembershipMapper {
	return &MembershipMapper{}
}

func (m *MembershipMapper) ToEntity(wm *model.WorkspaceMember) *entity.Membership {
	if wm == nil {
		return nil
	}

	var updatedAt *time.Time
	if !wm.UpdatedAt.IsZero() {
		t := wm.UpdatedAt
		updatedAt = &t
	}

	return &entity.Membership{
		Id:          wm.Id,
		WorkspaceId: wm.WorkspaceId,
		UserId:      wm.UserId,
		Role:        entity.MemberRole(wm.Role),
		CreatedAt:   wm.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *MembershipMapper) ToModel(mb *entity.Membership) *model.WorkspaceMember {
	if mb == nil {
		return nil
	}

	var updatedAt time.Time
	if mb.UpdatedAt != nil {
		updatedAt = *mb.UpdatedAt
	}

	return &model.WorkspaceMember{
		Id:          mb.Id,
		WorkspaceId: mb.WorkspaceId,
		UserId:      mb.UserId,
		Role:        string(mb.Role),
		CreatedAt:   mb.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *MembershipMapper) ToEntities(members []*model.WorkspaceMember) []*entity.Membership {
	entities := make([]*entity.Membership, len(members))
	for i, wm := range members {
		entities[i] = m.ToEntity(wm)
	}
	return entities
}
