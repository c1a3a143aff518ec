package entity

import (
	"time"

	"github.com/google/uuid"
)

type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleEditor MemberRole = "editor"
)

// MemberAction is a capability checked against a membership's role.
// New roles only need an entry in rolePermissions.
type MemberAction string

const (
	ActionManageMembers   MemberAction = "manage_members"
	ActionDeleteWorkspace MemberAction = "delete_workspace"
	ActionUpdateWorkspace MemberAction = "update_workspace"
	ActionReadWorkspace   MemberAction = "read_workspace"
	ActionManageRecords   MemberAction = "manage_records"
)

var rolePermissions = map[MemberRole]map[MemberAction]bool{
	MemberRoleOwner: {
		ActionManageMembers:   true,
		ActionDeleteWorkspace: true,
		ActionUpdateWorkspace: true,
		ActionReadWorkspace:   true,
		ActionManageRecords:   true,
	},
	MemberRoleEditor: {
		ActionUpdateWorkspace: true,
		ActionReadWorkspace:   true,
		ActionManageRecords:   true,
	},
}

// Membership grants a user a role inside one workspace. The
// (WorkspaceId, UserId) pair is unique.
type Membership struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	UserId      uuid.UUID
	Role        MemberRole
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (m *Membership) Can(action MemberAction) bool {
	perms, ok := rolePermissions[m.Role]
	if !ok {
		return false
	}
	return perms[action]
}
