package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByWorkspaceID filters memberships by workspace
type ByWorkspaceID struct {
	WorkspaceID uuid.UUID
}

func (s ByWorkspaceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("workspace_id = ?", s.WorkspaceID)
}

// ByUserID filters memberships by user
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// MemberPair pins the unique (workspace_id, user_id) pair
type MemberPair struct {
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
}

func (s MemberPair) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("workspace_id = ? AND user_id = ?", s.WorkspaceID, s.UserID)
}
