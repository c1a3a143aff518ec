package model

import (
	"time"

	"github.com/google/uuid"
)

type WorkspaceMember struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_workspace_member,priority:1"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_workspace_member,priority:2;index"`
	Role        string    `gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (WorkspaceMember) TableName() string {
	return "workspace_members"
}
