package model

import (
	"time"

	"github.com/google/uuid"
)

// Record has no workspace column on purpose: isolation comes from the
// table living inside a workspace's dedicated schema. Queries must go
// through a resolved partition handle, never the bare connection.
type Record struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string     `gorm:"type:varchar(255);not null"`
	State     string     `gorm:"type:varchar(32);not null;default:'draft'"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (Record) TableName() string {
	return "records"
}
