package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email               string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash        *string   `gorm:"type:varchar(255)"`
	Status              string    `gorm:"type:varchar(32);not null;default:'pending'"`
	ResetTokenHash      *string   `gorm:"type:varchar(64);index"`
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
