package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
)

// User lives in the shared database. PasswordHash is nil for invited
// users that never completed account setup.
type User struct {
	Id                  uuid.UUID
	Email               string
	PasswordHash        *string
	Status              UserStatus
	ResetTokenHash      *string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// HasCredential reports whether the account has a password set.
func (u *User) HasCredential() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// ResolveStatus derives the effective status for rows that predate the
// status column.
func (u *User) ResolveStatus() UserStatus {
	if u.Status != "" {
		return u.Status
	}
	if u.HasCredential() {
		return UserStatusActive
	}
	return UserStatusPending
}
