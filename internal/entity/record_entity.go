package entity

import (
	"time"

	"github.com/google/uuid"
)

type RecordState string

const (
	RecordStateDraft     RecordState = "draft"
	RecordStatePublished RecordState = "published"
	RecordStateArchived  RecordState = "archived"
)

// ValidRecordState reports whether s is one of the three known states.
func ValidRecordState(s RecordState) bool {
	switch s {
	case RecordStateDraft, RecordStatePublished, RecordStateArchived:
		return true
	}
	return false
}

// Record lives exclusively inside one workspace's partition schema.
// CreatedBy/UpdatedBy reference users in the shared database and are
// hydrated on read.
type Record struct {
	Id        uuid.UUID
	Title     string
	State     RecordState
	CreatedBy *uuid.UUID
	UpdatedBy *uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
