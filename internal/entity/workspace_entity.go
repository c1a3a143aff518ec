package entity

import (
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	Id        uuid.UUID
	Name      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
