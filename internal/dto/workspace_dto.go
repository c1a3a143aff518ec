package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkspaceRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateWorkspaceResponse struct {
	Id uuid.UUID `json:"workspace_id"`
}

// WorkspaceResponse annotates workspace metadata with the caller's own
// role in it.
type WorkspaceResponse struct {
	Id        uuid.UUID  `json:"workspace_id"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type UpdateWorkspaceRequest struct {
	Id   uuid.UUID
	Name string `json:"name"`
}

type DeleteWorkspaceRequest struct {
	Id               uuid.UUID
	ConfirmationName string `json:"confirmation_name" validate:"required"`
}
