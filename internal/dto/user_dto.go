package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserSummary is the hydrated projection of a user reference. It never
// carries credential or reset-token material.
type UserSummary struct {
	Id     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Status string    `json:"status"`
}

type MeResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
