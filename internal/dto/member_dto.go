package dto

import "github.com/google/uuid"

type MemberResponse struct {
	UserId uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Status string    `json:"status"`
}

type ListMembersResponse struct {
	Members         []*MemberResponse `json:"members"`
	CurrentUserId   uuid.UUID         `json:"current_user_id"`
	CurrentUserRole string            `json:"current_user_role"`
}

type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type InviteMemberResponse struct {
	UserId        uuid.UUID `json:"user_id"`
	Status        string    `json:"status"`
	AlreadyMember bool      `json:"already_member"`
}
