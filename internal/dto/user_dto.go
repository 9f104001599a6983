package dto

import (
	"github.com/google/uuid"

	"stratoview-taxonomy-api/internal/domain"
)

// CreateUserRequest represents the request to register a platform user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=2,max=150" example:"m.colombo"`
	UserType string `json:"userType" binding:"required,oneof=ADMIN CUSTOMER" example:"CUSTOMER"`
}

// UserResponse represents a platform user
type UserResponse struct {
	ID              uuid.UUID `json:"userId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Username        string    `json:"username" example:"m.colombo"`
	UserType        string    `json:"userType" example:"CUSTOMER"`
	UserTypeDisplay string    `json:"userTypeDisplay" example:"Customer"`
	LastLogin       *string   `json:"lastLogin,omitempty" example:"2025-01-15T09:12:00Z"`
	CreatedAt       string    `json:"createdAt" example:"2025-01-10T08:00:00Z"`
}

// ToUserResponse converts a domain user to its response form
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		UserType:        string(user.UserType),
		UserTypeDisplay: user.UserType.Display(),
		LastLogin:       formatTimePtr(user.LastLogin),
		CreatedAt:       formatTime(user.CreatedAt),
	}
}
