package auth

import "pawconnect/internal/domain"

type LoginRequest struct {
	Username string          `json:"username" binding:"required" validate:"required"`
	Password string          `json:"password" binding:"required" validate:"required"`
	Role     domain.UserRole `json:"role" binding:"omitempty,oneof=owner companion" validate:"omitempty,oneof=owner companion"`
}

type UserResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
}

func toUserResponse(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}
