package dto

import (
	"errors"
	"strings"
	"time"

	"creatorhub/internal/microservices/http-api/models"
)

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for registration. The role may arrive as "role" or "type".
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"omitempty,role"`
	Type     string `json:"type" binding:"omitempty,role"`
	Name     string `json:"name" binding:"omitempty,max=150"`
}

// RegisterInput is the validated form the auth service consumes.
type RegisterInput struct {
	Email    string
	Password string
	Role     models.Role
	Name     string
}

var ErrRoleRequired = errors.New("role is required: one of creator, brand")

// ToInput resolves the role and normalizes the email.
func (r RegisterRequest) ToInput() (RegisterInput, error) {
	raw := r.Role
	if raw == "" {
		raw = r.Type
	}
	if raw == "" {
		return RegisterInput{}, ErrRoleRequired
	}
	role, err := models.ParseRole(raw)
	if err != nil {
		return RegisterInput{}, err
	}
	return RegisterInput{
		Email:    NormalizeEmail(r.Email),
		Password: r.Password,
		Role:     role,
		Name:     strings.TrimSpace(r.Name),
	}, nil
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user, without the password hash.
type UserResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func FromModelToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse: response payload after register or login
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// NormalizeEmail lowercases and trims so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
