package dto

import (
	"jobportal_backend/internal/models"
)

// RegisterRequest - new account registration
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.UserRole `json:"role" binding:"required" validate:"is-user-role"`

	// Optional media references already uploaded by the client
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	ResumeURL string `json:"resume_url,omitempty" validate:"omitempty,url"`

	// Employer-only fields
	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	CompanyLogoURL     string `json:"company_logo_url,omitempty" validate:"omitempty,url"`
}

// LoginRequest - credentials login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse - token plus the authenticated profile
type AuthResponse struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}
