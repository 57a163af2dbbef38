package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

// UserProfile - the user as returned to clients, password hash excluded
type UserProfile struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	Avatar    string          `json:"avatar,omitempty"`
	Resume    string          `json:"resume,omitempty"`
	CreatedAt time.Time       `json:"created_at"`

	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	CompanyLogo        string `json:"company_logo,omitempty"`
}

// UpdateProfileRequest - partial profile update, nil fields untouched
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	ResumeURL *string `json:"resume_url,omitempty" validate:"omitempty,url"`

	CompanyName        *string `json:"company_name,omitempty"`
	CompanyDescription *string `json:"company_description,omitempty"`
	CompanyLogoURL     *string `json:"company_logo_url,omitempty" validate:"omitempty,url"`
}

// ApplicantProfile - the applicant as shown to the employer reviewing an
// application. Carries the contact email, unlike PublicProfile.
type ApplicantProfile struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	Avatar string          `json:"avatar,omitempty"`
}

// PublicProfile - profile view visible to other users
type PublicProfile struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Role   models.UserRole `json:"role"`
	Avatar string          `json:"avatar,omitempty"`

	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	CompanyLogo        string `json:"company_logo,omitempty"`
}

// ResumeLinkResponse - time-limited authenticated delivery URL for a resume
type ResumeLinkResponse struct {
	URL string `json:"url"`
}

func NewUserProfile(u *models.User) *UserProfile {
	if u == nil {
		return nil
	}
	return &UserProfile{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		Avatar:             u.Avatar,
		Resume:             u.Resume,
		CreatedAt:          u.CreatedAt,
		CompanyName:        u.CompanyName,
		CompanyDescription: u.CompanyDescription,
		CompanyLogo:        u.CompanyLogo,
	}
}

func NewApplicantProfile(u *models.User) *ApplicantProfile {
	if u == nil {
		return nil
	}
	return &ApplicantProfile{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}

func NewPublicProfile(u *models.User) *PublicProfile {
	if u == nil {
		return nil
	}
	return &PublicProfile{
		ID:                 u.ID,
		Name:               u.Name,
		Role:               u.Role,
		Avatar:             u.Avatar,
		CompanyName:        u.CompanyName,
		CompanyDescription: u.CompanyDescription,
		CompanyLogo:        u.CompanyLogo,
	}
}
