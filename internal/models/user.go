package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Opaque media references issued by the upload provider. The backend
	// stores and returns URL strings only, never file bytes.
	Avatar string `json:"avatar"`
	Resume string `json:"resume"`

	// Employer-only company metadata
	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	CompanyLogo        string `json:"company_logo,omitempty"`
}

func (u *User) IsEmployer() bool {
	return u.Role == UserRoleEmployer
}

func (u *User) IsJobSeeker() bool {
	return u.Role == UserRoleJobSeeker
}
