package models

type Job struct {
	BaseModel
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
	Location     string  `gorm:"index" json:"location"`
	Category     string  `gorm:"index" json:"category"`
	Type         JobType `gorm:"type:varchar(20)" json:"type"`
	SalaryMin    float64 `json:"salary_min"`
	SalaryMax    float64 `json:"salary_max"`
	IsClosed     bool    `gorm:"default:false" json:"is_closed"`

	// Owning employer identity. Exactly one owner per job.
	CompanyID string `gorm:"type:uuid;not null;index" json:"company_id"`
	Company   *User  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}
