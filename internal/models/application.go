package models

type Application struct {
	BaseModel
	JobID       string `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	ApplicantID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`

	// Resume is snapshotted from the applicant's profile at apply time.
	// Later profile edits must not change past applications.
	Resume string `gorm:"not null" json:"resume"`

	Status ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
}

type SavedJob struct {
	BaseModel
	JobSeekerID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_jobs_seeker_job" json:"job_seeker_id"`
	JobID       string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_seeker_job" json:"job_id"`

	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
