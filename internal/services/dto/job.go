package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

// CreateJobRequest - new vacancy posted by an employer
type CreateJobRequest struct {
	Title        string         `json:"title" binding:"required,min=3,max=200"`
	Description  string         `json:"description" binding:"required"`
	Requirements string         `json:"requirements,omitempty"`
	Location     string         `json:"location" binding:"required"`
	Category     string         `json:"category" binding:"required"`
	Type         models.JobType `json:"type" binding:"required" validate:"is-job-type"`
	SalaryMin    float64        `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax    float64        `json:"salary_max,omitempty" validate:"omitempty,min=0"`
}

// UpdateJobRequest - partial vacancy update, nil fields untouched
type UpdateJobRequest struct {
	Title        *string         `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description  *string         `json:"description,omitempty"`
	Requirements *string         `json:"requirements,omitempty"`
	Location     *string         `json:"location,omitempty"`
	Category     *string         `json:"category,omitempty"`
	Type         *models.JobType `json:"type,omitempty" validate:"omitempty,is-job-type"`
	SalaryMin    *float64        `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax    *float64        `json:"salary_max,omitempty" validate:"omitempty,min=0"`
}

// JobSearchRequest - catalog filters, all optional
type JobSearchRequest struct {
	Keyword   string `form:"keyword"`
	Location  string `form:"location"`
	Category  string `form:"category"`
	Type      string `form:"type"`
	SalaryMin float64 `form:"salary_min"`
	SalaryMax float64 `form:"salary_max"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

// JobResponse - vacancy with its company summary
type JobResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Requirements string         `json:"requirements,omitempty"`
	Location     string         `json:"location"`
	Category     string         `json:"category"`
	Type         models.JobType `json:"type"`
	SalaryMin    float64        `json:"salary_min,omitempty"`
	SalaryMax    float64        `json:"salary_max,omitempty"`
	IsClosed     bool           `json:"is_closed"`
	CompanyID    string         `json:"company_id"`
	Company      *PublicProfile `json:"company,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// JobListResponse - one page of the catalog
type JobListResponse struct {
	Jobs     []*JobResponse `json:"jobs"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func NewJobResponse(j *models.Job) *JobResponse {
	if j == nil {
		return nil
	}
	return &JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Category:     j.Category,
		Type:         j.Type,
		SalaryMin:    j.SalaryMin,
		SalaryMax:    j.SalaryMax,
		IsClosed:     j.IsClosed,
		CompanyID:    j.CompanyID,
		Company:      NewPublicProfile(j.Company),
		CreatedAt:    j.CreatedAt,
	}
}

func NewJobResponseList(jobs []models.Job) []*JobResponse {
	out := make([]*JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}
