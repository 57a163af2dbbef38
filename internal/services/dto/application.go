package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

// UpdateApplicationStatusRequest - employer moves an application through the pipeline
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplicationResponse - application with its job and applicant summaries.
// Resume is the snapshot taken at apply time, not the applicant's current one.
type ApplicationResponse struct {
	ID        string                   `json:"id"`
	JobID     string                   `json:"job_id"`
	Job       *JobResponse             `json:"job,omitempty"`
	Applicant *ApplicantProfile        `json:"applicant,omitempty"`
	Resume    string                   `json:"resume"`
	Status    models.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
}

func NewApplicationResponse(a *models.Application) *ApplicationResponse {
	if a == nil {
		return nil
	}
	return &ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		Job:       NewJobResponse(a.Job),
		Applicant: NewApplicantProfile(a.Applicant),
		Resume:    a.Resume,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}

func NewApplicationResponseList(apps []models.Application) []*ApplicationResponse {
	out := make([]*ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationResponse(&apps[i]))
	}
	return out
}
