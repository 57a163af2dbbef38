package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

// SavedJobResponse - bookmark with the job it points at
type SavedJobResponse struct {
	ID      string       `json:"id"`
	JobID   string       `json:"job_id"`
	Job     *JobResponse `json:"job,omitempty"`
	SavedAt time.Time    `json:"saved_at"`
}

func NewSavedJobResponse(s *models.SavedJob) *SavedJobResponse {
	if s == nil {
		return nil
	}
	return &SavedJobResponse{
		ID:      s.ID,
		JobID:   s.JobID,
		Job:     NewJobResponse(s.Job),
		SavedAt: s.CreatedAt,
	}
}

func NewSavedJobResponseList(saved []models.SavedJob) []*SavedJobResponse {
	out := make([]*SavedJobResponse, 0, len(saved))
	for i := range saved {
		out = append(out, NewSavedJobResponse(&saved[i]))
	}
	return out
}
