package services

import (
	"context"
	"errors"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type SavedJobService struct {
	savedJobRepo repositories.SavedJobRepository
	jobRepo      repositories.JobRepository
	userRepo     repositories.UserRepository
}

func NewSavedJobService(
	savedJobRepo repositories.SavedJobRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
) *SavedJobService {
	return &SavedJobService{
		savedJobRepo: savedJobRepo,
		jobRepo:      jobRepo,
		userRepo:     userRepo,
	}
}

// SaveJob bookmarks a job for a job seeker. Saving the same job twice
// fails; the unique (job_seeker_id, job_id) index decides duplicates.
func (s *SavedJobService) SaveJob(ctx context.Context, jobID, userID string) (*dto.SavedJobResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsJobSeeker() {
		return nil, apperrors.ErrInvalidUserRole
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	saved := &models.SavedJob{
		JobSeekerID: userID,
		JobID:       jobID,
	}
	if err := s.savedJobRepo.Create(saved); err != nil {
		if errors.Is(err, repositories.ErrSavedJobAlreadyExists) {
			return nil, apperrors.ErrAlreadySaved
		}
		return nil, apperrors.InternalError(err)
	}

	saved.Job = job
	return dto.NewSavedJobResponse(saved), nil
}

// UnsaveJob removes a bookmark. Removing one that does not exist is a
// no-op, so unsave is always safe to retry.
func (s *SavedJobService) UnsaveJob(ctx context.Context, jobID, userID string) error {
	if err := s.savedJobRepo.DeleteBySeekerAndJob(userID, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// GetSavedJobs lists the caller's bookmarks, newest first.
func (s *SavedJobService) GetSavedJobs(ctx context.Context, userID string) ([]*dto.SavedJobResponse, error) {
	saved, err := s.savedJobRepo.FindBySeeker(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewSavedJobResponseList(saved), nil
}
