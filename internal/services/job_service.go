package services

import (
	"context"
	"errors"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type JobService struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

func (s *JobService) CreateJob(ctx context.Context, userID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsEmployer() {
		return nil, apperrors.ErrInvalidUserRole
	}
	if req.SalaryMax > 0 && req.SalaryMin > req.SalaryMax {
		return nil, apperrors.NewBadRequestError("salary_min cannot exceed salary_max")
	}

	job := &models.Job{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Category:     req.Category,
		Type:         req.Type,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		CompanyID:    userID,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "company_id", userID)

	job.Company = user
	return dto.NewJobResponse(job), nil
}

func (s *JobService) GetJob(ctx context.Context, id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

// SearchJobs returns the open vacancies matching the filter, paginated.
func (s *JobService) SearchJobs(ctx context.Context, req *dto.JobSearchRequest) (*dto.JobListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := repositories.JobFilter{
		Keyword:   req.Keyword,
		Location:  req.Location,
		Category:  req.Category,
		Type:      models.JobType(req.Type),
		SalaryMin: req.SalaryMin,
		SalaryMax: req.SalaryMax,
		Page:      page,
		PageSize:  pageSize,
	}

	jobs, total, err := s.jobRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Jobs:     dto.NewJobResponseList(jobs),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetCompanyJobs lists everything the employer has posted, closed or not.
func (s *JobService) GetCompanyJobs(ctx context.Context, userID string) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByCompany(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponseList(jobs), nil
}

func (s *JobService) UpdateJob(ctx context.Context, id, userID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findOwnedJob(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if job.SalaryMax > 0 && job.SalaryMin > job.SalaryMax {
		return nil, apperrors.NewBadRequestError("salary_min cannot exceed salary_max")
	}

	if err := s.jobRepo.Update(job); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

// ToggleClose flips the job between accepting and not accepting
// applications.
func (s *JobService) ToggleClose(ctx context.Context, id, userID string) (*dto.JobResponse, error) {
	job, err := s.findOwnedJob(id, userID)
	if err != nil {
		return nil, err
	}

	job.IsClosed = !job.IsClosed
	if err := s.jobRepo.Update(job); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job visibility toggled", "job_id", job.ID, "is_closed", job.IsClosed)
	return dto.NewJobResponse(job), nil
}

// DeleteJob removes the job together with its applications and bookmarks.
func (s *JobService) DeleteJob(ctx context.Context, id, userID string) error {
	if _, err := s.findOwnedJob(id, userID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "job deleted", "job_id", id, "company_id", userID)
	return nil
}

func (s *JobService) findOwnedJob(id, userID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !CanManageJob(job, userID) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return job, nil
}
