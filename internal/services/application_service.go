package services

import (
	"context"
	"errors"
	"fmt"

	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/internal/workers"
	"jobportal_backend/pkg/apperrors"
)

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	dispatcher      *workers.NotificationDispatcher
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	dispatcher *workers.NotificationDispatcher,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		dispatcher:      dispatcher,
	}
}

// Apply submits an application for a job on behalf of a job seeker. The
// applicant's resume URL is copied onto the application, so later profile
// edits never change what the employer received.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID string) (*dto.ApplicationResponse, error) {
	applicant, err := s.userRepo.FindByID(applicantID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !applicant.IsJobSeeker() {
		return nil, apperrors.ErrInvalidUserRole
	}
	if applicant.Resume == "" {
		return nil, apperrors.ErrResumeRequired
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if job.IsClosed {
		return nil, apperrors.ErrJobClosed
	}

	application := &models.Application{
		JobID:       job.ID,
		ApplicantID: applicant.ID,
		Resume:      applicant.Resume,
		Status:      models.ApplicationStatusPending,
	}

	// The unique index on (job_id, applicant_id) is the duplicate guard;
	// a concurrent second apply loses here, not in a prior existence check.
	if err := s.applicationRepo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application submitted",
		"application_id", application.ID, "job_id", job.ID, "applicant_id", applicant.ID)

	s.dispatcher.Enqueue(workers.Event{
		Type:     "application_submitted",
		UserID:   applicant.ID,
		Email:    applicant.Email,
		Subject:  "Application submitted",
		Message:  fmt.Sprintf("Your application for %q has been submitted.", job.Title),
		Template: "application_submitted",
		Data: email.TemplateData{
			"ApplicantName": applicant.Name,
			"JobTitle":      job.Title,
		},
		Meta: map[string]interface{}{
			"application_id": application.ID,
			"job_id":         job.ID,
		},
	})

	if job.Company != nil {
		s.dispatcher.Enqueue(workers.Event{
			Type:     "new_applicant",
			UserID:   job.CompanyID,
			Email:    job.Company.Email,
			Subject:  "New applicant",
			Message:  fmt.Sprintf("%s applied for %q.", applicant.Name, job.Title),
			Template: "new_applicant",
			Data: email.TemplateData{
				"CompanyName": job.Company.CompanyName,
				"JobTitle":    job.Title,
			},
			Meta: map[string]interface{}{
				"application_id": application.ID,
				"job_id":         job.ID,
				"applicant_id":   applicant.ID,
			},
		})
	}

	application.Job = job
	application.Applicant = applicant
	return dto.NewApplicationResponse(application), nil
}

// GetMyApplications lists the caller's own applications, newest first.
func (s *ApplicationService) GetMyApplications(ctx context.Context, applicantID string) ([]*dto.ApplicationResponse, error) {
	apps, err := s.applicationRepo.FindByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(apps), nil
}

// GetApplicantsForJob lists the applications received by a job. Only the
// employer who owns the job may see them.
func (s *ApplicationService) GetApplicantsForJob(ctx context.Context, jobID, userID string) ([]*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !CanManageJob(job, userID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	apps, err := s.applicationRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponseList(apps), nil
}

// GetApplication returns a single application to either of its parties.
func (s *ApplicationService) GetApplication(ctx context.Context, id, userID string) (*dto.ApplicationResponse, error) {
	app, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !CanViewApplication(app, userID) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return dto.NewApplicationResponse(app), nil
}

// UpdateStatus moves an application through the pipeline. Only the owning
// employer may do this, and only to a recognized status.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id, userID, status string) (*dto.ApplicationResponse, error) {
	newStatus := models.ApplicationStatus(status)
	if !models.ValidApplicationStatus(newStatus) {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	app, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !CanManageApplication(app, userID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := s.applicationRepo.UpdateStatus(id, newStatus); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	app.Status = newStatus

	logger.CtxInfo(ctx, "application status updated",
		"application_id", app.ID, "status", newStatus, "employer_id", userID)

	if app.Applicant != nil {
		jobTitle := ""
		if app.Job != nil {
			jobTitle = app.Job.Title
		}
		s.dispatcher.Enqueue(workers.Event{
			Type:     "application_status",
			UserID:   app.ApplicantID,
			Email:    app.Applicant.Email,
			Subject:  "Application update",
			Message:  fmt.Sprintf("Your application for %q is now %s.", jobTitle, newStatus),
			Template: "application_status",
			Data: email.TemplateData{
				"ApplicantName": app.Applicant.Name,
				"JobTitle":      jobTitle,
				"Status":        string(newStatus),
			},
			Meta: map[string]interface{}{
				"application_id": app.ID,
				"job_id":         app.JobID,
				"status":         string(newStatus),
			},
		})
	}

	return dto.NewApplicationResponse(app), nil
}
