package services

import (
	"context"
	"testing"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobFixture(t *testing.T) (*JobService, *applicationFixture) {
	t.Helper()
	f := newApplicationFixture(t)
	return NewJobService(f.jobs, f.users), f
}

func TestCreateJob_EmployerOnly(t *testing.T) {
	svc, f := newJobFixture(t)

	req := &dto.CreateJobRequest{
		Title:       "Data Engineer",
		Description: "Pipelines",
		Location:    "Astana",
		Category:    "engineering",
		Type:        models.JobTypeRemote,
	}

	job, err := svc.CreateJob(context.Background(), f.employer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, f.employer.ID, job.CompanyID)
	assert.False(t, job.IsClosed)

	_, err = svc.CreateJob(context.Background(), f.seeker.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestCreateJob_SalaryRangeValidated(t *testing.T) {
	svc, f := newJobFixture(t)

	req := &dto.CreateJobRequest{
		Title:       "Data Engineer",
		Description: "Pipelines",
		Location:    "Astana",
		Category:    "engineering",
		Type:        models.JobTypeRemote,
		SalaryMin:   500000,
		SalaryMax:   300000,
	}

	_, err := svc.CreateJob(context.Background(), f.employer.ID, req)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestUpdateJob_OwnerOnly(t *testing.T) {
	svc, f := newJobFixture(t)

	rival := &models.User{Name: "Rival HR", Email: "hr@rival.example.com", Role: models.UserRoleEmployer}
	require.NoError(t, f.users.Create(rival))

	title := "Senior Backend Engineer"
	req := &dto.UpdateJobRequest{Title: &title}

	_, err := svc.UpdateJob(context.Background(), f.job.ID, rival.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	job, err := svc.UpdateJob(context.Background(), f.job.ID, f.employer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, title, job.Title)
}

func TestToggleClose_FlipsAndHidesFromSearch(t *testing.T) {
	svc, f := newJobFixture(t)

	job, err := svc.ToggleClose(context.Background(), f.job.ID, f.employer.ID)
	require.NoError(t, err)
	assert.True(t, job.IsClosed)

	results, err := svc.SearchJobs(context.Background(), &dto.JobSearchRequest{})
	require.NoError(t, err)
	assert.Empty(t, results.Jobs)

	job, err = svc.ToggleClose(context.Background(), f.job.ID, f.employer.ID)
	require.NoError(t, err)
	assert.False(t, job.IsClosed)

	results, err = svc.SearchJobs(context.Background(), &dto.JobSearchRequest{})
	require.NoError(t, err)
	assert.Len(t, results.Jobs, 1)
}

func TestDeleteJob_OwnerOnly(t *testing.T) {
	svc, f := newJobFixture(t)

	rival := &models.User{Name: "Rival HR", Email: "hr@rival.example.com", Role: models.UserRoleEmployer}
	require.NoError(t, f.users.Create(rival))

	err := svc.DeleteJob(context.Background(), f.job.ID, rival.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	require.NoError(t, svc.DeleteJob(context.Background(), f.job.ID, f.employer.ID))

	_, err = svc.GetJob(context.Background(), f.job.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestSearchJobs_PaginationDefaults(t *testing.T) {
	svc, _ := newJobFixture(t)

	results, err := svc.SearchJobs(context.Background(), &dto.JobSearchRequest{Page: -3, PageSize: 100000})
	require.NoError(t, err)
	assert.Equal(t, 1, results.Page)
	assert.Equal(t, maxPageSize, results.PageSize)
}
