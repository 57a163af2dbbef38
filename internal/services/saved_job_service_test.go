package services

import (
	"context"
	"testing"

	"jobportal_backend/internal/models"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSavedJobFixture(t *testing.T) (*SavedJobService, *applicationFixture) {
	t.Helper()
	f := newApplicationFixture(t)
	svc := NewSavedJobService(newFakeSavedJobRepo(f.jobs), f.jobs, f.users)
	return svc, f
}

func TestSaveJob_Success(t *testing.T) {
	svc, f := newSavedJobFixture(t)

	saved, err := svc.SaveJob(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, f.job.ID, saved.JobID)
	require.NotNil(t, saved.Job)
	assert.Equal(t, f.job.Title, saved.Job.Title)
}

func TestSaveJob_DuplicateRejected(t *testing.T) {
	svc, f := newSavedJobFixture(t)

	_, err := svc.SaveJob(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	_, err = svc.SaveJob(context.Background(), f.job.ID, f.seeker.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadySaved)
}

func TestSaveJob_EmployerForbidden(t *testing.T) {
	svc, f := newSavedJobFixture(t)

	_, err := svc.SaveJob(context.Background(), f.job.ID, f.employer.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestSaveJob_UnknownJobNotFound(t *testing.T) {
	svc, f := newSavedJobFixture(t)

	_, err := svc.SaveJob(context.Background(), "missing-job", f.seeker.ID)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUnsaveJob_IdempotentRemoval(t *testing.T) {
	svc, f := newSavedJobFixture(t)

	_, err := svc.SaveJob(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	require.NoError(t, svc.UnsaveJob(context.Background(), f.job.ID, f.seeker.ID))

	// Removing an absent bookmark succeeds as well.
	require.NoError(t, svc.UnsaveJob(context.Background(), f.job.ID, f.seeker.ID))

	list, err := svc.GetSavedJobs(context.Background(), f.seeker.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetSavedJobs_ScopedToCaller(t *testing.T) {
	svc, f := newSavedJobFixture(t)

	other := &models.User{Name: "Other", Email: "other@example.com", Role: models.UserRoleJobSeeker}
	require.NoError(t, f.users.Create(other))

	_, err := svc.SaveJob(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	mine, err := svc.GetSavedJobs(context.Background(), f.seeker.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := svc.GetSavedJobs(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}
