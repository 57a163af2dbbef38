package services

import (
	"context"
	"encoding/json"
	"testing"

	"jobportal_backend/internal/models"
	"jobportal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationFixture struct {
	svc      *ApplicationService
	users    *fakeUserRepo
	jobs     *fakeJobRepo
	apps     *fakeApplicationRepo
	seeker   *models.User
	employer *models.User
	job      *models.Job
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()

	users := newFakeUserRepo()
	jobs := newFakeJobRepo(users)
	apps := newFakeApplicationRepo(jobs, users)

	seeker := &models.User{
		Name:   "Aliya",
		Email:  "aliya@example.com",
		Role:   models.UserRoleJobSeeker,
		Resume: "https://res.cloudinary.com/demo/raw/upload/resumes/aliya.pdf",
	}
	require.NoError(t, users.Create(seeker))

	employer := &models.User{
		Name:        "Acme HR",
		Email:       "hr@acme.example.com",
		Role:        models.UserRoleEmployer,
		CompanyName: "Acme",
	}
	require.NoError(t, users.Create(employer))

	job := &models.Job{
		Title:     "Backend Engineer",
		Location:  "Almaty",
		Category:  "engineering",
		Type:      models.JobTypeFullTime,
		CompanyID: employer.ID,
	}
	require.NoError(t, jobs.Create(job))

	return &applicationFixture{
		svc:      NewApplicationService(apps, jobs, users, testDispatcher()),
		users:    users,
		jobs:     jobs,
		apps:     apps,
		seeker:   seeker,
		employer: employer,
		job:      job,
	}
}

func TestApply_Success(t *testing.T) {
	f := newApplicationFixture(t)

	resp, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, f.job.ID, resp.JobID)
	assert.Equal(t, models.ApplicationStatusPending, resp.Status)
	assert.Equal(t, f.seeker.Resume, resp.Resume)
}

func TestApply_ResumeRequired(t *testing.T) {
	f := newApplicationFixture(t)
	f.seeker.Resume = ""
	require.NoError(t, f.users.Update(f.seeker))

	_, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	assert.ErrorIs(t, err, apperrors.ErrResumeRequired)
}

func TestApply_DuplicateRejected(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	_, err = f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestApply_EmployerCannotApply(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply(context.Background(), f.job.ID, f.employer.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestApply_ClosedJobRejected(t *testing.T) {
	f := newApplicationFixture(t)
	f.job.IsClosed = true
	require.NoError(t, f.jobs.Update(f.job))

	_, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobClosed)
}

func TestApply_UnknownJobNotFound(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply(context.Background(), "missing-job", f.seeker.ID)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestApply_ResumeSnapshotSurvivesProfileChanges(t *testing.T) {
	f := newApplicationFixture(t)
	originalResume := f.seeker.Resume

	resp, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	// Profile edits after applying must not touch the submitted copy.
	f.seeker.Resume = "https://res.cloudinary.com/demo/raw/upload/resumes/aliya-v2.pdf"
	require.NoError(t, f.users.Update(f.seeker))

	stored, err := f.svc.GetApplication(context.Background(), resp.ID, f.seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, originalResume, stored.Resume)

	require.NoError(t, f.users.ClearResume(f.seeker.ID))
	stored, err = f.svc.GetApplication(context.Background(), resp.ID, f.seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, originalResume, stored.Resume)
}

func TestGetApplication_VisibleOnlyToParties(t *testing.T) {
	f := newApplicationFixture(t)

	resp, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	_, err = f.svc.GetApplication(context.Background(), resp.ID, f.seeker.ID)
	assert.NoError(t, err)

	_, err = f.svc.GetApplication(context.Background(), resp.ID, f.employer.ID)
	assert.NoError(t, err)

	stranger := &models.User{Name: "Other", Email: "other@example.com", Role: models.UserRoleJobSeeker}
	require.NoError(t, f.users.Create(stranger))

	_, err = f.svc.GetApplication(context.Background(), resp.ID, stranger.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestGetApplicantsForJob_OwnerOnly(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	list, err := f.svc.GetApplicantsForJob(context.Background(), f.job.ID, f.employer.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	rival := &models.User{Name: "Rival HR", Email: "hr@rival.example.com", Role: models.UserRoleEmployer}
	require.NoError(t, f.users.Create(rival))

	_, err = f.svc.GetApplicantsForJob(context.Background(), f.job.ID, rival.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestGetApplicantsForJob_JoinsApplicantContactFields(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	list, err := f.svc.GetApplicantsForJob(context.Background(), f.job.ID, f.employer.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// The employer needs the applicant's contact fields alongside the
	// resume snapshot to follow up.
	applicant := list[0].Applicant
	require.NotNil(t, applicant)
	assert.Equal(t, f.seeker.Name, applicant.Name)
	assert.Equal(t, f.seeker.Email, applicant.Email)
	assert.Equal(t, f.seeker.Resume, list[0].Resume)

	body, err := json.Marshal(applicant)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"email":"aliya@example.com"`)
}

func TestGetMyApplications(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	list, err := f.svc.GetMyApplications(context.Background(), f.seeker.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, f.job.ID, list[0].JobID)

	other := &models.User{Name: "Other", Email: "other@example.com", Role: models.UserRoleJobSeeker}
	require.NoError(t, f.users.Create(other))

	list, err = f.svc.GetMyApplications(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateStatus_OwnerMovesPipeline(t *testing.T) {
	f := newApplicationFixture(t)

	resp, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(context.Background(), resp.ID, f.employer.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)

	stored, err := f.svc.GetApplication(context.Background(), resp.ID, f.seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, stored.Status)
}

func TestUpdateStatus_ApplicantForbidden(t *testing.T) {
	f := newApplicationFixture(t)

	resp, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(context.Background(), resp.ID, f.seeker.ID, "accepted")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestUpdateStatus_ForeignEmployerForbidden(t *testing.T) {
	f := newApplicationFixture(t)

	resp, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	rival := &models.User{Name: "Rival HR", Email: "hr@rival.example.com", Role: models.UserRoleEmployer}
	require.NoError(t, f.users.Create(rival))

	_, err = f.svc.UpdateStatus(context.Background(), resp.ID, rival.ID, "rejected")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	f := newApplicationFixture(t)

	resp, err := f.svc.Apply(context.Background(), f.job.ID, f.seeker.ID)
	require.NoError(t, err)

	for _, status := range []string{"archived", "PENDING", "", "shortlisted"} {
		_, err = f.svc.UpdateStatus(context.Background(), resp.ID, f.employer.ID, status)
		assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus, "status %q must be rejected", status)
	}

	// The stored status is untouched after the rejected updates.
	stored, err := f.svc.GetApplication(context.Background(), resp.ID, f.employer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, stored.Status)
}
