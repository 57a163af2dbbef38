package services

import (
	"fmt"
	"time"

	"jobportal_backend/internal/email"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/workers"
)

// In-memory repository fakes. They reproduce the sentinel-error contract
// of the real implementations, including the duplicate guards.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ClearResume(userID string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Resume = ""
	return nil
}

type fakeJobRepo struct {
	jobs  map[string]*models.Job
	users *fakeUserRepo
}

func newFakeJobRepo(users *fakeUserRepo) *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job), users: users}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", len(r.jobs)+1)
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *j
	if owner, err := r.users.FindByID(j.CompanyID); err == nil {
		cp.Company = owner
	}
	return &cp, nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	cp.Company = nil
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) FindByCompany(companyID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindWithFilter(criteria repositories.JobFilter) ([]models.Job, int64, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.IsClosed {
			continue
		}
		if criteria.Location != "" && j.Location != criteria.Location {
			continue
		}
		if criteria.Category != "" && j.Category != criteria.Category {
			continue
		}
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
	jobs         *fakeJobRepo
	users        *fakeUserRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo, users *fakeUserRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[string]*models.Application),
		jobs:         jobs,
		users:        users,
	}
}

func (r *fakeApplicationRepo) Create(app *models.Application) error {
	for _, existing := range r.applications {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	if app.ID == "" {
		app.ID = fmt.Sprintf("app-%d", len(r.applications)+1)
	}
	app.CreatedAt = time.Now()
	cp := *app
	cp.Job = nil
	cp.Applicant = nil
	r.applications[app.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	a, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	if job, err := r.jobs.FindByID(a.JobID); err == nil {
		cp.Job = job
	}
	if applicant, err := r.users.FindByID(a.ApplicantID); err == nil {
		cp.Applicant = applicant
	}
	return &cp, nil
}

func (r *fakeApplicationRepo) FindByApplicant(applicantID string) ([]models.Application, error) {
	var out []models.Application
	for id, a := range r.applications {
		if a.ApplicantID == applicantID {
			full, _ := r.FindByID(id)
			out = append(out, *full)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByJob(jobID string) ([]models.Application, error) {
	var out []models.Application
	for id, a := range r.applications {
		if a.JobID == jobID {
			full, _ := r.FindByID(id)
			out = append(out, *full)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	a, ok := r.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeApplicationRepo) CountByJob(jobID string) (int64, error) {
	var count int64
	for _, a := range r.applications {
		if a.JobID == jobID {
			count++
		}
	}
	return count, nil
}

type fakeSavedJobRepo struct {
	saved map[string]*models.SavedJob
	jobs  *fakeJobRepo
}

func newFakeSavedJobRepo(jobs *fakeJobRepo) *fakeSavedJobRepo {
	return &fakeSavedJobRepo{saved: make(map[string]*models.SavedJob), jobs: jobs}
}

func (r *fakeSavedJobRepo) Create(saved *models.SavedJob) error {
	for _, s := range r.saved {
		if s.JobSeekerID == saved.JobSeekerID && s.JobID == saved.JobID {
			return repositories.ErrSavedJobAlreadyExists
		}
	}
	if saved.ID == "" {
		saved.ID = fmt.Sprintf("saved-%d", len(r.saved)+1)
	}
	cp := *saved
	cp.Job = nil
	r.saved[saved.ID] = &cp
	return nil
}

func (r *fakeSavedJobRepo) DeleteBySeekerAndJob(jobSeekerID, jobID string) error {
	for id, s := range r.saved {
		if s.JobSeekerID == jobSeekerID && s.JobID == jobID {
			delete(r.saved, id)
			return nil
		}
	}
	// absent bookmark is not an error
	return nil
}

func (r *fakeSavedJobRepo) FindBySeeker(jobSeekerID string) ([]models.SavedJob, error) {
	var out []models.SavedJob
	for _, s := range r.saved {
		if s.JobSeekerID == jobSeekerID {
			cp := *s
			if job, err := r.jobs.FindByID(s.JobID); err == nil {
				cp.Job = job
			}
			out = append(out, cp)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
}

func (r *fakeNotificationRepo) Create(n *models.Notification) error {
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *fakeNotificationRepo) FindByUser(userID string, limit int) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(id, userID string) error {
	for _, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

// testDispatcher builds an unstarted dispatcher; enqueued events just sit
// in the buffer, which is all the service-level tests need.
func testDispatcher() *workers.NotificationDispatcher {
	return workers.NewNotificationDispatcher(
		&email.NoopProvider{},
		email.NewTemplateManager(),
		&fakeNotificationRepo{},
		time.Second,
	)
}
