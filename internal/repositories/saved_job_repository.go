package repositories

import (
	"errors"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSavedJobAlreadyExists = errors.New("job already saved")

type SavedJobRepository interface {
	Create(saved *models.SavedJob) error
	DeleteBySeekerAndJob(jobSeekerID, jobID string) error
	FindBySeeker(jobSeekerID string) ([]models.SavedJob, error)
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

// Create inserts the bookmark; the (job_seeker_id, job_id) unique index
// rejects duplicates atomically.
func (r *SavedJobRepositoryImpl) Create(saved *models.SavedJob) error {
	err := r.db.Create(saved).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSavedJobAlreadyExists
	}
	return err
}

// DeleteBySeekerAndJob is idempotent: deleting an absent bookmark is not an
// error.
func (r *SavedJobRepositoryImpl) DeleteBySeekerAndJob(jobSeekerID, jobID string) error {
	return r.db.Where("job_seeker_id = ? AND job_id = ?", jobSeekerID, jobID).
		Delete(&models.SavedJob{}).Error
}

func (r *SavedJobRepositoryImpl) FindBySeeker(jobSeekerID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("job_seeker_id = ?", jobSeekerID).
		Order("created_at DESC").Find(&saved).Error
	return saved, err
}
