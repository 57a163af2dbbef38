package repositories

import (
	"errors"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows job listings. Zero values mean "no filter".
type JobFilter struct {
	Keyword   string
	Location  string
	Category  string
	Type      models.JobType
	SalaryMin float64
	SalaryMax float64
	Page      int
	PageSize  int
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	FindByCompany(companyID string) ([]models.Job, error)
	FindWithFilter(criteria JobFilter) ([]models.Job, int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Company").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(job).Updates(map[string]interface{}{
		"title":        job.Title,
		"description":  job.Description,
		"requirements": job.Requirements,
		"location":     job.Location,
		"category":     job.Category,
		"type":         job.Type,
		"salary_min":   job.SalaryMin,
		"salary_max":   job.SalaryMax,
		"is_closed":    job.IsClosed,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(id string) error {
	// Applications and bookmarks referencing the job go with it.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.SavedJob{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) FindByCompany(companyID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindWithFilter(criteria JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job
	query := r.db.Model(&models.Job{}).Where("is_closed = ?", false)

	if criteria.Keyword != "" {
		keyword := "%" + criteria.Keyword + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", keyword, keyword)
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}
	if criteria.SalaryMin > 0 {
		query = query.Where("salary_max >= ?", criteria.SalaryMin)
	}
	if criteria.SalaryMax > 0 {
		query = query.Where("salary_min <= ?", criteria.SalaryMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Page > 0 && criteria.PageSize > 0 {
		query = query.Limit(criteria.PageSize).Offset((criteria.Page - 1) * criteria.PageSize)
	}

	err := query.Preload("Company").Order("created_at DESC").Find(&jobs).Error
	return jobs, total, err
}
