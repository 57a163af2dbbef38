package services

import (
	"jobportal_backend/internal/models"
)

// CanViewApplication allows exactly the two parties of an application:
// the applicant who submitted it and the employer who owns the job.
func CanViewApplication(app *models.Application, userID string) bool {
	if app == nil {
		return false
	}
	if app.ApplicantID == userID {
		return true
	}
	return app.Job != nil && app.Job.CompanyID == userID
}

// CanManageApplication allows only the owner of the job the application
// targets. Applicants cannot change their own application's status.
func CanManageApplication(app *models.Application, userID string) bool {
	if app == nil || app.Job == nil {
		return false
	}
	return app.Job.CompanyID == userID
}

// CanManageJob allows only the employer who posted the job.
func CanManageJob(job *models.Job, userID string) bool {
	return job != nil && job.CompanyID == userID
}
