package models

type UserRole string
type ApplicationStatus string
type JobType string

const (
	UserRoleJobSeeker UserRole = "jobseeker"
	UserRoleEmployer  UserRole = "employer"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	JobTypeFullTime   JobType = "Full-Time"
	JobTypePartTime   JobType = "Part-Time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeRemote     JobType = "Remote"
)

// ValidApplicationStatus reports whether s is one of the recognized
// application statuses. Employer status updates are checked against this
// set before being persisted.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract,
		JobTypeInternship, JobTypeRemote:
		return true
	default:
		return false
	}
}
