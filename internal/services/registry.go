package services

import (
	"jobportal_backend/internal/media"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/workers"

	"gorm.io/gorm"
)

// ServiceContainer wires every service with its repositories.
type ServiceContainer struct {
	Auth         *AuthService
	User         *UserService
	Job          *JobService
	Application  *ApplicationService
	SavedJob     *SavedJobService
	Notification *NotificationService
}

func NewServiceContainer(db *gorm.DB, signer *media.Signer, dispatcher *workers.NotificationDispatcher) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	savedJobRepo := repositories.NewSavedJobRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, signer),
		User:         NewUserService(userRepo, signer),
		Job:          NewJobService(jobRepo, userRepo),
		Application:  NewApplicationService(applicationRepo, jobRepo, userRepo, dispatcher),
		SavedJob:     NewSavedJobService(savedJobRepo, jobRepo, userRepo),
		Notification: NewNotificationService(notificationRepo),
	}
}
