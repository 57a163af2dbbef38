package handlers

import (
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/validator"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	SavedJobHandler     *SavedJobHandler
	NotificationHandler *NotificationHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, svc.Auth),
		UserHandler:         NewUserHandler(base, svc.User),
		JobHandler:          NewJobHandler(base, svc.Job),
		ApplicationHandler:  NewApplicationHandler(base, svc.Application),
		SavedJobHandler:     NewSavedJobHandler(base, svc.SavedJob),
		NotificationHandler: NewNotificationHandler(base, svc.Notification),
	}
}
