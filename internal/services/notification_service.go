package services

import (
	"context"
	"errors"

	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

const notificationPageLimit = 50

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// GetNotifications lists the caller's recent notifications, newest first.
func (s *NotificationService) GetNotifications(ctx context.Context, userID string) ([]*dto.NotificationResponse, error) {
	items, err := s.notificationRepo.FindByUser(userID, notificationPageLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewNotificationResponseList(items), nil
}

// MarkRead marks one of the caller's notifications as read. A
// notification belonging to someone else reads as not found.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	if err := s.notificationRepo.MarkRead(id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
