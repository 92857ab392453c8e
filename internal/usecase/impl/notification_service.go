package impl

import (
	"context"

	"homefinder/config"
	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	"homefinder/internal/domain/repository"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultNotificationListLimit caps the inbox when the config omits a limit.
const defaultNotificationListLimit = 50

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	listLimit        int
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(notificationRepo repository.NotificationRepository, cfg *config.Config) usecase.NotificationUsecase {
	listLimit := defaultNotificationListLimit
	if cfg != nil && cfg.Notification != nil && cfg.Notification.ListLimit > 0 {
		listLimit = cfg.Notification.ListLimit
	}

	return &notificationService{
		notificationRepo: notificationRepo,
		listLimit:        listLimit,
	}
}

// Dispatch persists a new unread notification for its recipient.
func (srv *notificationService) Dispatch(ctx context.Context, notification *entity.Notification) error {
	if !notification.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid notification type")
	}

	notification.IsRead = false

	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	return nil
}

// ListNotifications retrieves the caller's most recent notifications, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindNotificationsByUser(ctx, userID, srv.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// CountUnread counts the caller's unread notifications.
func (srv *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnreadByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead marks one of the caller's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.authorize(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := srv.notificationRepo.MarkNotificationRead(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks all of the caller's notifications as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := srv.notificationRepo.MarkAllNotificationsRead(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark all notifications read")
	}

	return nil
}

// DeleteNotification permanently removes one of the caller's notifications.
func (srv *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.authorize(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := srv.notificationRepo.DeleteNotification(ctx, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// authorize verifies the notification exists and belongs to the caller.
func (srv *notificationService) authorize(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := srv.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to find notification")
	}

	if notification.UserID != userID {
		return domainerrors.ErrNotResourceOwner
	}

	return nil
}
