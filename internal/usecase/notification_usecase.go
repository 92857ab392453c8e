package usecase

import (
	"context"

	"homefinder/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for notification use cases.
// Dispatch carries lifecycle-event notifications from other services; the
// remaining operations serve the recipient-facing inbox.
type NotificationUsecase interface {
	// Dispatch persists a new unread notification for its recipient.
	Dispatch(ctx context.Context, notification *entity.Notification) error

	// ListNotifications retrieves the caller's most recent notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// CountUnread counts the caller's unread notifications.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks one of the caller's notifications as read. Idempotent.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead marks all of the caller's notifications as read. Idempotent.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// DeleteNotification permanently removes one of the caller's notifications.
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error
}
