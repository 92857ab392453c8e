package repository

import (
	"context"

	"homefinder/internal/domain/entity"
	"homefinder/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new unread notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByUser retrieves the most recent notifications of a
	// recipient, newest first, capped at limit.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)

	// CountUnreadByUser counts a recipient's unread notifications.
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkNotificationRead sets the read flag of a notification. Idempotent.
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error

	// MarkAllNotificationsRead sets the read flag on all of a recipient's
	// unread notifications. Idempotent, a no-op when none are unread.
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error

	// DeleteNotification removes a notification permanently.
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}
