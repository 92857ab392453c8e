package impl

import (
	"context"
	"testing"

	"homefinder/config"
	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	"homefinder/internal/domain/repository"
	mockRepo "homefinder/internal/mocks/repository"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T, cfg *config.Config) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo, cfg)

	return service, notificationRepo
}

func TestNotificationService_Dispatch_ForcesUnread(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	notification := &entity.Notification{
		UserID:  uuid.New(),
		Type:    entity.NotificationTypeInterestReceived,
		Title:   "New Interest Received!",
		Message: "Someone is interested",
		IsRead:  true,
	}

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, stored *entity.Notification) {
			assert.False(t, stored.IsRead)
		}).
		Return(nil)

	err := service.Dispatch(ctx, notification)

	require.NoError(t, err)
}

func TestNotificationService_Dispatch_InvalidType(t *testing.T) {
	service, _ := createTestNotificationService(t, nil)

	err := service.Dispatch(context.Background(), &entity.Notification{
		UserID: uuid.New(),
		Type:   entity.NotificationType("newsletter"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNotificationService_ListNotifications_DefaultLimit(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	listed := []*entity.Notification{{ID: uuid.New(), UserID: userID}}

	notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, defaultNotificationListLimit).
		Return(listed, nil)

	notifications, err := service.ListNotifications(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, listed, notifications)
}

func TestNotificationService_ListNotifications_ConfiguredLimit(t *testing.T) {
	cfg := &config.Config{Notification: &config.NotificationConfig{ListLimit: 10}}
	service, notificationRepo := createTestNotificationService(t, cfg)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, 10).
		Return([]*entity.Notification{}, nil)

	_, err := service.ListNotifications(ctx, userID)

	require.NoError(t, err)
}

func TestNotificationService_CountUnread(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().CountUnreadByUser(ctx, userID).Return(int64(3), nil)

	count, err := service.CountUnread(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), UserID: userID}

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkNotificationRead(ctx, notification.ID).Return(nil)

	err := service.MarkRead(ctx, userID, notification.ID)

	require.NoError(t, err)
}

func TestNotificationService_MarkRead_NotRecipient(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	notification := &entity.Notification{ID: uuid.New(), UserID: uuid.New()}

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)

	err := service.MarkRead(ctx, uuid.New(), notification.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().MarkAllNotificationsRead(ctx, userID).Return(nil)

	err := service.MarkAllRead(ctx, userID)

	require.NoError(t, err)
}

func TestNotificationService_DeleteNotification_Success(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), UserID: userID}

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().DeleteNotification(ctx, notification.ID).Return(nil)

	err := service.DeleteNotification(ctx, userID, notification.ID)

	require.NoError(t, err)
}

func TestNotificationService_DeleteNotification_NotRecipient(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	notification := &entity.Notification{ID: uuid.New(), UserID: uuid.New()}

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)

	err := service.DeleteNotification(ctx, uuid.New(), notification.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}

func TestNotificationService_DeleteNotification_NotFound(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(nil, repository.ErrNotificationNotFound)

	err := service.DeleteNotification(ctx, uuid.New(), notificationID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}
