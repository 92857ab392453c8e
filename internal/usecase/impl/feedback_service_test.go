package impl

import (
	"context"
	"testing"

	"homefinder/internal/domain/entity"
	mockRepo "homefinder/internal/mocks/repository"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFeedbackService(t *testing.T) (usecase.FeedbackUsecase, *mockRepo.MockFeedbackRepository) {
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	service := NewFeedbackService(feedbackRepo)

	return service, feedbackRepo
}

func TestFeedbackService_SubmitFeedback_Authenticated(t *testing.T) {
	service, feedbackRepo := createTestFeedbackService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SubmitFeedbackInput{
		UserID:  &userID,
		Name:    "Test Tenant",
		Email:   "tenant@example.com",
		Subject: "Great platform",
		Message: "Found a flat within a week.",
	}

	feedbackRepo.EXPECT().
		CreateFeedback(ctx, mock.AnythingOfType("*entity.Feedback")).
		Run(func(ctx context.Context, feedback *entity.Feedback) {
			feedback.ID = uuid.New()
		}).
		Return(nil)

	feedback, err := service.SubmitFeedback(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, feedback.UserID)
	assert.Equal(t, userID, *feedback.UserID)
	assert.Equal(t, input.Subject, feedback.Subject)
}

func TestFeedbackService_SubmitFeedback_Anonymous(t *testing.T) {
	service, feedbackRepo := createTestFeedbackService(t)

	ctx := context.Background()
	input := &usecase.SubmitFeedbackInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Question",
		Message: "Do you list commercial spaces?",
	}

	feedbackRepo.EXPECT().CreateFeedback(ctx, mock.AnythingOfType("*entity.Feedback")).Return(nil)

	feedback, err := service.SubmitFeedback(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, feedback.UserID)
}

func TestFeedbackService_ListFeedback(t *testing.T) {
	service, feedbackRepo := createTestFeedbackService(t)

	ctx := context.Background()
	listed := []*entity.Feedback{{ID: uuid.New(), Subject: "Great platform"}}

	feedbackRepo.EXPECT().FindAllFeedback(ctx).Return(listed, nil)

	feedbackList, err := service.ListFeedback(ctx)

	require.NoError(t, err)
	assert.Equal(t, listed, feedbackList)
}
