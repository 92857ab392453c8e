package impl

import (
	"context"

	"homefinder/internal/domain/entity"
	"homefinder/internal/domain/repository"
	"homefinder/internal/usecase"

	"github.com/pkg/errors"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

// NewFeedbackService creates a new feedback service instance.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
	}
}

// SubmitFeedback records a contact-form submission.
func (srv *feedbackService) SubmitFeedback(ctx context.Context, input *usecase.SubmitFeedbackInput) (*entity.Feedback, error) {
	feedback := &entity.Feedback{
		UserID:  input.UserID,
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := srv.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback")
	}

	return feedback, nil
}

// ListFeedback retrieves all submissions, newest first.
func (srv *feedbackService) ListFeedback(ctx context.Context) ([]*entity.Feedback, error) {
	feedbackList, err := srv.feedbackRepo.FindAllFeedback(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return feedbackList, nil
}
