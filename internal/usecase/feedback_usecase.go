package usecase

import (
	"context"

	"homefinder/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitFeedbackInput carries a contact-form submission. UserID is nil for
// anonymous submissions.
type SubmitFeedbackInput struct {
	UserID  *uuid.UUID
	Name    string
	Email   string
	Subject string
	Message string
}

// FeedbackUsecase defines the interface for feedback use cases.
type FeedbackUsecase interface {
	// SubmitFeedback records a contact-form submission.
	SubmitFeedback(ctx context.Context, input *SubmitFeedbackInput) (*entity.Feedback, error)

	// ListFeedback retrieves all submissions, newest first.
	ListFeedback(ctx context.Context) ([]*entity.Feedback, error)
}
