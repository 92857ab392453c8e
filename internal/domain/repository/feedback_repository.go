package repository

import (
	"context"

	"homefinder/internal/domain/entity"
)

// FeedbackRepository defines the interface for feedback-related database operations.
type FeedbackRepository interface {
	// CreateFeedback persists a new feedback record.
	CreateFeedback(ctx context.Context, feedback *entity.Feedback) error

	// FindAllFeedback retrieves all feedback records, newest first.
	FindAllFeedback(ctx context.Context) ([]*entity.Feedback, error)
}
