package postgres

import (
	"context"

	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	"homefinder/internal/domain/repository"
	"homefinder/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRepository implements the repository.FeedbackRepository interface using GORM.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// CreateFeedback persists a new feedback record.
func (repo *feedbackRepository) CreateFeedback(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required feedback information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	// Update the entity with generated values
	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt

	return nil
}

// FindAllFeedback retrieves all feedback records, newest first.
func (repo *feedbackRepository) FindAllFeedback(ctx context.Context) ([]*entity.Feedback, error) {
	var feedbackModels []*model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find feedback")
	}

	feedbackList := make([]*entity.Feedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		feedbackList = append(feedbackList, toFeedbackDomain(feedbackM))
	}

	return feedbackList, nil
}

// --- Mapper Functions ---

// toFeedbackDomain converts a GORM FeedbackModel to a domain Feedback entity.
func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Email:     data.Email,
		Subject:   data.Subject,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}

// fromFeedbackDomain converts a domain Feedback entity to a GORM FeedbackModel.
func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Email:     data.Email,
		Subject:   data.Subject,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}
