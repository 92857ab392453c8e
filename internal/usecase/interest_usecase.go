package usecase

import (
	"context"

	"homefinder/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitInterestInput carries a tenant's expression of interest.
type SubmitInterestInput struct {
	PropertyID uuid.UUID
	Message    string
}

// InterestUsecase defines the interface for interest lifecycle use cases.
type InterestUsecase interface {
	// SubmitInterest records a tenant's pending interest in a listing and
	// notifies the owner.
	SubmitInterest(ctx context.Context, tenantID uuid.UUID, input *SubmitInterestInput) (*entity.Interest, error)

	// ListTenantInterests retrieves the tenant's interests, newest first.
	ListTenantInterests(ctx context.Context, tenantID uuid.UUID) ([]*entity.InterestWithProperty, error)

	// ListOwnerInterests retrieves the interests received by the owner, newest first.
	ListOwnerInterests(ctx context.Context, ownerID uuid.UUID) ([]*entity.InterestWithProperty, error)

	// RespondToInterest moves a pending interest to accepted or rejected and
	// notifies the tenant.
	RespondToInterest(ctx context.Context, ownerID, interestID uuid.UUID, status entity.InterestStatus) (*entity.Interest, error)
}
