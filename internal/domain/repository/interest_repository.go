package repository

import (
	"context"

	"homefinder/internal/domain/entity"
	"homefinder/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for interest persistence.
var (
	// ErrInterestNotFound is returned when an interest is not found.
	ErrInterestNotFound = errors.New("interest not found")
	// ErrDuplicatePendingInterest is returned when a pending interest already
	// exists for the same (property, tenant) pair. Backed by a partial unique
	// index so the guarantee holds under concurrent submissions.
	ErrDuplicatePendingInterest = errors.New("pending interest already exists for this property and tenant")
)

// InterestRepository defines the interface for interest-related database operations.
type InterestRepository interface {
	// CreateInterest persists a new interest in pending state.
	// Returns ErrDuplicatePendingInterest when the pending-uniqueness constraint is violated.
	CreateInterest(ctx context.Context, interest *entity.Interest) error

	// FindInterestByID retrieves an interest by its unique ID.
	FindInterestByID(ctx context.Context, id uuid.UUID) (*entity.Interest, error)

	// FindInterestsByTenant retrieves a tenant's interests, newest first,
	// each joined with its referenced property.
	FindInterestsByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.InterestWithProperty, error)

	// FindInterestsByOwner retrieves the interests received by an owner, newest
	// first, each joined with its referenced property.
	FindInterestsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.InterestWithProperty, error)

	// UpdateInterestStatus sets the status and updated-timestamp of an interest.
	UpdateInterestStatus(ctx context.Context, id uuid.UUID, status entity.InterestStatus) error

	// CountInterestsByOwner counts interests received by an owner, optionally restricted to a status.
	CountInterestsByOwner(ctx context.Context, ownerID uuid.UUID, status *entity.InterestStatus) (int64, error)

	// CountInterestsByTenant counts a tenant's interests, optionally restricted to a status.
	CountInterestsByTenant(ctx context.Context, tenantID uuid.UUID, status *entity.InterestStatus) (int64, error)
}
