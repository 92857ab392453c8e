package impl

import (
	"context"

	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	"homefinder/internal/domain/repository"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	propertyRepo repository.PropertyRepository
	interestRepo repository.InterestRepository
}

// NewStatsService creates a new stats service instance.
func NewStatsService(propertyRepo repository.PropertyRepository, interestRepo repository.InterestRepository) usecase.StatsUsecase {
	return &statsService{
		propertyRepo: propertyRepo,
		interestRepo: interestRepo,
	}
}

// GetDashboardStats returns the counters matching the caller's role.
func (srv *statsService) GetDashboardStats(ctx context.Context, userID uuid.UUID, role entity.Role) (*usecase.DashboardStats, error) {
	switch role {
	case entity.RoleOwner:
		return srv.ownerStats(ctx, userID)
	case entity.RoleTenant:
		return srv.tenantStats(ctx, userID)
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}
}

func (srv *statsService) ownerStats(ctx context.Context, ownerID uuid.UUID) (*usecase.DashboardStats, error) {
	stats := &usecase.OwnerStats{}

	total, err := srv.propertyRepo.CountPropertiesByOwner(ctx, ownerID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count owner properties")
	}
	stats.TotalProperties = total

	for status, target := range map[entity.PropertyStatus]*int64{
		entity.PropertyStatusAvailable: &stats.AvailableProperties,
		entity.PropertyStatusRented:    &stats.RentedProperties,
		entity.PropertyStatusSold:      &stats.SoldProperties,
	} {
		count, err := srv.propertyRepo.CountPropertiesByOwner(ctx, ownerID, &status)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count owner properties by status")
		}
		*target = count
	}

	pending := entity.InterestStatusPending
	pendingCount, err := srv.interestRepo.CountInterestsByOwner(ctx, ownerID, &pending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending interests")
	}
	stats.PendingInterests = pendingCount

	accepted := entity.InterestStatusAccepted
	acceptedCount, err := srv.interestRepo.CountInterestsByOwner(ctx, ownerID, &accepted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accepted interests")
	}
	stats.AcceptedInterests = acceptedCount

	return &usecase.DashboardStats{Role: entity.RoleOwner, Owner: stats}, nil
}

func (srv *statsService) tenantStats(ctx context.Context, tenantID uuid.UUID) (*usecase.DashboardStats, error) {
	stats := &usecase.TenantStats{}

	available, err := srv.propertyRepo.CountAvailableProperties(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count available properties")
	}
	stats.AvailableProperties = available

	rent := entity.ListingTypeRent
	forRent, err := srv.propertyRepo.CountAvailableProperties(ctx, &rent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count properties for rent")
	}
	stats.PropertiesForRent = forRent

	sale := entity.ListingTypeSale
	forSale, err := srv.propertyRepo.CountAvailableProperties(ctx, &sale)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count properties for sale")
	}
	stats.PropertiesForSale = forSale

	mine, err := srv.interestRepo.CountInterestsByTenant(ctx, tenantID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count tenant interests")
	}
	stats.MyInterests = mine

	accepted := entity.InterestStatusAccepted
	acceptedCount, err := srv.interestRepo.CountInterestsByTenant(ctx, tenantID, &accepted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accepted tenant interests")
	}
	stats.AcceptedInterests = acceptedCount

	return &usecase.DashboardStats{Role: entity.RoleTenant, Tenant: stats}, nil
}
