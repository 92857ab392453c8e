package impl

import (
	"context"
	"testing"

	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	mockRepo "homefinder/internal/mocks/repository"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStatsService(t *testing.T) (usecase.StatsUsecase, *mockRepo.MockPropertyRepository, *mockRepo.MockInterestRepository) {
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	interestRepo := mockRepo.NewMockInterestRepository(t)
	service := NewStatsService(propertyRepo, interestRepo)

	return service, propertyRepo, interestRepo
}

func TestStatsService_GetDashboardStats_Owner(t *testing.T) {
	service, propertyRepo, interestRepo := createTestStatsService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	available := entity.PropertyStatusAvailable
	rented := entity.PropertyStatusRented
	sold := entity.PropertyStatusSold
	pending := entity.InterestStatusPending
	accepted := entity.InterestStatusAccepted

	propertyRepo.EXPECT().CountPropertiesByOwner(ctx, ownerID, (*entity.PropertyStatus)(nil)).Return(int64(7), nil)
	propertyRepo.EXPECT().CountPropertiesByOwner(ctx, ownerID, &available).Return(int64(4), nil)
	propertyRepo.EXPECT().CountPropertiesByOwner(ctx, ownerID, &rented).Return(int64(2), nil)
	propertyRepo.EXPECT().CountPropertiesByOwner(ctx, ownerID, &sold).Return(int64(1), nil)
	interestRepo.EXPECT().CountInterestsByOwner(ctx, ownerID, &pending).Return(int64(3), nil)
	interestRepo.EXPECT().CountInterestsByOwner(ctx, ownerID, &accepted).Return(int64(5), nil)

	stats, err := service.GetDashboardStats(ctx, ownerID, entity.RoleOwner)

	require.NoError(t, err)
	require.NotNil(t, stats.Owner)
	assert.Nil(t, stats.Tenant)
	assert.Equal(t, entity.RoleOwner, stats.Role)
	assert.Equal(t, int64(7), stats.Owner.TotalProperties)
	assert.Equal(t, int64(4), stats.Owner.AvailableProperties)
	assert.Equal(t, int64(2), stats.Owner.RentedProperties)
	assert.Equal(t, int64(1), stats.Owner.SoldProperties)
	assert.Equal(t, int64(3), stats.Owner.PendingInterests)
	assert.Equal(t, int64(5), stats.Owner.AcceptedInterests)
}

func TestStatsService_GetDashboardStats_Tenant(t *testing.T) {
	service, propertyRepo, interestRepo := createTestStatsService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	rent := entity.ListingTypeRent
	sale := entity.ListingTypeSale
	accepted := entity.InterestStatusAccepted

	propertyRepo.EXPECT().CountAvailableProperties(ctx, (*entity.ListingType)(nil)).Return(int64(20), nil)
	propertyRepo.EXPECT().CountAvailableProperties(ctx, &rent).Return(int64(12), nil)
	propertyRepo.EXPECT().CountAvailableProperties(ctx, &sale).Return(int64(8), nil)
	interestRepo.EXPECT().CountInterestsByTenant(ctx, tenantID, (*entity.InterestStatus)(nil)).Return(int64(4), nil)
	interestRepo.EXPECT().CountInterestsByTenant(ctx, tenantID, &accepted).Return(int64(1), nil)

	stats, err := service.GetDashboardStats(ctx, tenantID, entity.RoleTenant)

	require.NoError(t, err)
	require.NotNil(t, stats.Tenant)
	assert.Nil(t, stats.Owner)
	assert.Equal(t, entity.RoleTenant, stats.Role)
	assert.Equal(t, int64(20), stats.Tenant.AvailableProperties)
	assert.Equal(t, int64(12), stats.Tenant.PropertiesForRent)
	assert.Equal(t, int64(8), stats.Tenant.PropertiesForSale)
	assert.Equal(t, int64(4), stats.Tenant.MyInterests)
	assert.Equal(t, int64(1), stats.Tenant.AcceptedInterests)
}

func TestStatsService_GetDashboardStats_UnknownRole(t *testing.T) {
	service, _, _ := createTestStatsService(t)

	stats, err := service.GetDashboardStats(context.Background(), uuid.New(), entity.Role("admin"))

	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestStatsService_GetDashboardStats_CountFailure(t *testing.T) {
	service, propertyRepo, _ := createTestStatsService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	propertyRepo.EXPECT().
		CountPropertiesByOwner(ctx, ownerID, (*entity.PropertyStatus)(nil)).
		Return(int64(0), errors.New("connection reset"))

	stats, err := service.GetDashboardStats(ctx, ownerID, entity.RoleOwner)

	assert.Nil(t, stats)
	assert.Error(t, err)
}
