package impl

import (
	"context"
	"testing"

	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	"homefinder/internal/domain/repository"
	mockRepo "homefinder/internal/mocks/repository"
	mockSvc "homefinder/internal/mocks/service"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// propertyServiceFixtures holds all test dependencies for property service tests.
type propertyServiceFixtures struct {
	service      usecase.PropertyUsecase
	txManager    *mockRepo.MockTransactionManager
	propertyRepo *mockRepo.MockPropertyRepository
	userRepo     *mockRepo.MockUserRepository
	geocoder     *mockSvc.MockGeocoder
}

func createTestPropertyService(t *testing.T) propertyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)

	service := NewPropertyService(PropertyServiceParams{
		TxManager:    txManager,
		PropertyRepo: propertyRepo,
		UserRepo:     userRepo,
		Geocoder:     geocoder,
		Logger:       newDiscardLogger(),
	})

	return propertyServiceFixtures{
		service:      service,
		txManager:    txManager,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		geocoder:     geocoder,
	}
}

func validPropertyInput() *usecase.PropertyInput {
	return &usecase.PropertyInput{
		Title:        "Cozy Apartment",
		Description:  "Two bedrooms near the park",
		PropertyType: entity.PropertyTypeApartment,
		ListingType:  entity.ListingTypeRent,
		Price:        1200,
		Address:      "12 Park Lane",
		City:         "Mumbai",
		Country:      "India",
		Bedrooms:     2,
		Bathrooms:    1,
		Area:         850,
		AreaUnit:     "sqft",
		Amenities:    []string{"parking", "gym"},
	}
}

func TestPropertyService_CreateProperty_SnapshotsOwnerAndResolvesCity(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	owner := &entity.User{
		ID:    uuid.New(),
		Name:  "Test Owner",
		Email: "owner@example.com",
		Phone: "0911222333",
		Role:  entity.RoleOwner,
	}
	input := validPropertyInput()
	mumbai := orb.Point{72.8777, 19.0760}

	fx.userRepo.EXPECT().FindUserByID(ctx, owner.ID).Return(owner, nil)
	fx.geocoder.EXPECT().ResolveCity("Mumbai").Return(mumbai)
	fx.propertyRepo.EXPECT().
		CreateProperty(ctx, mock.AnythingOfType("*entity.Property")).
		Run(func(ctx context.Context, property *entity.Property) {
			property.ID = uuid.New()
		}).
		Return(nil)

	property, err := fx.service.CreateProperty(ctx, owner.ID, input)

	require.NoError(t, err)
	assert.Equal(t, owner.ID, property.OwnerID)
	assert.Equal(t, owner.Name, property.OwnerName)
	assert.Equal(t, owner.Email, property.OwnerEmail)
	assert.Equal(t, owner.Phone, property.OwnerPhone)
	assert.Equal(t, mumbai, property.Location)
	assert.Equal(t, entity.PropertyStatusAvailable, property.Status)
}

func TestPropertyService_CreateProperty_InvalidListingType(t *testing.T) {
	fx := createTestPropertyService(t)

	input := validPropertyInput()
	input.ListingType = entity.ListingType("lease")

	property, err := fx.service.CreateProperty(context.Background(), uuid.New(), input)

	assert.Nil(t, property)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPropertyService_CreateProperty_NonPositivePrice(t *testing.T) {
	fx := createTestPropertyService(t)

	input := validPropertyInput()
	input.Price = 0

	property, err := fx.service.CreateProperty(context.Background(), uuid.New(), input)

	assert.Nil(t, property)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPropertyService_SearchProperties_DefaultsToAvailable(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	listed := []*entity.Property{
		{ID: uuid.New(), Title: "Listing A", Status: entity.PropertyStatusAvailable},
	}

	fx.propertyRepo.EXPECT().
		SearchProperties(ctx, mock.AnythingOfType("repository.PropertySearch")).
		Run(func(ctx context.Context, search repository.PropertySearch) {
			assert.Equal(t, entity.PropertyStatusAvailable, search.Status)
		}).
		Return(listed, nil)

	results, err := fx.service.SearchProperties(ctx, &usecase.SearchCriteria{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, listed[0], results[0].Property)
	assert.Nil(t, results[0].Distance)
}

func TestPropertyService_SearchProperties_InvalidStatusFilter(t *testing.T) {
	fx := createTestPropertyService(t)

	status := entity.PropertyStatus("archived")
	results, err := fx.service.SearchProperties(context.Background(), &usecase.SearchCriteria{Status: &status})

	assert.Nil(t, results)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPropertyService_SearchProperties_NearMeAnnotatesDistance(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	lat, lon := 19.0760, 72.8777
	nearby := &entity.Property{
		ID:       uuid.New(),
		Title:    "Near Listing",
		Status:   entity.PropertyStatusAvailable,
		Location: orb.Point{72.8777, 19.0760},
	}

	fx.propertyRepo.EXPECT().
		SearchPropertiesNear(ctx, mock.AnythingOfType("repository.PropertySearch"), orb.Point{lon, lat}, 10.0).
		Return([]*entity.Property{nearby}, nil)

	results, err := fx.service.SearchProperties(ctx, &usecase.SearchCriteria{
		Latitude:  &lat,
		Longitude: &lon,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Distance)
	assert.Equal(t, "0.00", *results[0].Distance)
}

func TestPropertyService_SearchProperties_CustomRadius(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	lat, lon, radius := 19.0760, 72.8777, 25.0

	fx.propertyRepo.EXPECT().
		SearchPropertiesNear(ctx, mock.AnythingOfType("repository.PropertySearch"), orb.Point{lon, lat}, radius).
		Return([]*entity.Property{}, nil)

	results, err := fx.service.SearchProperties(ctx, &usecase.SearchCriteria{
		Latitude:  &lat,
		Longitude: &lon,
		RadiusKm:  &radius,
	})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPropertyService_SearchProperties_SingleCoordinateFallsBack(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	lat := 19.0760

	fx.propertyRepo.EXPECT().
		SearchProperties(ctx, mock.AnythingOfType("repository.PropertySearch")).
		Return([]*entity.Property{}, nil)

	results, err := fx.service.SearchProperties(ctx, &usecase.SearchCriteria{Latitude: &lat})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPropertyService_UpdateProperty_NotOwner(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()
	property := &entity.Property{ID: propertyID, OwnerID: uuid.New()}

	fx.propertyRepo.EXPECT().FindPropertyByID(ctx, propertyID).Return(property, nil)

	updated, err := fx.service.UpdateProperty(ctx, uuid.New(), propertyID, validPropertyInput())

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}

func TestPropertyService_UpdateProperty_ReResolvesLocation(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	propertyID := uuid.New()
	existing := &entity.Property{
		ID:       propertyID,
		OwnerID:  ownerID,
		City:     "Mumbai",
		Location: orb.Point{72.8777, 19.0760},
		Status:   entity.PropertyStatusAvailable,
	}
	delhi := orb.Point{77.1025, 28.7041}

	input := validPropertyInput()
	input.City = "Delhi"

	fx.propertyRepo.EXPECT().FindPropertyByID(ctx, propertyID).Return(existing, nil)
	fx.geocoder.EXPECT().ResolveCity("Delhi").Return(delhi)
	fx.propertyRepo.EXPECT().UpdateProperty(ctx, mock.AnythingOfType("*entity.Property")).Return(nil)

	updated, err := fx.service.UpdateProperty(ctx, ownerID, propertyID, input)

	require.NoError(t, err)
	assert.Equal(t, "Delhi", updated.City)
	assert.Equal(t, delhi, updated.Location)
	assert.Equal(t, entity.PropertyStatusAvailable, updated.Status)
}

func TestPropertyService_DeleteProperty_RemovesFavoritesInTransaction(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	propertyID := uuid.New()
	property := &entity.Property{ID: propertyID, OwnerID: ownerID}

	fx.propertyRepo.EXPECT().FindPropertyByID(ctx, propertyID).Return(property, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
			mockPropertyRepo := mockRepo.NewMockPropertyRepository(t)

			mockFactory.EXPECT().NewFavoriteRepository().Return(mockFavoriteRepo)
			mockFactory.EXPECT().NewPropertyRepository().Return(mockPropertyRepo)

			mockFavoriteRepo.EXPECT().DeleteFavoritesByProperty(ctx, propertyID).Return(nil)
			mockPropertyRepo.EXPECT().DeleteProperty(ctx, propertyID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteProperty(ctx, ownerID, propertyID)

	require.NoError(t, err)
}

func TestPropertyService_DeleteProperty_NotFound(t *testing.T) {
	fx := createTestPropertyService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	fx.propertyRepo.EXPECT().
		FindPropertyByID(ctx, propertyID).
		Return(nil, repository.ErrPropertyNotFound)

	err := fx.service.DeleteProperty(ctx, uuid.New(), propertyID)

	assert.True(t, errors.Is(err, domainerrors.ErrPropertyNotFound))
}
