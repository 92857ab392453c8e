package impl

import (
	"context"
	"testing"

	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	"homefinder/internal/domain/repository"
	mockRepo "homefinder/internal/mocks/repository"
	mockUsecase "homefinder/internal/mocks/usecase"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// interestServiceFixtures holds all test dependencies for interest service tests.
type interestServiceFixtures struct {
	service      usecase.InterestUsecase
	interestRepo *mockRepo.MockInterestRepository
	propertyRepo *mockRepo.MockPropertyRepository
	userRepo     *mockRepo.MockUserRepository
	notifier     *mockUsecase.MockNotificationUsecase
}

func createTestInterestService(t *testing.T) interestServiceFixtures {
	interestRepo := mockRepo.NewMockInterestRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notifier := mockUsecase.NewMockNotificationUsecase(t)

	service := NewInterestService(InterestServiceParams{
		InterestRepo: interestRepo,
		PropertyRepo: propertyRepo,
		UserRepo:     userRepo,
		Notifier:     notifier,
		Logger:       newDiscardLogger(),
	})

	return interestServiceFixtures{
		service:      service,
		interestRepo: interestRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

func testTenant() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Name:  "Test Tenant",
		Email: "tenant@example.com",
		Phone: "0912345678",
		Role:  entity.RoleTenant,
	}
}

func TestInterestService_SubmitInterest_Success(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	tenant := testTenant()
	property := &entity.Property{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Title:   "Cozy Apartment",
	}
	input := &usecase.SubmitInterestInput{PropertyID: property.ID, Message: "Is it still available?"}

	fx.userRepo.EXPECT().FindUserByID(ctx, tenant.ID).Return(tenant, nil)
	fx.propertyRepo.EXPECT().FindPropertyByID(ctx, property.ID).Return(property, nil)
	fx.interestRepo.EXPECT().
		CreateInterest(ctx, mock.AnythingOfType("*entity.Interest")).
		Run(func(ctx context.Context, interest *entity.Interest) {
			interest.ID = uuid.New()
		}).
		Return(nil)

	fx.notifier.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, notification *entity.Notification) {
			assert.Equal(t, property.OwnerID, notification.UserID)
			assert.Equal(t, entity.NotificationTypeInterestReceived, notification.Type)
			assert.Equal(t, "New Interest Received!", notification.Title)
			assert.Equal(t, `Test Tenant is interested in "Cozy Apartment"`, notification.Message)
			assert.Equal(t, "/owner-dashboard", notification.Link)
		}).
		Return(nil)

	interest, err := fx.service.SubmitInterest(ctx, tenant.ID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.InterestStatusPending, interest.Status)
	assert.Equal(t, property.ID, interest.PropertyID)
	assert.Equal(t, property.Title, interest.PropertyTitle)
	assert.Equal(t, property.OwnerID, interest.OwnerID)
	assert.Equal(t, tenant.Name, interest.TenantName)
	assert.Equal(t, tenant.Email, interest.TenantEmail)
	assert.Equal(t, tenant.Phone, interest.TenantPhone)
	assert.Equal(t, input.Message, interest.Message)
}

func TestInterestService_SubmitInterest_NotificationFailureStillSucceeds(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	tenant := testTenant()
	property := &entity.Property{ID: uuid.New(), OwnerID: uuid.New(), Title: "Cozy Apartment"}

	fx.userRepo.EXPECT().FindUserByID(ctx, tenant.ID).Return(tenant, nil)
	fx.propertyRepo.EXPECT().FindPropertyByID(ctx, property.ID).Return(property, nil)
	fx.interestRepo.EXPECT().CreateInterest(ctx, mock.AnythingOfType("*entity.Interest")).Return(nil)
	fx.notifier.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("notification store unavailable"))

	interest, err := fx.service.SubmitInterest(ctx, tenant.ID, &usecase.SubmitInterestInput{PropertyID: property.ID})

	require.NoError(t, err)
	assert.Equal(t, entity.InterestStatusPending, interest.Status)
}

func TestInterestService_SubmitInterest_OwnerRoleRejected(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleOwner}

	fx.userRepo.EXPECT().FindUserByID(ctx, owner.ID).Return(owner, nil)

	interest, err := fx.service.SubmitInterest(ctx, owner.ID, &usecase.SubmitInterestInput{PropertyID: uuid.New()})

	assert.Nil(t, interest)
	assert.True(t, errors.Is(err, domainerrors.ErrTenantRoleRequired))
}

func TestInterestService_SubmitInterest_OwnListingRejected(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	tenant := testTenant()
	property := &entity.Property{ID: uuid.New(), OwnerID: tenant.ID, Title: "My Own Listing"}

	fx.userRepo.EXPECT().FindUserByID(ctx, tenant.ID).Return(tenant, nil)
	fx.propertyRepo.EXPECT().FindPropertyByID(ctx, property.ID).Return(property, nil)

	interest, err := fx.service.SubmitInterest(ctx, tenant.ID, &usecase.SubmitInterestInput{PropertyID: property.ID})

	assert.Nil(t, interest)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestInterestService_SubmitInterest_DuplicatePending(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	tenant := testTenant()
	property := &entity.Property{ID: uuid.New(), OwnerID: uuid.New(), Title: "Cozy Apartment"}

	fx.userRepo.EXPECT().FindUserByID(ctx, tenant.ID).Return(tenant, nil)
	fx.propertyRepo.EXPECT().FindPropertyByID(ctx, property.ID).Return(property, nil)
	fx.interestRepo.EXPECT().
		CreateInterest(ctx, mock.AnythingOfType("*entity.Interest")).
		Return(repository.ErrDuplicatePendingInterest)

	interest, err := fx.service.SubmitInterest(ctx, tenant.ID, &usecase.SubmitInterestInput{PropertyID: property.ID})

	assert.Nil(t, interest)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateInterest))
}

func TestInterestService_SubmitInterest_PropertyGone(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	tenant := testTenant()
	propertyID := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, tenant.ID).Return(tenant, nil)
	fx.propertyRepo.EXPECT().FindPropertyByID(ctx, propertyID).Return(nil, repository.ErrPropertyNotFound)

	interest, err := fx.service.SubmitInterest(ctx, tenant.ID, &usecase.SubmitInterestInput{PropertyID: propertyID})

	assert.Nil(t, interest)
	assert.True(t, errors.Is(err, domainerrors.ErrPropertyNotFound))
}

func TestInterestService_RespondToInterest_Accept(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	interest := &entity.Interest{
		ID:            uuid.New(),
		PropertyID:    uuid.New(),
		PropertyTitle: "Cozy Apartment",
		OwnerID:       ownerID,
		TenantID:      uuid.New(),
		Status:        entity.InterestStatusPending,
	}

	fx.interestRepo.EXPECT().FindInterestByID(ctx, interest.ID).Return(interest, nil)
	fx.interestRepo.EXPECT().
		UpdateInterestStatus(ctx, interest.ID, entity.InterestStatusAccepted).
		Return(nil)

	fx.notifier.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, notification *entity.Notification) {
			assert.Equal(t, interest.TenantID, notification.UserID)
			assert.Equal(t, entity.NotificationTypeInterestAccepted, notification.Type)
			assert.Equal(t, "Interest Accepted!", notification.Title)
			assert.Equal(t, "/property/"+interest.PropertyID.String(), notification.Link)
		}).
		Return(nil)

	resolved, err := fx.service.RespondToInterest(ctx, ownerID, interest.ID, entity.InterestStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, entity.InterestStatusAccepted, resolved.Status)
}

func TestInterestService_RespondToInterest_Reject(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	interest := &entity.Interest{
		ID:            uuid.New(),
		PropertyID:    uuid.New(),
		PropertyTitle: "Cozy Apartment",
		OwnerID:       ownerID,
		TenantID:      uuid.New(),
		Status:        entity.InterestStatusPending,
	}

	fx.interestRepo.EXPECT().FindInterestByID(ctx, interest.ID).Return(interest, nil)
	fx.interestRepo.EXPECT().
		UpdateInterestStatus(ctx, interest.ID, entity.InterestStatusRejected).
		Return(nil)

	fx.notifier.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, notification *entity.Notification) {
			assert.Equal(t, entity.NotificationTypeInterestRejected, notification.Type)
			assert.Equal(t, "Interest Update", notification.Title)
			assert.Equal(t, `Your interest in "Cozy Apartment" was not accepted this time.`, notification.Message)
		}).
		Return(nil)

	resolved, err := fx.service.RespondToInterest(ctx, ownerID, interest.ID, entity.InterestStatusRejected)

	require.NoError(t, err)
	assert.Equal(t, entity.InterestStatusRejected, resolved.Status)
}

func TestInterestService_RespondToInterest_InvalidStatus(t *testing.T) {
	fx := createTestInterestService(t)

	resolved, err := fx.service.RespondToInterest(context.Background(), uuid.New(), uuid.New(), entity.InterestStatusPending)

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInterestStatus))
}

func TestInterestService_RespondToInterest_NotOwner(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	interest := &entity.Interest{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Status:  entity.InterestStatusPending,
	}

	fx.interestRepo.EXPECT().FindInterestByID(ctx, interest.ID).Return(interest, nil)

	resolved, err := fx.service.RespondToInterest(ctx, uuid.New(), interest.ID, entity.InterestStatusAccepted)

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}

func TestInterestService_RespondToInterest_AlreadyResolved(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	interest := &entity.Interest{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Status:  entity.InterestStatusAccepted,
	}

	fx.interestRepo.EXPECT().FindInterestByID(ctx, interest.ID).Return(interest, nil)

	resolved, err := fx.service.RespondToInterest(ctx, ownerID, interest.ID, entity.InterestStatusRejected)

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrInterestAlreadyResolved))
}

func TestInterestService_ListTenantInterests(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	listed := []*entity.InterestWithProperty{
		{Interest: &entity.Interest{ID: uuid.New(), TenantID: tenantID}},
	}

	fx.interestRepo.EXPECT().FindInterestsByTenant(ctx, tenantID).Return(listed, nil)

	interests, err := fx.service.ListTenantInterests(ctx, tenantID)

	require.NoError(t, err)
	assert.Equal(t, listed, interests)
}

func TestInterestService_ListOwnerInterests(t *testing.T) {
	fx := createTestInterestService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	listed := []*entity.InterestWithProperty{
		{Interest: &entity.Interest{ID: uuid.New(), OwnerID: ownerID}},
	}

	fx.interestRepo.EXPECT().FindInterestsByOwner(ctx, ownerID).Return(listed, nil)

	interests, err := fx.service.ListOwnerInterests(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, listed, interests)
}
