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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test Tenant",
		Email:    "tenant@example.com",
		Password: "Password123!",
		Phone:    "0912345678",
		Role:     entity.RoleTenant,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), entity.RoleTenant).
		Return("signed-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleTenant, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, "signed-token", output.Token)
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "Password123!",
		Role:     entity.Role("admin"),
	}

	output, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test Owner",
		Email:    "owner@example.com",
		Password: "Password123!",
		Role:     entity.RoleOwner,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "Password123!",
		Role:     entity.RoleTenant,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Test Tenant",
		Email:        "tenant@example.com",
		Role:         entity.RoleTenant,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID, user.Role).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, user.Email, "Password123!")

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "signed-token", output.Token)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, "nobody@example.com", "whatever")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "tenant@example.com",
		Role:         entity.RoleTenant,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong-password", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, user.Email, "wrong-password")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "tenant@example.com"}

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
