package impl

import (
	"context"
	"testing"

	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	"homefinder/internal/domain/repository"
	mockRepo "homefinder/internal/mocks/repository"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *mockRepo.MockFavoriteRepository, *mockRepo.MockPropertyRepository) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	service := NewFavoriteService(favoriteRepo, propertyRepo)

	return service, favoriteRepo, propertyRepo
}

func TestFavoriteService_AddFavorite_Success(t *testing.T) {
	service, favoriteRepo, propertyRepo := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	property := &entity.Property{ID: uuid.New()}

	propertyRepo.EXPECT().FindPropertyByID(ctx, property.ID).Return(property, nil)
	favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.Favorite")).
		Run(func(ctx context.Context, favorite *entity.Favorite) {
			assert.Equal(t, userID, favorite.UserID)
			assert.Equal(t, property.ID, favorite.PropertyID)
		}).
		Return(nil)

	err := service.AddFavorite(ctx, userID, property.ID)

	require.NoError(t, err)
}

func TestFavoriteService_AddFavorite_DuplicateIsIdempotent(t *testing.T) {
	service, favoriteRepo, propertyRepo := createTestFavoriteService(t)

	ctx := context.Background()
	property := &entity.Property{ID: uuid.New()}

	propertyRepo.EXPECT().FindPropertyByID(ctx, property.ID).Return(property, nil)
	favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(repository.ErrDuplicateFavorite)

	err := service.AddFavorite(ctx, uuid.New(), property.ID)

	require.NoError(t, err)
}

func TestFavoriteService_AddFavorite_PropertyGone(t *testing.T) {
	service, _, propertyRepo := createTestFavoriteService(t)

	ctx := context.Background()
	propertyID := uuid.New()

	propertyRepo.EXPECT().
		FindPropertyByID(ctx, propertyID).
		Return(nil, repository.ErrPropertyNotFound)

	err := service.AddFavorite(ctx, uuid.New(), propertyID)

	assert.True(t, errors.Is(err, domainerrors.ErrPropertyNotFound))
}

func TestFavoriteService_RemoveFavorite_Success(t *testing.T) {
	service, favoriteRepo, _ := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	propertyID := uuid.New()

	favoriteRepo.EXPECT().DeleteFavorite(ctx, userID, propertyID).Return(nil)

	err := service.RemoveFavorite(ctx, userID, propertyID)

	require.NoError(t, err)
}

func TestFavoriteService_RemoveFavorite_NotFound(t *testing.T) {
	service, favoriteRepo, _ := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	propertyID := uuid.New()

	favoriteRepo.EXPECT().
		DeleteFavorite(ctx, userID, propertyID).
		Return(repository.ErrFavoriteNotFound)

	err := service.RemoveFavorite(ctx, userID, propertyID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	service, favoriteRepo, _ := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	listed := []*entity.FavoriteWithProperty{
		{Favorite: &entity.Favorite{ID: uuid.New(), UserID: userID}},
	}

	favoriteRepo.EXPECT().FindFavoritesByUser(ctx, userID).Return(listed, nil)

	favorites, err := service.ListFavorites(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, listed, favorites)
}
