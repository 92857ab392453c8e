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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	propertyRepo repository.PropertyRepository
}

// NewFavoriteService creates a new favorite service instance.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, propertyRepo repository.PropertyRepository) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
	}
}

// AddFavorite bookmarks a listing for the user. Re-adding an already-saved
// listing succeeds without effect.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID, propertyID uuid.UUID) error {
	if _, err := srv.propertyRepo.FindPropertyByID(ctx, propertyID); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}

		return errors.Wrap(err, "failed to find property")
	}

	favorite := &entity.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
	}

	if err := srv.favoriteRepo.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil
		}

		return errors.Wrap(err, "failed to create favorite")
	}

	return nil
}

// RemoveFavorite removes the user's bookmark of a listing.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, propertyID uuid.UUID) error {
	if err := srv.favoriteRepo.DeleteFavorite(ctx, userID, propertyID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("favorite not found")
		}

		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}

// ListFavorites retrieves the user's bookmarks, newest first.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteWithProperty, error) {
	favorites, err := srv.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}
