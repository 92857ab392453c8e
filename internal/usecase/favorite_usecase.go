package usecase

import (
	"context"

	"homefinder/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the interface for bookmark use cases.
type FavoriteUsecase interface {
	// AddFavorite bookmarks a listing for the user. Idempotent: bookmarking an
	// already-saved listing succeeds without effect.
	AddFavorite(ctx context.Context, userID, propertyID uuid.UUID) error

	// RemoveFavorite removes the user's bookmark of a listing.
	RemoveFavorite(ctx context.Context, userID, propertyID uuid.UUID) error

	// ListFavorites retrieves the user's bookmarks, newest first, joined with
	// their listings.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteWithProperty, error)
}
