package repository

import (
	"context"

	"homefinder/internal/domain/entity"
	"homefinder/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the (user, property) pair is already bookmarked.
	ErrDuplicateFavorite = errors.New("property already in favorites")
)

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// CreateFavorite persists a new bookmark.
	// Returns ErrDuplicateFavorite when the pair already exists.
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) error

	// DeleteFavorite removes the bookmark for the given (user, property) pair.
	DeleteFavorite(ctx context.Context, userID, propertyID uuid.UUID) error

	// DeleteFavoritesByProperty removes every bookmark pointing at a property.
	// Used when the listing itself is deleted.
	DeleteFavoritesByProperty(ctx context.Context, propertyID uuid.UUID) error

	// FindFavoritesByUser retrieves a user's bookmarks, newest first, each
	// joined with its referenced property.
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteWithProperty, error)
}
