package postgres

import (
	"context"

	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	"homefinder/internal/domain/repository"
	"homefinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// CreateFavorite persists a new bookmark.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or property reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	// Update the entity with generated values
	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// DeleteFavorite removes the bookmark for the given (user, property) pair.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID, propertyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// DeleteFavoritesByProperty removes every bookmark pointing at a property.
func (repo *favoriteRepository) DeleteFavoritesByProperty(ctx context.Context, propertyID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete favorites by property")
	}

	return nil
}

// FindFavoritesByUser retrieves a user's bookmarks, newest first, each joined
// with its referenced property.
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteWithProperty, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	results := make([]*entity.FavoriteWithProperty, 0, len(favoriteModels))
	if len(favoriteModels) == 0 {
		return results, nil
	}

	propertyIDs := make([]uuid.UUID, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		propertyIDs = append(propertyIDs, favoriteM.PropertyID)
	}

	var propertyModels []*model.PropertyModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", propertyIDs).
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load properties for favorites")
	}

	propertiesByID := make(map[uuid.UUID]*entity.Property, len(propertyModels))
	for _, propertyM := range propertyModels {
		propertiesByID[propertyM.ID] = toPropertyDomain(propertyM)
	}

	for _, favoriteM := range favoriteModels {
		results = append(results, &entity.FavoriteWithProperty{
			Favorite: toFavoriteDomain(favoriteM),
			Property: propertiesByID[favoriteM.PropertyID],
		})
	}

	return results, nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:         data.ID,
		UserID:     data.UserID,
		PropertyID: data.PropertyID,
		CreatedAt:  data.CreatedAt,
	}
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:         data.ID,
		UserID:     data.UserID,
		PropertyID: data.PropertyID,
		CreatedAt:  data.CreatedAt,
	}
}
