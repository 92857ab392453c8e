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

// interestRepository implements the repository.InterestRepository interface using GORM.
type interestRepository struct {
	db *gorm.DB
}

// NewInterestRepository is the constructor for interestRepository.
func NewInterestRepository(db *gorm.DB) repository.InterestRepository {
	return &interestRepository{
		db: db,
	}
}

// CreateInterest persists a new interest in pending state.
// The partial unique index on (property_id, tenant_id) WHERE status = 'pending'
// rejects a second open interest for the same pair even under concurrent submissions.
func (repo *interestRepository) CreateInterest(ctx context.Context, interest *entity.Interest) error {
	interestM := fromInterestDomain(interest)

	if err := repo.db.WithContext(ctx).Create(interestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePendingInterest
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required interest information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create interest")
	}

	// Update the entity with generated values
	interest.ID = interestM.ID
	interest.CreatedAt = interestM.CreatedAt
	interest.UpdatedAt = interestM.UpdatedAt

	return nil
}

// FindInterestByID retrieves an interest by its unique ID.
func (repo *interestRepository) FindInterestByID(ctx context.Context, id uuid.UUID) (*entity.Interest, error) {
	var interestM model.InterestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&interestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInterestNotFound
		}

		return nil, errors.Wrap(err, "failed to find interest by ID")
	}

	return toInterestDomain(&interestM), nil
}

// FindInterestsByTenant retrieves a tenant's interests, newest first, each
// joined with its referenced property.
func (repo *interestRepository) FindInterestsByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.InterestWithProperty, error) {
	var interestModels []*model.InterestModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&interestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find interests by tenant")
	}

	return repo.attachProperties(ctx, interestModels)
}

// FindInterestsByOwner retrieves the interests received by an owner, newest
// first, each joined with its referenced property.
func (repo *interestRepository) FindInterestsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.InterestWithProperty, error) {
	var interestModels []*model.InterestModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&interestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find interests by owner")
	}

	return repo.attachProperties(ctx, interestModels)
}

// attachProperties loads the referenced properties in a single query and pairs
// them with their interests. A deleted listing leaves the Property field nil.
func (repo *interestRepository) attachProperties(ctx context.Context, interestModels []*model.InterestModel) ([]*entity.InterestWithProperty, error) {
	results := make([]*entity.InterestWithProperty, 0, len(interestModels))
	if len(interestModels) == 0 {
		return results, nil
	}

	propertyIDs := make([]uuid.UUID, 0, len(interestModels))
	seen := make(map[uuid.UUID]struct{}, len(interestModels))
	for _, interestM := range interestModels {
		if _, ok := seen[interestM.PropertyID]; ok {
			continue
		}
		seen[interestM.PropertyID] = struct{}{}
		propertyIDs = append(propertyIDs, interestM.PropertyID)
	}

	var propertyModels []*model.PropertyModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", propertyIDs).
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load properties for interests")
	}

	propertiesByID := make(map[uuid.UUID]*entity.Property, len(propertyModels))
	for _, propertyM := range propertyModels {
		propertiesByID[propertyM.ID] = toPropertyDomain(propertyM)
	}

	for _, interestM := range interestModels {
		results = append(results, &entity.InterestWithProperty{
			Interest: toInterestDomain(interestM),
			Property: propertiesByID[interestM.PropertyID],
		})
	}

	return results, nil
}

// UpdateInterestStatus sets the status and updated-timestamp of an interest.
func (repo *interestRepository) UpdateInterestStatus(ctx context.Context, id uuid.UUID, status entity.InterestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InterestModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update interest status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInterestNotFound
	}

	return nil
}

// CountInterestsByOwner counts interests received by an owner, optionally restricted to a status.
func (repo *interestRepository) CountInterestsByOwner(ctx context.Context, ownerID uuid.UUID, status *entity.InterestStatus) (int64, error) {
	return repo.countInterests(ctx, "owner_id", ownerID, status)
}

// CountInterestsByTenant counts a tenant's interests, optionally restricted to a status.
func (repo *interestRepository) CountInterestsByTenant(ctx context.Context, tenantID uuid.UUID, status *entity.InterestStatus) (int64, error) {
	return repo.countInterests(ctx, "tenant_id", tenantID, status)
}

func (repo *interestRepository) countInterests(ctx context.Context, column string, id uuid.UUID, status *entity.InterestStatus) (int64, error) {
	var count int64

	query := repo.db.WithContext(ctx).
		Model(&model.InterestModel{}).
		Where(column+" = ?", id)

	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count interests")
	}

	return count, nil
}

// --- Mapper Functions ---

// toInterestDomain converts a GORM InterestModel to a domain Interest entity.
func toInterestDomain(data *model.InterestModel) *entity.Interest {
	if data == nil {
		return nil
	}

	return &entity.Interest{
		ID:            data.ID,
		PropertyID:    data.PropertyID,
		PropertyTitle: data.PropertyTitle,
		OwnerID:       data.OwnerID,
		TenantID:      data.TenantID,
		TenantName:    data.TenantName,
		TenantEmail:   data.TenantEmail,
		TenantPhone:   data.TenantPhone,
		Status:        entity.InterestStatus(data.Status),
		Message:       data.Message,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromInterestDomain converts a domain Interest entity to a GORM InterestModel.
func fromInterestDomain(data *entity.Interest) *model.InterestModel {
	if data == nil {
		return nil
	}

	return &model.InterestModel{
		ID:            data.ID,
		PropertyID:    data.PropertyID,
		PropertyTitle: data.PropertyTitle,
		OwnerID:       data.OwnerID,
		TenantID:      data.TenantID,
		TenantName:    data.TenantName,
		TenantEmail:   data.TenantEmail,
		TenantPhone:   data.TenantPhone,
		Status:        string(data.Status),
		Message:       data.Message,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
