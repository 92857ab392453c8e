package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "homefinder/internal/delivery/context"
	"homefinder/internal/domain/entity"
	domainerrors "homefinder/internal/domain/errors"
	"homefinder/internal/domain/repository"
	"homefinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// interestService implements the InterestUsecase interface.
type interestService struct {
	interestRepo repository.InterestRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	notifier     usecase.NotificationUsecase
	logger       *slog.Logger
}

// InterestServiceParams holds dependencies for interestService, injected by Fx.
type InterestServiceParams struct {
	fx.In

	InterestRepo repository.InterestRepository
	PropertyRepo repository.PropertyRepository
	UserRepo     repository.UserRepository
	Notifier     usecase.NotificationUsecase
	Logger       *slog.Logger
}

// NewInterestService is the constructor for interestService.
func NewInterestService(params InterestServiceParams) usecase.InterestUsecase {
	return &interestService{
		interestRepo: params.InterestRepo,
		propertyRepo: params.PropertyRepo,
		userRepo:     params.UserRepo,
		notifier:     params.Notifier,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *interestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitInterest records a tenant's pending interest in a listing. Tenant
// contact details and the property title/owner are snapshotted so the record
// stays displayable after either side changes. The owner is notified
// best-effort: a notification failure never undoes the stored interest.
func (srv *interestService) SubmitInterest(ctx context.Context, tenantID uuid.UUID, input *usecase.SubmitInterestInput) (*entity.Interest, error) {
	tenant, err := srv.userRepo.FindUserByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant")
	}

	if tenant.Role != entity.RoleTenant {
		return nil, domainerrors.ErrTenantRoleRequired
	}

	property, err := srv.propertyRepo.FindPropertyByID(ctx, input.PropertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	if property.OwnerID == tenantID {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot express interest in your own listing")
	}

	interest := &entity.Interest{
		PropertyID:    property.ID,
		PropertyTitle: property.Title,
		OwnerID:       property.OwnerID,
		TenantID:      tenant.ID,
		TenantName:    tenant.Name,
		TenantEmail:   tenant.Email,
		TenantPhone:   tenant.Phone,
		Status:        entity.InterestStatusPending,
		Message:       input.Message,
	}

	if err := srv.interestRepo.CreateInterest(ctx, interest); err != nil {
		if errors.Is(err, repository.ErrDuplicatePendingInterest) {
			return nil, domainerrors.ErrDuplicateInterest
		}

		return nil, errors.Wrap(err, "failed to create interest")
	}

	srv.dispatchNotification(ctx, &entity.Notification{
		UserID:    property.OwnerID,
		Type:      entity.NotificationTypeInterestReceived,
		Title:     "New Interest Received!",
		Message:   fmt.Sprintf("%s is interested in %q", tenant.Name, property.Title),
		Link:      "/owner-dashboard",
		RelatedID: &interest.ID,
	})

	srv.log(ctx).Info("Interest submitted", slog.Any("interestID", interest.ID), slog.Any("propertyID", property.ID), slog.Any("tenantID", tenant.ID))

	return interest, nil
}

// ListTenantInterests retrieves the tenant's interests, newest first.
func (srv *interestService) ListTenantInterests(ctx context.Context, tenantID uuid.UUID) ([]*entity.InterestWithProperty, error) {
	interests, err := srv.interestRepo.FindInterestsByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tenant interests")
	}

	return interests, nil
}

// ListOwnerInterests retrieves the interests received by the owner, newest first.
func (srv *interestService) ListOwnerInterests(ctx context.Context, ownerID uuid.UUID) ([]*entity.InterestWithProperty, error) {
	interests, err := srv.interestRepo.FindInterestsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner interests")
	}

	return interests, nil
}

// RespondToInterest moves a pending interest to accepted or rejected. Only the
// property owner may respond, only pending interests may transition, and the
// tenant is notified best-effort once the transition is persisted.
func (srv *interestService) RespondToInterest(ctx context.Context, ownerID, interestID uuid.UUID, status entity.InterestStatus) (*entity.Interest, error) {
	if status != entity.InterestStatusAccepted && status != entity.InterestStatusRejected {
		return nil, domainerrors.ErrInvalidInterestStatus
	}

	interest, err := srv.interestRepo.FindInterestByID(ctx, interestID)
	if err != nil {
		if errors.Is(err, repository.ErrInterestNotFound) {
			return nil, domainerrors.ErrInterestNotFound
		}

		return nil, errors.Wrap(err, "failed to find interest")
	}

	if interest.OwnerID != ownerID {
		return nil, domainerrors.ErrNotResourceOwner
	}

	if interest.Status.IsTerminal() {
		return nil, domainerrors.ErrInterestAlreadyResolved
	}

	if err := srv.interestRepo.UpdateInterestStatus(ctx, interestID, status); err != nil {
		if errors.Is(err, repository.ErrInterestNotFound) {
			return nil, domainerrors.ErrInterestNotFound
		}

		return nil, errors.Wrap(err, "failed to update interest status")
	}

	interest.Status = status

	srv.dispatchNotification(ctx, buildInterestResponseNotification(interest))

	srv.log(ctx).Info("Interest resolved", slog.Any("interestID", interest.ID), slog.Any("status", status))

	return interest, nil
}

// dispatchNotification delivers a lifecycle notification best-effort. Failures
// are logged and swallowed so the already-persisted state change stands.
func (srv *interestService) dispatchNotification(ctx context.Context, notification *entity.Notification) {
	if err := srv.notifier.Dispatch(ctx, notification); err != nil {
		srv.log(ctx).Error("Failed to dispatch notification",
			slog.Any("recipientID", notification.UserID),
			slog.Any("type", notification.Type),
			slog.Any("error", err),
		)
	}
}

// buildInterestResponseNotification composes the tenant-facing notification
// for a resolved interest, deep-linking the property.
func buildInterestResponseNotification(interest *entity.Interest) *entity.Notification {
	notification := &entity.Notification{
		UserID:    interest.TenantID,
		Link:      "/property/" + interest.PropertyID.String(),
		RelatedID: &interest.ID,
	}

	if interest.Status == entity.InterestStatusAccepted {
		notification.Type = entity.NotificationTypeInterestAccepted
		notification.Title = "Interest Accepted!"
		notification.Message = fmt.Sprintf("Congratulations! Your interest in %q has been accepted. The owner will contact you soon.", interest.PropertyTitle)
	} else {
		notification.Type = entity.NotificationTypeInterestRejected
		notification.Title = "Interest Update"
		notification.Message = fmt.Sprintf("Your interest in %q was not accepted this time.", interest.PropertyTitle)
	}

	return notification
}
