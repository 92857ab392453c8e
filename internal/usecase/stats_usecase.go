package usecase

import (
	"context"

	"homefinder/internal/domain/entity"

	"github.com/google/uuid"
)

// OwnerStats summarizes an owner's dashboard counters.
type OwnerStats struct {
	TotalProperties     int64 `json:"total_properties"`
	AvailableProperties int64 `json:"available_properties"`
	RentedProperties    int64 `json:"rented_properties"`
	SoldProperties      int64 `json:"sold_properties"`
	PendingInterests    int64 `json:"pending_interests"`
	AcceptedInterests   int64 `json:"accepted_interests"`
}

// TenantStats summarizes a tenant's dashboard counters.
type TenantStats struct {
	AvailableProperties int64 `json:"available_properties"`
	PropertiesForRent   int64 `json:"properties_for_rent"`
	PropertiesForSale   int64 `json:"properties_for_sale"`
	MyInterests         int64 `json:"my_interests"`
	AcceptedInterests   int64 `json:"accepted_interests"`
}

// DashboardStats is the role-dependent stats payload; exactly one side is set.
type DashboardStats struct {
	Role   entity.Role  `json:"role"`
	Owner  *OwnerStats  `json:"owner,omitempty"`
	Tenant *TenantStats `json:"tenant,omitempty"`
}

// StatsUsecase defines the interface for dashboard statistics use cases.
type StatsUsecase interface {
	// GetDashboardStats returns the counters matching the caller's role.
	GetDashboardStats(ctx context.Context, userID uuid.UUID, role entity.Role) (*DashboardStats, error)
}
