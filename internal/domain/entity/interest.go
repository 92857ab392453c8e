// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// InterestStatus represents the lifecycle state of an expression of interest.
// The state machine is pending -> {accepted, rejected}; accepted and rejected
// are terminal.
type InterestStatus string

const (
	// InterestStatusPending is the initial state of every interest.
	InterestStatusPending InterestStatus = "pending"
	// InterestStatusAccepted is a terminal state set by the property owner.
	InterestStatusAccepted InterestStatus = "accepted"
	// InterestStatusRejected is a terminal state set by the property owner.
	InterestStatusRejected InterestStatus = "rejected"
)

// IsValid checks if the InterestStatus is a valid value.
func (s InterestStatus) IsValid() bool {
	return s == InterestStatusPending || s == InterestStatusAccepted || s == InterestStatusRejected
}

// IsTerminal reports whether no further transition is defined from this state.
func (s InterestStatus) IsTerminal() bool {
	return s == InterestStatusAccepted || s == InterestStatusRejected
}

// Interest is a tenant's formal expression of intent to rent or buy a listing.
// Tenant contact details and the property title/owner are snapshotted at
// submission time; the snapshots are never refreshed.
type Interest struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"property_id"`
	PropertyTitle string    `json:"property_title"`
	OwnerID       uuid.UUID `json:"owner_id"` // Copied from the property at submission time.

	TenantID    uuid.UUID `json:"tenant_id"`
	TenantName  string    `json:"tenant_name"`
	TenantEmail string    `json:"tenant_email"`
	TenantPhone string    `json:"tenant_phone"`

	Status  InterestStatus `json:"status"`
	Message string         `json:"message,omitempty"` // Optional free-text message from the tenant.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InterestWithProperty pairs an interest with its referenced property for display.
// Property is nil when the listing has been deleted since submission.
type InterestWithProperty struct {
	Interest *Interest `json:"interest"`
	Property *Property `json:"property"`
}
