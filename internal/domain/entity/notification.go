// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies what lifecycle event produced a notification.
type NotificationType string

const (
	// NotificationTypeInterestReceived is sent to an owner when a tenant submits an interest.
	NotificationTypeInterestReceived NotificationType = "interest_received"
	// NotificationTypeInterestAccepted is sent to a tenant when their interest is accepted.
	NotificationTypeInterestAccepted NotificationType = "interest_accepted"
	// NotificationTypeInterestRejected is sent to a tenant when their interest is rejected.
	NotificationTypeInterestRejected NotificationType = "interest_rejected"
	// NotificationTypePropertyUpdate is reserved for listing-change notifications.
	NotificationTypePropertyUpdate NotificationType = "property_update"
)

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeInterestReceived, NotificationTypeInterestAccepted,
		NotificationTypeInterestRejected, NotificationTypePropertyUpdate:
		return true
	default:
		return false
	}
}

// Notification is an in-app message produced as a side effect of an interest
// lifecycle transition. It is owned by its recipient: only the recipient may
// mark it read or delete it.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"` // The recipient.
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Link      string           `json:"link,omitempty"`       // Optional deep-link target for the client.
	RelatedID *uuid.UUID       `json:"related_id,omitempty"` // Optional reference to the triggering entity (e.g. an interest).
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
