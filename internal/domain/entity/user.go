// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. A user acts either as a tenant
// (browsing listings, expressing interest) or as an owner (publishing listings,
// answering interests); the role is fixed at registration time.
type User struct {
	ID           uuid.UUID `json:"id"`    // The Global Unique Identifier (GUID) for the user.
	Name         string    `json:"name"`  // The user's display name.
	Email        string    `json:"email"` // The user's primary contact email, used as the login identifier.
	Phone        string    `json:"phone"` // The user's contact phone number, snapshotted onto listings and interests.
	Role         Role      `json:"role"`  // The role the user registered with (tenant or owner).
	PasswordHash string    `json:"-"`     // The bcrypt hash of the user's password. Never serialized.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
