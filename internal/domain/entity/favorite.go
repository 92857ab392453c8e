// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a per-user bookmark of a property. The (user, property) pair is
// unique; adding an existing favorite is a no-op.
type Favorite struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	PropertyID uuid.UUID `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// FavoriteWithProperty pairs a favorite with its referenced property for display.
type FavoriteWithProperty struct {
	Favorite *Favorite `json:"favorite"`
	Property *Property `json:"property"`
}
