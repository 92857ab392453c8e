package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel is the GORM-specific struct for the 'favorites' table.
// The composite unique index keeps the (user, property) pair unique.
type FavoriteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_favorites_user_property"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_favorites_user_property;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
