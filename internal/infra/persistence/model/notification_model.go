package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents an in-app message delivered to a single recipient.
type NotificationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type      string     `gorm:"type:varchar(32);not null"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Message   string     `gorm:"type:text;not null"`
	Link      string     `gorm:"type:text"`
	RelatedID *uuid.UUID `gorm:"type:uuid"`
	IsRead    bool       `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
