package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel is the GORM-specific struct for the 'feedback' table.
// UserID is nullable so anonymous submissions are accepted.
type FeedbackModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Name      string     `gorm:"type:varchar(100);not null"`
	Email     string     `gorm:"type:varchar(255);not null"`
	Subject   string     `gorm:"type:varchar(255)"`
	Message   string     `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}
