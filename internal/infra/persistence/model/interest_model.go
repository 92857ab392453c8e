package model

import (
	"time"

	"github.com/google/uuid"
)

// InterestModel is the GORM-specific struct for the 'interests' table.
// Tenant contact fields and the property title/owner are denormalized snapshots
// taken at submission time.
//
// The partial unique index on (property_id, tenant_id) WHERE status = 'pending'
// enforces at most one open interest per pair while still allowing resubmission
// after a rejection.
type InterestModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PropertyID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_interests_pending,where:status = 'pending'"`
	PropertyTitle string    `gorm:"type:varchar(255);not null"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`

	TenantID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_interests_pending,where:status = 'pending'"`
	TenantName  string    `gorm:"type:varchar(100);not null"`
	TenantEmail string    `gorm:"type:varchar(255);not null"`
	TenantPhone string    `gorm:"type:varchar(32)"`

	Status  string `gorm:"type:varchar(16);not null;default:'pending'"`
	Message string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InterestModel) TableName() string {
	return "interests"
}
