package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CheckoffSequence represents the checkoff_sequences table
// The validity flag is fixed at creation and never recomputed
type CheckoffSequence struct {
	ID      uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	TripID  uuid.UUID `gorm:"column:trip_id;not null;uniqueIndex;type:uuid"`
	StoreID string    `gorm:"column:store_id;not null;type:text"`
	// Entries holds the time-ordered items with their resolved demand group and sub-group
	// Format: [{"product_id": "...", "demand_group": "Dairy", "checked_at": "..."}]
	Entries datatypes.JSON `gorm:"column:entries;not null;type:jsonb"`
	IsValid bool           `gorm:"column:is_valid;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CheckoffSequence model
func (CheckoffSequence) TableName() string {
	return "checkoff_sequences"
}
