package schema

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents the trips table
// One completed shopping session, immutable once created
type Trip struct {
	ID     uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	ListID uuid.UUID `gorm:"column:list_id;not null;uniqueIndex;type:uuid"`
	UserID string    `gorm:"column:user_id;not null;type:text"`
	// StoreID is NULL when the trip has no known store
	StoreID         *string   `gorm:"column:store_id;type:text"`
	StartedAt       time.Time `gorm:"column:started_at;not null;type:timestamptz"`
	EndedAt         time.Time `gorm:"column:ended_at;not null;type:timestamptz"`
	DurationSeconds int64     `gorm:"column:duration_seconds;not null"`
	ItemCount       int       `gorm:"column:item_count;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Trip model
func (Trip) TableName() string {
	return "trips"
}

// TripItem represents the trip_items table
// One product or free-text entry checked off during a trip
type TripItem struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	TripID       uuid.UUID `gorm:"column:trip_id;not null;type:uuid"`
	ProductID    *string   `gorm:"column:product_id;type:text"`
	Name         string    `gorm:"column:name;not null;type:text"`
	CategoryID   *int64    `gorm:"column:category_id"`
	CategoryName *string   `gorm:"column:category_name;type:text"`
	Quantity     int       `gorm:"column:quantity;not null;default:1"`
	// CheckPosition is the 1-based order of confirmation
	CheckPosition int       `gorm:"column:check_position;not null"`
	CheckedAt     time.Time `gorm:"column:checked_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the TripItem model
func (TripItem) TableName() string {
	return "trip_items"
}
