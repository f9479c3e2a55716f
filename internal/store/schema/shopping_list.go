package schema

import (
	"time"

	"github.com/google/uuid"
)

// ListStatus represents the lifecycle status of a shopping list
type ListStatus string

const (
	// ListStatusActive indicates the list is being shopped
	ListStatusActive ListStatus = "active"
	// ListStatusCompleted indicates the list has been archived into a trip
	ListStatusCompleted ListStatus = "completed"
)

// ShoppingList represents the shopping_lists table
type ShoppingList struct {
	// ID is the list identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// UserID is the owner of the list
	UserID string `gorm:"column:user_id;not null;type:text"`
	// StoreID is the store the list is being shopped at, NULL when unknown
	StoreID *string `gorm:"column:store_id;type:text"`
	// Name is the display name of the list
	Name string `gorm:"column:name;not null;type:text"`
	// Status is active until the list is completed
	Status ListStatus `gorm:"column:status;not null;type:list_status;default:active"`
	// StartedAt is when shopping started
	StartedAt time.Time `gorm:"column:started_at;not null;default:now();type:timestamptz"`
	// CompletedAt is when the list was completed
	CompletedAt *time.Time `gorm:"column:completed_at;type:timestamptz"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ShoppingList model
func (ShoppingList) TableName() string {
	return "shopping_lists"
}
