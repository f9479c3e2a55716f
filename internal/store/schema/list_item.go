package schema

import (
	"time"

	"github.com/google/uuid"
)

// ListItem represents the list_items table
type ListItem struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ListID is the foreign key to shopping_lists
	ListID uuid.UUID `gorm:"column:list_id;not null;type:uuid"`
	// ProductID references the catalog, NULL for free-text entries
	ProductID *string `gorm:"column:product_id;type:text"`
	// Name is the display name of the entry
	Name string `gorm:"column:name;not null;type:text"`
	// CategoryID is the display category
	CategoryID *int64 `gorm:"column:category_id"`
	// CategoryName is the display category name at the time the item was added
	CategoryName *string `gorm:"column:category_name;type:text"`
	Quantity     int     `gorm:"column:quantity;not null;default:1"`
	// SortPosition is the current position of the item in the list
	SortPosition int `gorm:"column:sort_position;not null;default:0"`
	// CheckedAt is when the item was checked off, NULL while unchecked
	CheckedAt *time.Time `gorm:"column:checked_at;type:timestamptz"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ListItem model
func (ListItem) TableName() string {
	return "list_items"
}
