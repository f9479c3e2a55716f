package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/shopwalk/aisle-engine/internal/domain"
)

// PairwiseComparison represents the pairwise_comparisons table
// Counts only ever grow; a missing row means no evidence yet
type PairwiseComparison struct {
	StoreID string       `gorm:"column:store_id;primaryKey;type:text"`
	Level   domain.Level `gorm:"column:level;primaryKey;type:comparison_level"`
	// Scope is empty for the group level, the group for the subgroup level
	// and "group|subgroup" for the product level
	Scope string `gorm:"column:scope;primaryKey;type:text"`
	// ItemA and ItemB are stored in canonical order (item_a < item_b)
	ItemA         string    `gorm:"column:item_a;primaryKey;type:text"`
	ItemB         string    `gorm:"column:item_b;primaryKey;type:text"`
	ABeforeBCount int64     `gorm:"column:a_before_b_count;not null;default:0"`
	BBeforeACount int64     `gorm:"column:b_before_a_count;not null;default:0"`
	LastUpdatedAt time.Time `gorm:"column:last_updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PairwiseComparison model
func (PairwiseComparison) TableName() string {
	return "pairwise_comparisons"
}

// PairwiseLearningLedger represents the pairwise_learning_ledger table
// One row per trip whose evidence has been applied
type PairwiseLearningLedger struct {
	TripID  uuid.UUID `gorm:"column:trip_id;primaryKey;type:uuid"`
	StoreID string    `gorm:"column:store_id;not null;type:text"`
	// Deltas holds the exact pairwise deltas that were applied
	Deltas    datatypes.JSON `gorm:"column:deltas;not null;type:jsonb"`
	AppliedAt time.Time      `gorm:"column:applied_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PairwiseLearningLedger model
func (PairwiseLearningLedger) TableName() string {
	return "pairwise_learning_ledger"
}

// StoreCategoryPosition represents the store_category_positions table
// Accumulates the first-seen rank of a category over the valid trips of a store
type StoreCategoryPosition struct {
	StoreID          string    `gorm:"column:store_id;primaryKey;type:text"`
	CategoryID       int64     `gorm:"column:category_id;primaryKey"`
	PositionSum      int64     `gorm:"column:position_sum;not null;default:0"`
	ObservationCount int64     `gorm:"column:observation_count;not null;default:0"`
	UpdatedAt        time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the StoreCategoryPosition model
func (StoreCategoryPosition) TableName() string {
	return "store_category_positions"
}
