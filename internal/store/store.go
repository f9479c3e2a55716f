package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/store/schema"
)

// CompleteListInput represents the input for archiving a list into a trip
type CompleteListInput struct {
	ListID      uuid.UUID
	CompletedAt time.Time
}

// CreateCheckoffSequenceInput represents the input for recording a checkoff sequence
type CreateCheckoffSequenceInput struct {
	TripID  uuid.UUID
	StoreID string
	Entries []domain.SequenceEntry
	IsValid bool
}

// ApplyTripLearningInput represents the evidence extracted from one valid trip
type ApplyTripLearningInput struct {
	TripID        uuid.UUID
	StoreID       string
	Deltas        []domain.PairDelta
	CategoryRanks []domain.CategoryRank
}

// PairwiseDeltaRecord is the persisted form of a pairwise delta in the learning ledger
type PairwiseDeltaRecord struct {
	Level    domain.Level `json:"level"`
	Scope    string       `json:"scope"`
	ItemA    string       `json:"item_a"`
	ItemB    string       `json:"item_b"`
	ABeforeB int64        `json:"a_before_b"`
	BBeforeA int64        `json:"b_before_a"`
}

// PendingLearningFilter selects trips whose learning has not completed
type PendingLearningFilter struct {
	// EndedBefore excludes trips that ended after this time
	EndedBefore time.Time
	// After is the keyset cursor, trips up to and including it are skipped
	After *SweepCursor
	Limit int
}

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations
type Store interface {
	// =============================================================================
	// Lists
	// =============================================================================

	// GetList retrieves a shopping list by ID, nil when it does not exist
	GetList(ctx context.Context, listID uuid.UUID) (*schema.ShoppingList, error)
	// GetListItems retrieves the items of a list in sort order
	GetListItems(ctx context.Context, listID uuid.UUID) ([]schema.ListItem, error)
	// CompleteList marks a list completed and snapshots it into a trip with its items.
	// Returns a nil trip when the list has no items.
	CompleteList(ctx context.Context, input CompleteListInput) (*schema.Trip, error)

	// =============================================================================
	// Trips
	// =============================================================================

	// GetTrip retrieves a trip by ID, nil when it does not exist
	GetTrip(ctx context.Context, tripID uuid.UUID) (*schema.Trip, error)
	// GetTripItems retrieves the items of a trip ordered by check position
	GetTripItems(ctx context.Context, tripID uuid.UUID) ([]schema.TripItem, error)
	// GetTripsPendingLearning retrieves trips with a store that have no checkoff sequence,
	// or a valid one whose evidence has not been applied, in (ended_at, id) order
	GetTripsPendingLearning(ctx context.Context, filter PendingLearningFilter) ([]schema.Trip, error)

	// =============================================================================
	// Checkoff sequences
	// =============================================================================

	// GetCheckoffSequence retrieves the checkoff sequence of a trip, nil when none was recorded
	GetCheckoffSequence(ctx context.Context, tripID uuid.UUID) (*schema.CheckoffSequence, error)
	// CreateCheckoffSequence records the checkoff sequence of a trip once.
	// When a sequence already exists it is returned unchanged.
	CreateCheckoffSequence(ctx context.Context, input CreateCheckoffSequenceInput) (*schema.CheckoffSequence, error)
	// CountValidSequences counts the valid checkoff sequences recorded for a store
	CountValidSequences(ctx context.Context, storeID string) (int64, error)

	// =============================================================================
	// Pairwise comparisons
	// =============================================================================

	// ApplyTripLearning atomically adds the evidence of one trip to the pairwise counters
	// and the category positions. Returns false when the trip had already been applied.
	ApplyTripLearning(ctx context.Context, input ApplyTripLearningInput) (bool, error)
	// IsTripLearningApplied checks if the evidence of a trip has been applied
	IsTripLearningApplied(ctx context.Context, tripID uuid.UUID) (bool, error)
	// GetPairwiseCounts retrieves the counters of a store for the pairs among the given items
	GetPairwiseCounts(ctx context.Context, storeID string, scope domain.Scope, items []string) ([]domain.PairCount, error)
	// GetAggregatedPairwiseCounts retrieves the counters summed across stores for the pairs among the given items
	GetAggregatedPairwiseCounts(ctx context.Context, scope domain.Scope, items []string) ([]domain.PairCount, error)

	// =============================================================================
	// Catalog and category positions
	// =============================================================================

	// GetProductsByIDs retrieves catalog products by IDs
	GetProductsByIDs(ctx context.Context, ids []string) ([]schema.Product, error)
	// GetCategories retrieves all categories ordered by default sort position
	GetCategories(ctx context.Context) ([]schema.Category, error)
	// GetStoreCategoryPositions retrieves the average learned position of each category for a store
	GetStoreCategoryPositions(ctx context.Context, storeID string) (map[int64]float64, error)
	// GetAveragedCategoryPositions retrieves the learned category positions averaged across stores
	GetAveragedCategoryPositions(ctx context.Context) (map[int64]float64, error)
}
