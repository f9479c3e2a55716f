package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/store/schema"
	"github.com/shopwalk/aisle-engine/internal/types"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testEpoch = time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)

// dbOf returns the gorm handle behind a store for seeding tables the store only reads
func dbOf(t *testing.T, store Store) *gorm.DB {
	pg, ok := store.(*pgStore)
	require.True(t, ok, "seeding requires the postgres store")
	return pg.db
}

// seedList creates an active list with the given items
func seedList(t *testing.T, store Store, storeID *string, items []schema.ListItem) uuid.UUID {
	db := dbOf(t, store)

	list := schema.ShoppingList{
		ID:        uuid.New(),
		UserID:    "user-1",
		StoreID:   storeID,
		Name:      "Weekly",
		Status:    schema.ListStatusActive,
		StartedAt: testEpoch,
	}
	require.NoError(t, db.Create(&list).Error)

	for i := range items {
		items[i].ListID = list.ID
		if items[i].Quantity == 0 {
			items[i].Quantity = 1
		}
	}
	if len(items) > 0 {
		require.NoError(t, db.Create(&items).Error)
	}

	return list.ID
}

// buildListItems creates n checked items spaced one minute apart
func buildListItems(n int) []schema.ListItem {
	products := []string{"p-apple", "p-banana", "p-bread", "p-whole", "p-oat", "p-cheddar", "p-peas"}
	items := make([]schema.ListItem, n)
	for i := range items {
		checkedAt := testEpoch.Add(time.Duration(i+1) * time.Minute)
		items[i] = schema.ListItem{
			ProductID:    types.StringPtr(products[i%len(products)]),
			Name:         fmt.Sprintf("item %d", i+1),
			SortPosition: i,
			CheckedAt:    &checkedAt,
		}
	}
	return items
}

// createTrip seeds a list and completes it into a trip
func createTrip(t *testing.T, store Store, storeID *string, completedAt time.Time) *schema.Trip {
	listID := seedList(t, store, storeID, buildListItems(3))
	trip, err := store.CompleteList(context.Background(), CompleteListInput{
		ListID:      listID,
		CompletedAt: completedAt,
	})
	require.NoError(t, err)
	require.NotNil(t, trip)
	return trip
}

func groupDelta(first, second string) domain.PairDelta {
	return domain.PairDelta{
		Scope:    domain.GroupScope(),
		Pair:     domain.Pair{A: first, B: second},
		ABeforeB: 1,
	}
}

func findCount(counts []domain.PairCount, a, b string) *domain.PairCount {
	for i := range counts {
		if counts[i].Pair.A == a && counts[i].Pair.B == b {
			return &counts[i]
		}
	}
	return nil
}

// =============================================================================
// Test: CompleteList
// =============================================================================

func testCompleteList(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("snapshots the list into a trip with ordered items", func(t *testing.T) {
		storeID := types.StringPtr("store-1")
		items := buildListItems(3)
		// sort order differs from insertion order
		items[0].SortPosition = 2
		items[2].SortPosition = 0
		// unchecked item falls back to the completion time
		items[1].CheckedAt = nil
		listID := seedList(t, store, storeID, items)

		completedAt := testEpoch.Add(20 * time.Minute)
		trip, err := store.CompleteList(ctx, CompleteListInput{ListID: listID, CompletedAt: completedAt})
		require.NoError(t, err)
		require.NotNil(t, trip)

		assert.Equal(t, listID, trip.ListID)
		assert.Equal(t, "user-1", trip.UserID)
		assert.Equal(t, storeID, trip.StoreID)
		assert.Equal(t, 3, trip.ItemCount)
		assert.Equal(t, int64(20*60), trip.DurationSeconds)

		tripItems, err := store.GetTripItems(ctx, trip.ID)
		require.NoError(t, err)
		require.Len(t, tripItems, 3)
		assert.Equal(t, "item 3", tripItems[0].Name)
		assert.Equal(t, "item 2", tripItems[1].Name)
		assert.Equal(t, "item 1", tripItems[2].Name)
		for i, item := range tripItems {
			assert.Equal(t, i+1, item.CheckPosition)
		}
		assert.True(t, completedAt.Equal(tripItems[1].CheckedAt))

		list, err := store.GetList(ctx, listID)
		require.NoError(t, err)
		assert.Equal(t, schema.ListStatusCompleted, list.Status)
		require.NotNil(t, list.CompletedAt)

		fetched, err := store.GetTrip(ctx, trip.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, trip.ID, fetched.ID)
	})

	t.Run("completing twice fails", func(t *testing.T) {
		listID := seedList(t, store, nil, buildListItems(2))

		_, err := store.CompleteList(ctx, CompleteListInput{ListID: listID, CompletedAt: testEpoch.Add(time.Hour)})
		require.NoError(t, err)

		_, err = store.CompleteList(ctx, CompleteListInput{ListID: listID, CompletedAt: testEpoch.Add(time.Hour)})
		assert.ErrorIs(t, err, domain.ErrListAlreadyCompleted)
	})

	t.Run("unknown list", func(t *testing.T) {
		_, err := store.CompleteList(ctx, CompleteListInput{ListID: uuid.New(), CompletedAt: testEpoch})
		assert.ErrorIs(t, err, domain.ErrListNotFound)

		list, err := store.GetList(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, list)

		trip, err := store.GetTrip(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, trip)
	})

	t.Run("empty list completes without a trip", func(t *testing.T) {
		listID := seedList(t, store, types.StringPtr("store-1"), nil)

		trip, err := store.CompleteList(ctx, CompleteListInput{ListID: listID, CompletedAt: testEpoch.Add(time.Hour)})
		require.NoError(t, err)
		assert.Nil(t, trip)

		list, err := store.GetList(ctx, listID)
		require.NoError(t, err)
		assert.Equal(t, schema.ListStatusCompleted, list.Status)
	})
}

// =============================================================================
// Test: Checkoff sequences
// =============================================================================

func testCheckoffSequences(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("sequence is recorded once and validity never changes", func(t *testing.T) {
		trip := createTrip(t, store, types.StringPtr("store-seq"), testEpoch.Add(time.Hour))
		entries := []domain.SequenceEntry{
			{ProductID: types.StringPtr("p-whole"), Name: "Whole Milk", DemandGroup: types.StringPtr("Dairy"), CheckPosition: 1, CheckedAt: testEpoch},
		}

		created, err := store.CreateCheckoffSequence(ctx, CreateCheckoffSequenceInput{
			TripID:  trip.ID,
			StoreID: "store-seq",
			Entries: entries,
			IsValid: true,
		})
		require.NoError(t, err)
		assert.True(t, created.IsValid)

		again, err := store.CreateCheckoffSequence(ctx, CreateCheckoffSequenceInput{
			TripID:  trip.ID,
			StoreID: "store-seq",
			IsValid: false,
		})
		require.NoError(t, err)
		assert.True(t, again.IsValid)
		assert.Equal(t, created.ID, again.ID)

		fetched, err := store.GetCheckoffSequence(ctx, trip.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)

		var decoded []domain.SequenceEntry
		require.NoError(t, json.Unmarshal(fetched.Entries, &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "Dairy", *decoded[0].DemandGroup)
	})

	t.Run("missing sequence", func(t *testing.T) {
		sequence, err := store.GetCheckoffSequence(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, sequence)
	})

	t.Run("only valid sequences are counted", func(t *testing.T) {
		for i, valid := range []bool{true, false, true} {
			trip := createTrip(t, store, types.StringPtr("store-count"), testEpoch.Add(time.Duration(i+1)*time.Hour))
			_, err := store.CreateCheckoffSequence(ctx, CreateCheckoffSequenceInput{
				TripID:  trip.ID,
				StoreID: "store-count",
				IsValid: valid,
			})
			require.NoError(t, err)
		}

		count, err := store.CountValidSequences(ctx, "store-count")
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = store.CountValidSequences(ctx, "store-none")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

// =============================================================================
// Test: Pairwise comparisons
// =============================================================================

func testPairwiseCanonicalization(t *testing.T, store Store) {
	ctx := context.Background()

	trip := createTrip(t, store, types.StringPtr("store-canon"), testEpoch.Add(time.Hour))

	// Dairy was seen before Bakery, given in non-canonical order
	applied, err := store.ApplyTripLearning(ctx, ApplyTripLearningInput{
		TripID:  trip.ID,
		StoreID: "store-canon",
		Deltas:  []domain.PairDelta{groupDelta("Dairy", "Bakery")},
	})
	require.NoError(t, err)
	assert.True(t, applied)

	forward, err := store.GetPairwiseCounts(ctx, "store-canon", domain.GroupScope(), []string{"Dairy", "Bakery"})
	require.NoError(t, err)
	backward, err := store.GetPairwiseCounts(ctx, "store-canon", domain.GroupScope(), []string{"Bakery", "Dairy"})
	require.NoError(t, err)

	require.Len(t, forward, 1)
	assert.Equal(t, forward, backward)
	assert.Equal(t, domain.Pair{A: "Bakery", B: "Dairy"}, forward[0].Pair)
	assert.Equal(t, 0.0, forward[0].ABeforeB)
	assert.Equal(t, 1.0, forward[0].BBeforeA)
}

func testPairwiseMonotonicity(t *testing.T, store Store) {
	ctx := context.Background()
	scope := domain.ProductScope("Dairy", "Milk")

	observations := []struct {
		first, second string
	}{
		{"p-whole", "p-oat"},
		{"p-oat", "p-whole"},
		{"p-whole", "p-oat"},
		{"p-whole", "p-oat"},
	}

	for i, o := range observations {
		trip := createTrip(t, store, types.StringPtr("store-mono"), testEpoch.Add(time.Duration(i+1)*time.Hour))
		applied, err := store.ApplyTripLearning(ctx, ApplyTripLearningInput{
			TripID:  trip.ID,
			StoreID: "store-mono",
			Deltas: []domain.PairDelta{{
				Scope:    scope,
				Pair:     domain.Pair{A: o.first, B: o.second},
				ABeforeB: 1,
			}},
		})
		require.NoError(t, err)
		require.True(t, applied)

		counts, err := store.GetPairwiseCounts(ctx, "store-mono", scope, []string{"p-whole", "p-oat"})
		require.NoError(t, err)
		require.Len(t, counts, 1)
		assert.Equal(t, float64(i+1), counts[0].ABeforeB+counts[0].BBeforeA)
	}

	counts, err := store.GetPairwiseCounts(ctx, "store-mono", scope, []string{"p-oat", "p-whole"})
	require.NoError(t, err)
	pc := findCount(counts, "p-oat", "p-whole")
	require.NotNil(t, pc)
	assert.Equal(t, 1.0, pc.ABeforeB)
	assert.Equal(t, 3.0, pc.BBeforeA)

	// other scopes do not see the product counters
	other, err := store.GetPairwiseCounts(ctx, "store-mono", domain.ProductScope("Dairy", "Cheese"), []string{"p-oat", "p-whole"})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func testPairwiseLedgerIdempotence(t *testing.T, store Store) {
	ctx := context.Background()

	trip := createTrip(t, store, types.StringPtr("store-ledger"), testEpoch.Add(time.Hour))
	input := ApplyTripLearningInput{
		TripID:  trip.ID,
		StoreID: "store-ledger",
		Deltas: []domain.PairDelta{
			groupDelta("Bakery", "Dairy"),
			groupDelta("Bakery", "Produce"),
			groupDelta("Dairy", "Produce"),
		},
		CategoryRanks: []domain.CategoryRank{{CategoryID: 2, Position: 1}, {CategoryID: 3, Position: 2}},
	}

	applied, err := store.ApplyTripLearning(ctx, input)
	require.NoError(t, err)
	assert.True(t, applied)

	done, err := store.IsTripLearningApplied(ctx, trip.ID)
	require.NoError(t, err)
	assert.True(t, done)

	applied, err = store.ApplyTripLearning(ctx, input)
	require.NoError(t, err)
	assert.False(t, applied)

	counts, err := store.GetPairwiseCounts(ctx, "store-ledger", domain.GroupScope(), []string{"Bakery", "Dairy", "Produce"})
	require.NoError(t, err)
	require.Len(t, counts, 3)
	for _, c := range counts {
		assert.Equal(t, 1.0, c.ABeforeB, "pair %v", c.Pair)
		assert.Equal(t, 0.0, c.BBeforeA, "pair %v", c.Pair)
	}

	positions, err := store.GetStoreCategoryPositions(ctx, "store-ledger")
	require.NoError(t, err)
	assert.Equal(t, map[int64]float64{2: 1, 3: 2}, positions)

	done, err = store.IsTripLearningApplied(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, done)
}

func testPairwiseAggregation(t *testing.T, store Store) {
	ctx := context.Background()

	apply := func(storeID string, hour int, deltas ...domain.PairDelta) {
		trip := createTrip(t, store, types.StringPtr(storeID), testEpoch.Add(time.Duration(hour)*time.Hour))
		_, err := store.ApplyTripLearning(ctx, ApplyTripLearningInput{
			TripID:  trip.ID,
			StoreID: storeID,
			Deltas:  deltas,
		})
		require.NoError(t, err)
	}

	apply("agg-store-a", 1, groupDelta("Frozen", "Meat"))
	apply("agg-store-a", 2, groupDelta("Frozen", "Meat"))
	apply("agg-store-b", 3, groupDelta("Meat", "Frozen"))
	apply("agg-store-b", 4, groupDelta("Frozen", "Snacks"))

	counts, err := store.GetAggregatedPairwiseCounts(ctx, domain.GroupScope(), []string{"Meat", "Frozen"})
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, domain.Pair{A: "Frozen", B: "Meat"}, counts[0].Pair)
	assert.Equal(t, 2.0, counts[0].ABeforeB)
	assert.Equal(t, 1.0, counts[0].BBeforeA)

	storeOnly, err := store.GetPairwiseCounts(ctx, "agg-store-b", domain.GroupScope(), []string{"Meat", "Frozen"})
	require.NoError(t, err)
	require.Len(t, storeOnly, 1)
	assert.Equal(t, 0.0, storeOnly[0].ABeforeB)
	assert.Equal(t, 1.0, storeOnly[0].BBeforeA)

	single, err := store.GetAggregatedPairwiseCounts(ctx, domain.GroupScope(), []string{"Meat"})
	require.NoError(t, err)
	assert.Empty(t, single)
}

// =============================================================================
// Test: Trips pending learning
// =============================================================================

func testTripsPendingLearning(t *testing.T, store Store) {
	ctx := context.Background()
	storeID := types.StringPtr("store-pending")
	base := testEpoch.Add(100 * time.Hour)

	noSequence := createTrip(t, store, storeID, base.Add(1*time.Minute))
	invalid := createTrip(t, store, storeID, base.Add(2*time.Minute))
	validPending := createTrip(t, store, storeID, base.Add(3*time.Minute))
	validApplied := createTrip(t, store, storeID, base.Add(4*time.Minute))
	_ = createTrip(t, store, nil, base.Add(5*time.Minute))
	tooRecent := createTrip(t, store, storeID, base.Add(time.Hour))

	for _, s := range []struct {
		trip  *schema.Trip
		valid bool
	}{{invalid, false}, {validPending, true}, {validApplied, true}} {
		_, err := store.CreateCheckoffSequence(ctx, CreateCheckoffSequenceInput{
			TripID:  s.trip.ID,
			StoreID: *storeID,
			IsValid: s.valid,
		})
		require.NoError(t, err)
	}
	_, err := store.ApplyTripLearning(ctx, ApplyTripLearningInput{
		TripID:  validApplied.ID,
		StoreID: *storeID,
		Deltas:  []domain.PairDelta{groupDelta("Bakery", "Dairy")},
	})
	require.NoError(t, err)

	after := &SweepCursor{EndedAt: base}
	trips, err := store.GetTripsPendingLearning(ctx, PendingLearningFilter{
		EndedBefore: base.Add(30 * time.Minute),
		After:       after,
		Limit:       10,
	})
	require.NoError(t, err)

	var ids []uuid.UUID
	for _, trip := range trips {
		ids = append(ids, trip.ID)
	}
	assert.Equal(t, []uuid.UUID{noSequence.ID, validPending.ID}, ids)
	assert.NotContains(t, ids, tooRecent.ID)

	trips, err = store.GetTripsPendingLearning(ctx, PendingLearningFilter{
		EndedBefore: base.Add(30 * time.Minute),
		After:       &SweepCursor{EndedAt: noSequence.EndedAt, TripID: noSequence.ID},
		Limit:       10,
	})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, validPending.ID, trips[0].ID)
}

// =============================================================================
// Test: Catalog and category positions
// =============================================================================

func testCatalog(t *testing.T, store Store) {
	ctx := context.Background()

	products, err := store.GetProductsByIDs(ctx, []string{"p-whole", "p-peas", "p-unknown"})
	require.NoError(t, err)
	require.Len(t, products, 2)

	byID := make(map[string]schema.Product)
	for _, p := range products {
		byID[p.ID] = p
	}
	assert.Equal(t, "Dairy", *byID["p-whole"].DemandGroup)
	assert.Equal(t, "Milk", *byID["p-whole"].DemandSubGroup)
	assert.Nil(t, byID["p-peas"].DemandGroup)

	empty, err := store.GetProductsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(categories), 4)
	for i := 1; i < len(categories); i++ {
		assert.LessOrEqual(t, categories[i-1].DefaultSortPosition, categories[i].DefaultSortPosition)
	}
}

func testCategoryPositions(t *testing.T, store Store) {
	ctx := context.Background()

	apply := func(storeID string, hour int, ranks ...domain.CategoryRank) {
		trip := createTrip(t, store, types.StringPtr(storeID), testEpoch.Add(time.Duration(hour)*time.Hour))
		_, err := store.ApplyTripLearning(ctx, ApplyTripLearningInput{
			TripID:        trip.ID,
			StoreID:       storeID,
			CategoryRanks: ranks,
		})
		require.NoError(t, err)
	}

	apply("pos-store-a", 1, domain.CategoryRank{CategoryID: 3, Position: 1}, domain.CategoryRank{CategoryID: 1, Position: 2})
	apply("pos-store-a", 2, domain.CategoryRank{CategoryID: 3, Position: 2}, domain.CategoryRank{CategoryID: 1, Position: 1})
	apply("pos-store-a", 3, domain.CategoryRank{CategoryID: 3, Position: 1})
	apply("pos-store-b", 4, domain.CategoryRank{CategoryID: 3, Position: 3})

	positions, err := store.GetStoreCategoryPositions(ctx, "pos-store-a")
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, positions[3], 1e-9)
	assert.InDelta(t, 1.5, positions[1], 1e-9)

	averaged, err := store.GetAveragedCategoryPositions(ctx)
	require.NoError(t, err)
	// mean of the per-store averages 4/3 and 3
	assert.InDelta(t, (4.0/3.0+3.0)/2, averaged[3], 1e-9)

	none, err := store.GetStoreCategoryPositions(ctx, "pos-store-none")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// =============================================================================
// Test Runner
// =============================================================================

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(t *testing.T, store Store)
	}{
		{"CompleteList", testCompleteList},
		{"CheckoffSequences", testCheckoffSequences},
		{"PairwiseCanonicalization", testPairwiseCanonicalization},
		{"PairwiseMonotonicity", testPairwiseMonotonicity},
		{"PairwiseLedgerIdempotence", testPairwiseLedgerIdempotence},
		{"PairwiseAggregation", testPairwiseAggregation},
		{"TripsPendingLearning", testTripsPendingLearning},
		{"Catalog", testCatalog},
		{"CategoryPositions", testCategoryPositions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
