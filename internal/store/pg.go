package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// RegisterReadReplica routes reads to the replica while writes and transactions stay on the primary.
// An empty DSN leaves every query on the primary.
func RegisterReadReplica(db *gorm.DB, readDSN string, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	if readDSN == "" {
		return nil
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(readDSN)},
		Policy:   dbresolver.RandomPolicy{},
	}).
		SetMaxOpenConns(maxOpenConns).
		SetMaxIdleConns(maxIdleConns).
		SetConnMaxLifetime(connMaxLifetime).
		SetConnMaxIdleTime(connMaxIdleTime)

	if err := db.Use(resolver); err != nil {
		return fmt.Errorf("failed to register read replica: %w", err)
	}

	return nil
}

// calculateSafeBatchSize computes the optimal batch size for bulk inserts to avoid
// PostgreSQL's "extended protocol limited to 65535 parameters" error.
//
// PostgreSQL's extended protocol has a hard limit of 65535 parameters per query.
// When doing batch inserts with GORM, each record consumes multiple parameters
// (one per field being inserted), and ON CONFLICT clauses may add additional parameters.
//
// Parameters:
//   - totalRecords: total number of records to insert
//   - fieldsPerRecord: number of fields/parameters per record
//
// Returns the safe batch size that won't exceed the parameter limit.
//
// Example with headroom of 1000:
//   - TripItem struct: 8 fields → (65,535 - 1,000) / 8 = 8,066 records/batch
//   - PairwiseComparison struct: 7 fields → (65,535 - 1,000) / 7 = 9,219 records/batch
//
// The function uses a total headroom to account for batch-level overhead:
//   - GORM-added timestamp fields (created_at, updated_at) across all records
//   - ON CONFLICT clause parameters (can be significant with multi-column conflicts)
//   - Query metadata and internal GORM bookkeeping
//
// Total headroom is more accurate than per-record overhead because some costs
// are fixed per batch, not scaled per record.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000 // Total parameter headroom for batch-level overhead

	// Reserve headroom from total available parameters
	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// =============================================================================
// Lists
// =============================================================================

// GetList retrieves a shopping list by ID
func (s *pgStore) GetList(ctx context.Context, listID uuid.UUID) (*schema.ShoppingList, error) {
	var list schema.ShoppingList
	err := s.db.WithContext(ctx).Where("id = ?", listID).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return &list, nil
}

// GetListItems retrieves the items of a list in sort order
func (s *pgStore) GetListItems(ctx context.Context, listID uuid.UUID) ([]schema.ListItem, error) {
	var items []schema.ListItem
	err := s.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("sort_position ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get list items: %w", err)
	}
	return items, nil
}

// CompleteList marks a list completed and snapshots it into a trip with its items
func (s *pgStore) CompleteList(ctx context.Context, input CompleteListInput) (*schema.Trip, error) {
	var trip *schema.Trip

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the list so concurrent completions serialize
		var list schema.ShoppingList
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ListID).
			First(&list).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrListNotFound
			}
			return fmt.Errorf("failed to lock list for update: %w", err)
		}
		if list.Status == schema.ListStatusCompleted {
			return domain.ErrListAlreadyCompleted
		}

		// 2. Mark the list completed
		err = tx.Model(&schema.ShoppingList{}).
			Where("id = ?", input.ListID).
			Updates(map[string]interface{}{
				"status":       schema.ListStatusCompleted,
				"completed_at": input.CompletedAt,
				"updated_at":   gorm.Expr("now()"),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to mark list completed: %w", err)
		}

		var items []schema.ListItem
		err = tx.Where("list_id = ?", input.ListID).
			Order("sort_position ASC, id ASC").
			Find(&items).Error
		if err != nil {
			return fmt.Errorf("failed to get list items: %w", err)
		}
		if len(items) == 0 {
			return nil
		}

		// 3. Snapshot the trip
		startedAt := list.StartedAt
		if startedAt.After(input.CompletedAt) {
			startedAt = input.CompletedAt
		}
		newTrip := schema.Trip{
			ID:              uuid.New(),
			ListID:          list.ID,
			UserID:          list.UserID,
			StoreID:         list.StoreID,
			StartedAt:       startedAt,
			EndedAt:         input.CompletedAt,
			DurationSeconds: int64(input.CompletedAt.Sub(startedAt) / time.Second),
			ItemCount:       len(items),
		}
		if err := tx.Create(&newTrip).Error; err != nil {
			return fmt.Errorf("failed to create trip: %w", err)
		}

		// 4. Bulk create trip items, check positions follow the sort order
		tripItems := make([]schema.TripItem, len(items))
		for i, item := range items {
			checkedAt := input.CompletedAt
			if item.CheckedAt != nil {
				checkedAt = *item.CheckedAt
			}
			tripItems[i] = schema.TripItem{
				TripID:        newTrip.ID,
				ProductID:     item.ProductID,
				Name:          item.Name,
				CategoryID:    item.CategoryID,
				CategoryName:  item.CategoryName,
				Quantity:      item.Quantity,
				CheckPosition: i + 1,
				CheckedAt:     checkedAt,
			}
		}
		batchSize := calculateSafeBatchSize(len(tripItems), 8)
		if err := tx.CreateInBatches(&tripItems, batchSize).Error; err != nil {
			return fmt.Errorf("failed to create trip items: %w", err)
		}

		trip = &newTrip
		return nil
	})
	if err != nil {
		return nil, err
	}

	return trip, nil
}

// =============================================================================
// Trips
// =============================================================================

// GetTrip retrieves a trip by ID
func (s *pgStore) GetTrip(ctx context.Context, tripID uuid.UUID) (*schema.Trip, error) {
	var trip schema.Trip

	err := s.db.WithContext(ctx).Where("id = ?", tripID).First(&trip).Error
	if err == nil {
		return &trip, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", tripID).
		First(&trip).Error
	if err == nil {
		return &trip, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get trip: %w", err)
}

// GetTripItems retrieves the items of a trip ordered by check position
func (s *pgStore) GetTripItems(ctx context.Context, tripID uuid.UUID) ([]schema.TripItem, error) {
	var items []schema.TripItem
	err := s.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("check_position ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get trip items: %w", err)
	}
	return items, nil
}

// GetTripsPendingLearning retrieves trips whose learning has not completed
func (s *pgStore) GetTripsPendingLearning(ctx context.Context, filter PendingLearningFilter) ([]schema.Trip, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := s.db.WithContext(ctx).
		Model(&schema.Trip{}).
		Select("trips.*").
		Joins("LEFT JOIN checkoff_sequences cs ON cs.trip_id = trips.id").
		Joins("LEFT JOIN pairwise_learning_ledger l ON l.trip_id = trips.id").
		Where("trips.store_id IS NOT NULL AND trips.store_id <> ''").
		Where("cs.id IS NULL OR (cs.is_valid AND l.trip_id IS NULL)").
		Where("trips.ended_at < ?", filter.EndedBefore)

	if filter.After != nil {
		query = query.Where("(trips.ended_at, trips.id) > (?, ?)", filter.After.EndedAt, filter.After.TripID)
	}

	var trips []schema.Trip
	err := query.
		Order("trips.ended_at ASC, trips.id ASC").
		Limit(limit).
		Find(&trips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get trips pending learning: %w", err)
	}

	return trips, nil
}

// =============================================================================
// Checkoff sequences
// =============================================================================

// GetCheckoffSequence retrieves the checkoff sequence of a trip
func (s *pgStore) GetCheckoffSequence(ctx context.Context, tripID uuid.UUID) (*schema.CheckoffSequence, error) {
	var sequence schema.CheckoffSequence
	err := s.db.WithContext(ctx).Where("trip_id = ?", tripID).First(&sequence).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get checkoff sequence: %w", err)
	}
	return &sequence, nil
}

// CreateCheckoffSequence records the checkoff sequence of a trip once
func (s *pgStore) CreateCheckoffSequence(ctx context.Context, input CreateCheckoffSequenceInput) (*schema.CheckoffSequence, error) {
	entries, err := json.Marshal(input.Entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sequence entries: %w", err)
	}

	sequence := schema.CheckoffSequence{
		TripID:  input.TripID,
		StoreID: input.StoreID,
		Entries: datatypes.JSON(entries),
		IsValid: input.IsValid,
	}

	var result *schema.CheckoffSequence
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The validity flag is fixed by the first writer
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}},
			DoNothing: true,
		}).Create(&sequence)
		if res.Error != nil {
			return fmt.Errorf("failed to create checkoff sequence: %w", res.Error)
		}

		if res.RowsAffected > 0 {
			result = &sequence
			return nil
		}

		var existing schema.CheckoffSequence
		if err := tx.Where("trip_id = ?", input.TripID).First(&existing).Error; err != nil {
			return fmt.Errorf("failed to get existing checkoff sequence: %w", err)
		}
		result = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CountValidSequences counts the valid checkoff sequences recorded for a store
func (s *pgStore) CountValidSequences(ctx context.Context, storeID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.CheckoffSequence{}).
		Where("store_id = ? AND is_valid", storeID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count valid sequences: %w", err)
	}
	return count, nil
}

// =============================================================================
// Pairwise comparisons
// =============================================================================

// pairwiseKey identifies a counter row within one store
type pairwiseKey struct {
	level domain.Level
	scope string
	pair  domain.Pair
}

// mergeDeltas canonicalizes and sums the deltas per counter row.
// A single INSERT ... ON CONFLICT cannot touch the same row twice.
func mergeDeltas(deltas []domain.PairDelta) ([]pairwiseKey, map[pairwiseKey]*PairwiseDeltaRecord) {
	var keys []pairwiseKey
	merged := make(map[pairwiseKey]*PairwiseDeltaRecord, len(deltas))

	for _, d := range deltas {
		pair, swapped := domain.NewPair(d.Pair.A, d.Pair.B)
		if pair.A == pair.B {
			continue
		}
		aBeforeB, bBeforeA := d.ABeforeB, d.BBeforeA
		if swapped {
			aBeforeB, bBeforeA = bBeforeA, aBeforeB
		}
		if aBeforeB < 0 || bBeforeA < 0 || aBeforeB+bBeforeA == 0 {
			continue
		}

		key := pairwiseKey{level: d.Scope.Level(), scope: d.Scope.Key(), pair: pair}
		record, ok := merged[key]
		if !ok {
			record = &PairwiseDeltaRecord{
				Level: key.level,
				Scope: key.scope,
				ItemA: pair.A,
				ItemB: pair.B,
			}
			merged[key] = record
			keys = append(keys, key)
		}
		record.ABeforeB += aBeforeB
		record.BBeforeA += bBeforeA
	}

	return keys, merged
}

// ApplyTripLearning atomically adds the evidence of one trip to the counters
func (s *pgStore) ApplyTripLearning(ctx context.Context, input ApplyTripLearningInput) (bool, error) {
	if input.StoreID == "" {
		return false, fmt.Errorf("store id is required")
	}

	keys, merged := mergeDeltas(input.Deltas)
	records := make([]PairwiseDeltaRecord, len(keys))
	for i, key := range keys {
		records[i] = *merged[key]
	}

	ledgerDeltas, err := json.Marshal(records)
	if err != nil {
		return false, fmt.Errorf("failed to marshal ledger deltas: %w", err)
	}

	applied := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Claim the trip in the ledger, a conflict means it was already applied
		ledger := schema.PairwiseLearningLedger{
			TripID:  input.TripID,
			StoreID: input.StoreID,
			Deltas:  datatypes.JSON(ledgerDeltas),
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}},
			DoNothing: true,
		}).Create(&ledger)
		if res.Error != nil {
			return fmt.Errorf("failed to create learning ledger entry: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}

		// 2. Add the pairwise deltas, inserting rows that do not exist yet
		if len(records) > 0 {
			rows := make([]schema.PairwiseComparison, len(records))
			for i, r := range records {
				rows[i] = schema.PairwiseComparison{
					StoreID:       input.StoreID,
					Level:         r.Level,
					Scope:         r.Scope,
					ItemA:         r.ItemA,
					ItemB:         r.ItemB,
					ABeforeBCount: r.ABeforeB,
					BBeforeACount: r.BBeforeA,
				}
			}

			batchSize := calculateSafeBatchSize(len(rows), 7)
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "store_id"},
					{Name: "level"},
					{Name: "scope"},
					{Name: "item_a"},
					{Name: "item_b"},
				},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"a_before_b_count": gorm.Expr("pairwise_comparisons.a_before_b_count + EXCLUDED.a_before_b_count"),
					"b_before_a_count": gorm.Expr("pairwise_comparisons.b_before_a_count + EXCLUDED.b_before_a_count"),
					"last_updated_at":  gorm.Expr("now()"),
				}),
			}).CreateInBatches(&rows, batchSize).Error
			if err != nil {
				return fmt.Errorf("failed to upsert pairwise comparisons: %w", err)
			}
		}

		// 3. Accumulate the first-seen category ranks
		if len(input.CategoryRanks) > 0 {
			positions := make([]schema.StoreCategoryPosition, 0, len(input.CategoryRanks))
			seen := make(map[int64]bool, len(input.CategoryRanks))
			for _, rank := range input.CategoryRanks {
				if seen[rank.CategoryID] {
					continue
				}
				seen[rank.CategoryID] = true
				positions = append(positions, schema.StoreCategoryPosition{
					StoreID:          input.StoreID,
					CategoryID:       rank.CategoryID,
					PositionSum:      int64(rank.Position),
					ObservationCount: 1,
				})
			}

			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "store_id"}, {Name: "category_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"position_sum":      gorm.Expr("store_category_positions.position_sum + EXCLUDED.position_sum"),
					"observation_count": gorm.Expr("store_category_positions.observation_count + EXCLUDED.observation_count"),
					"updated_at":        gorm.Expr("now()"),
				}),
			}).Create(&positions).Error
			if err != nil {
				return fmt.Errorf("failed to upsert store category positions: %w", err)
			}
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return applied, nil
}

// IsTripLearningApplied checks if the evidence of a trip has been applied
func (s *pgStore) IsTripLearningApplied(ctx context.Context, tripID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.PairwiseLearningLedger{}).
		Where("trip_id = ?", tripID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check learning ledger: %w", err)
	}
	return count > 0, nil
}

// pairwiseCountRow is the scan target of the pairwise count queries
type pairwiseCountRow struct {
	ItemA    string `gorm:"column:item_a"`
	ItemB    string `gorm:"column:item_b"`
	ABeforeB int64  `gorm:"column:a_before_b"`
	BBeforeA int64  `gorm:"column:b_before_a"`
}

func toPairCounts(rows []pairwiseCountRow) []domain.PairCount {
	counts := make([]domain.PairCount, len(rows))
	for i, r := range rows {
		counts[i] = domain.PairCount{
			Pair:     domain.Pair{A: r.ItemA, B: r.ItemB},
			ABeforeB: float64(r.ABeforeB),
			BBeforeA: float64(r.BBeforeA),
		}
	}
	return counts
}

// GetPairwiseCounts retrieves the counters of a store for the pairs among the given items
func (s *pgStore) GetPairwiseCounts(ctx context.Context, storeID string, scope domain.Scope, items []string) ([]domain.PairCount, error) {
	if len(items) < 2 {
		return []domain.PairCount{}, nil
	}

	var rows []pairwiseCountRow
	err := s.db.WithContext(ctx).
		Model(&schema.PairwiseComparison{}).
		Select("item_a, item_b, a_before_b_count AS a_before_b, b_before_a_count AS b_before_a").
		Where("store_id = ? AND level = ? AND scope = ?", storeID, scope.Level(), scope.Key()).
		Where("item_a IN ? AND item_b IN ?", items, items).
		Order("item_a ASC, item_b ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pairwise counts: %w", err)
	}

	return toPairCounts(rows), nil
}

// GetAggregatedPairwiseCounts retrieves the counters summed across stores
func (s *pgStore) GetAggregatedPairwiseCounts(ctx context.Context, scope domain.Scope, items []string) ([]domain.PairCount, error) {
	if len(items) < 2 {
		return []domain.PairCount{}, nil
	}

	var rows []pairwiseCountRow
	err := s.db.WithContext(ctx).
		Model(&schema.PairwiseComparison{}).
		Select("item_a, item_b, SUM(a_before_b_count)::bigint AS a_before_b, SUM(b_before_a_count)::bigint AS b_before_a").
		Where("level = ? AND scope = ?", scope.Level(), scope.Key()).
		Where("item_a IN ? AND item_b IN ?", items, items).
		Group("item_a, item_b").
		Order("item_a ASC, item_b ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get aggregated pairwise counts: %w", err)
	}

	return toPairCounts(rows), nil
}

// =============================================================================
// Catalog and category positions
// =============================================================================

// GetProductsByIDs retrieves catalog products by IDs
func (s *pgStore) GetProductsByIDs(ctx context.Context, ids []string) ([]schema.Product, error) {
	if len(ids) == 0 {
		return []schema.Product{}, nil
	}

	var products []schema.Product
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetCategories retrieves all categories ordered by default sort position
func (s *pgStore) GetCategories(ctx context.Context) ([]schema.Category, error) {
	var categories []schema.Category
	err := s.db.WithContext(ctx).
		Order("default_sort_position ASC, id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// categoryPositionRow is the scan target of the category position queries
type categoryPositionRow struct {
	CategoryID int64   `gorm:"column:category_id"`
	Position   float64 `gorm:"column:position"`
}

func toPositionMap(rows []categoryPositionRow) map[int64]float64 {
	positions := make(map[int64]float64, len(rows))
	for _, r := range rows {
		positions[r.CategoryID] = r.Position
	}
	return positions
}

// GetStoreCategoryPositions retrieves the average learned position of each category for a store
func (s *pgStore) GetStoreCategoryPositions(ctx context.Context, storeID string) (map[int64]float64, error) {
	var rows []categoryPositionRow
	err := s.db.WithContext(ctx).
		Model(&schema.StoreCategoryPosition{}).
		Select("category_id, position_sum::float8 / observation_count AS position").
		Where("store_id = ? AND observation_count > 0", storeID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get store category positions: %w", err)
	}
	return toPositionMap(rows), nil
}

// GetAveragedCategoryPositions retrieves the learned category positions averaged across stores.
// Every store weighs the same regardless of how many trips it has.
func (s *pgStore) GetAveragedCategoryPositions(ctx context.Context) (map[int64]float64, error) {
	var rows []categoryPositionRow
	err := s.db.WithContext(ctx).
		Model(&schema.StoreCategoryPosition{}).
		Select("category_id, AVG(position_sum::float8 / observation_count) AS position").
		Where("observation_count > 0").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get averaged category positions: %w", err)
	}
	return toPositionMap(rows), nil
}
