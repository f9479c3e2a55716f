package archiver

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopwalk/aisle-engine/internal/adapter"
	"github.com/shopwalk/aisle-engine/internal/cache"
	"github.com/shopwalk/aisle-engine/internal/catalog"
	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/learning"
	"github.com/shopwalk/aisle-engine/internal/logger"
	"github.com/shopwalk/aisle-engine/internal/store"
	"github.com/shopwalk/aisle-engine/internal/store/schema"
	"github.com/shopwalk/aisle-engine/internal/types"
)

// SequenceOutcome describes the checkoff sequence of a trip after recording
type SequenceOutcome struct {
	// Skipped is set when the trip has no store, no sequence is recorded then
	Skipped    bool
	StoreID    string
	IsValid    bool
	EntryCount int
}

// LearningOutcome describes the evidence applied for a trip
type LearningOutcome struct {
	// Applied is false when the sequence is invalid or its evidence was applied before
	Applied       bool
	DeltaCount    int
	CategoryCount int
}

//go:generate mockgen -source=archiver.go -destination=../mocks/archiver.go -package=mocks -mock_names=Archiver=MockArchiver

// Archiver turns completed shopping lists into trips and trips into ordering evidence
type Archiver interface {
	// CompleteTrip marks the list completed and snapshots it into a trip.
	// Returns a nil trip when the list has no items.
	CompleteTrip(ctx context.Context, listID uuid.UUID) (*schema.Trip, error)

	// RecordCheckoffSequence builds, validates and persists the checkoff sequence of a trip.
	// The validity of an already recorded sequence is never recomputed.
	RecordCheckoffSequence(ctx context.Context, tripID uuid.UUID) (*SequenceOutcome, error)

	// ApplyLearning adds the pairwise evidence of a valid sequence to the comparison counters, once per trip
	ApplyLearning(ctx context.Context, tripID uuid.UUID) (*LearningOutcome, error)

	// LearnFromTrip records the checkoff sequence of a trip and applies its evidence when valid
	LearnFromTrip(ctx context.Context, tripID uuid.UUID) error

	// ArchiveTripAndLearn completes the list and schedules learning for the new trip.
	// Returns a nil trip ID when the list has no items. Learning failures never fail the archival.
	ArchiveTripAndLearn(ctx context.Context, listID uuid.UUID) (*uuid.UUID, error)
}

type archiver struct {
	store     store.Store
	catalog   catalog.Catalog
	evidence  cache.EvidenceCache
	scheduler LearningScheduler
	clock     adapter.Clock
	json      adapter.JSON
}

// NewArchiver creates a new trip archiver.
// scheduler may be nil for processes that only learn, then ArchiveTripAndLearn learns inline.
func NewArchiver(
	st store.Store,
	cat catalog.Catalog,
	evidence cache.EvidenceCache,
	scheduler LearningScheduler,
	clock adapter.Clock,
	json adapter.JSON,
) Archiver {
	return &archiver{
		store:     st,
		catalog:   cat,
		evidence:  evidence,
		scheduler: scheduler,
		clock:     clock,
		json:      json,
	}
}

// CompleteTrip marks the list completed and snapshots it into a trip
func (a *archiver) CompleteTrip(ctx context.Context, listID uuid.UUID) (*schema.Trip, error) {
	trip, err := a.store.CompleteList(ctx, store.CompleteListInput{
		ListID:      listID,
		CompletedAt: a.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete list: %w", err)
	}

	if trip == nil {
		logger.InfoCtx(ctx, "Completed empty list, no trip archived", zap.String("listID", listID.String()))
		return nil, nil
	}

	logger.InfoCtx(ctx, "Archived trip",
		zap.String("listID", listID.String()),
		zap.String("tripID", trip.ID.String()),
		zap.Int("itemCount", trip.ItemCount),
		zap.Int64("durationSeconds", trip.DurationSeconds),
	)
	return trip, nil
}

// RecordCheckoffSequence builds, validates and persists the checkoff sequence of a trip
func (a *archiver) RecordCheckoffSequence(ctx context.Context, tripID uuid.UUID) (*SequenceOutcome, error) {
	trip, err := a.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	if trip == nil {
		return nil, domain.ErrTripNotFound
	}

	// No learning signal without a known store
	if types.StringNilOrEmpty(trip.StoreID) {
		return &SequenceOutcome{Skipped: true}, nil
	}
	storeID := *trip.StoreID

	existing, err := a.store.GetCheckoffSequence(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkoff sequence: %w", err)
	}
	if existing != nil {
		return a.sequenceOutcome(existing)
	}

	items, err := a.store.GetTripItems(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip items: %w", err)
	}

	entries, err := a.buildEntries(ctx, items)
	if err != nil {
		return nil, err
	}

	isValid := learning.ValidateSequence(learning.Timestamps(entries))

	sequence, err := a.store.CreateCheckoffSequence(ctx, store.CreateCheckoffSequenceInput{
		TripID:  tripID,
		StoreID: storeID,
		Entries: entries,
		IsValid: isValid,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checkoff sequence: %w", err)
	}

	if sequence.IsValid {
		if err := a.evidence.InvalidateValidSequences(ctx, storeID); err != nil {
			logger.WarnCtx(ctx, "Failed to invalidate valid sequence count",
				zap.String("storeID", storeID),
				zap.Error(err))
		}
	}

	logger.InfoCtx(ctx, "Recorded checkoff sequence",
		zap.String("tripID", tripID.String()),
		zap.String("storeID", storeID),
		zap.Int("entries", len(entries)),
		zap.Bool("valid", sequence.IsValid),
	)

	return &SequenceOutcome{
		StoreID:    storeID,
		IsValid:    sequence.IsValid,
		EntryCount: len(entries),
	}, nil
}

// buildEntries annotates the trip items with their demand group and sub-group.
// Items whose product has no catalog group fall back to their display category name.
func (a *archiver) buildEntries(ctx context.Context, items []schema.TripItem) ([]domain.SequenceEntry, error) {
	productIDs := make([]string, 0, len(items))
	for _, item := range items {
		if !types.StringNilOrEmpty(item.ProductID) {
			productIDs = append(productIDs, *item.ProductID)
		}
	}

	products, err := a.catalog.GetProducts(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog products: %w", err)
	}

	entries := make([]domain.SequenceEntry, len(items))
	for i, item := range items {
		entry := domain.SequenceEntry{
			ProductID:     item.ProductID,
			Name:          item.Name,
			CategoryID:    item.CategoryID,
			CheckPosition: item.CheckPosition,
			CheckedAt:     item.CheckedAt,
		}

		var product *catalog.Product
		if item.ProductID != nil {
			if p, ok := products[*item.ProductID]; ok {
				product = &p
			}
		}

		entry.DemandGroup, entry.DemandSubGroup = catalog.ResolveGroup(product, item.CategoryName)

		if entry.CategoryID == nil && product != nil {
			entry.CategoryID = product.CategoryID
		}

		entries[i] = entry
	}

	return entries, nil
}

func (a *archiver) sequenceOutcome(sequence *schema.CheckoffSequence) (*SequenceOutcome, error) {
	var entries []domain.SequenceEntry
	if err := a.json.Unmarshal(sequence.Entries, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkoff sequence entries: %w", err)
	}

	return &SequenceOutcome{
		StoreID:    sequence.StoreID,
		IsValid:    sequence.IsValid,
		EntryCount: len(entries),
	}, nil
}

// ApplyLearning adds the pairwise evidence of a valid sequence to the comparison counters
func (a *archiver) ApplyLearning(ctx context.Context, tripID uuid.UUID) (*LearningOutcome, error) {
	sequence, err := a.store.GetCheckoffSequence(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkoff sequence: %w", err)
	}
	if sequence == nil {
		return nil, domain.ErrCheckoffSequenceNotFound
	}

	if !sequence.IsValid {
		logger.DebugCtx(ctx, "Skipping learning for invalid sequence", zap.String("tripID", tripID.String()))
		return &LearningOutcome{}, nil
	}

	var entries []domain.SequenceEntry
	if err := a.json.Unmarshal(sequence.Entries, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkoff sequence entries: %w", err)
	}

	deltas := learning.ExtractPairwise(entries)
	ranks := learning.CategoryRanks(entries)

	applied, err := a.store.ApplyTripLearning(ctx, store.ApplyTripLearningInput{
		TripID:        tripID,
		StoreID:       sequence.StoreID,
		Deltas:        deltas,
		CategoryRanks: ranks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply trip learning: %w", err)
	}

	if !applied {
		logger.InfoCtx(ctx, "Trip learning already applied", zap.String("tripID", tripID.String()))
		return &LearningOutcome{}, nil
	}

	logger.InfoCtx(ctx, "Applied trip learning",
		zap.String("tripID", tripID.String()),
		zap.String("storeID", sequence.StoreID),
		zap.Int("deltas", len(deltas)),
		zap.Int("categories", len(ranks)),
	)

	return &LearningOutcome{
		Applied:       true,
		DeltaCount:    len(deltas),
		CategoryCount: len(ranks),
	}, nil
}

// LearnFromTrip records the checkoff sequence of a trip and applies its evidence when valid
func (a *archiver) LearnFromTrip(ctx context.Context, tripID uuid.UUID) error {
	outcome, err := a.RecordCheckoffSequence(ctx, tripID)
	if err != nil {
		return err
	}
	if outcome.Skipped || !outcome.IsValid {
		return nil
	}

	_, err = a.ApplyLearning(ctx, tripID)
	return err
}

// ArchiveTripAndLearn completes the list and schedules learning for the new trip
func (a *archiver) ArchiveTripAndLearn(ctx context.Context, listID uuid.UUID) (*uuid.UUID, error) {
	trip, err := a.CompleteTrip(ctx, listID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, nil
	}

	tripID := trip.ID
	if types.StringNilOrEmpty(trip.StoreID) {
		return &tripID, nil
	}

	if a.scheduler != nil {
		if err := a.scheduler.ScheduleLearning(ctx, trip); err != nil {
			// The learning sweeper picks the trip up later
			logger.WarnCtx(ctx, "Failed to schedule trip learning",
				zap.String("tripID", tripID.String()),
				zap.Error(err))
		}
		return &tripID, nil
	}

	if err := a.LearnFromTrip(ctx, tripID); err != nil {
		logger.WarnCtx(ctx, "Failed to learn from trip",
			zap.String("tripID", tripID.String()),
			zap.Error(err))
	}
	return &tripID, nil
}

// IsNotFound checks if the error reports a missing list, trip or sequence
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrListNotFound) ||
		errors.Is(err, domain.ErrTripNotFound) ||
		errors.Is(err, domain.ErrCheckoffSequenceNotFound)
}
