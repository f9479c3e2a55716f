package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shopwalk/aisle-engine/internal/adapter"
	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/logger"
	"github.com/shopwalk/aisle-engine/internal/store"
)

const (
	// DefaultValidSequenceTTL bounds how stale a cached valid sequence count can get
	DefaultValidSequenceTTL = 10 * time.Minute

	validSequenceKeyPrefix = "aisle:valid_sequences:"
)

//go:generate mockgen -source=evidence.go -destination=../mocks/evidence_cache.go -package=mocks -mock_names=EvidenceCache=MockEvidenceCache

// EvidenceCache serves the resolver's evidence reads with the valid sequence
// counts cached in Redis. Pairwise counts are always read from the store.
type EvidenceCache interface {
	// CountValidSequences returns the number of valid checkoff sequences recorded for a store
	CountValidSequences(ctx context.Context, storeID string) (int64, error)
	// GetPairwiseCounts returns the counts of a store for the pairs among the given items
	GetPairwiseCounts(ctx context.Context, storeID string, scope domain.Scope, items []string) ([]domain.PairCount, error)
	// GetAggregatedPairwiseCounts returns the counts summed across all stores for the pairs among the given items
	GetAggregatedPairwiseCounts(ctx context.Context, scope domain.Scope, items []string) ([]domain.PairCount, error)
	// InvalidateValidSequences drops the cached count of a store
	InvalidateValidSequences(ctx context.Context, storeID string) error
}

type evidenceCache struct {
	store store.Store
	redis adapter.RedisClient
	ttl   time.Duration
}

// NewEvidenceCache creates a new evidence cache.
// A nil redis client disables caching and every read goes to the store.
func NewEvidenceCache(store store.Store, redis adapter.RedisClient, ttl time.Duration) EvidenceCache {
	if ttl <= 0 {
		ttl = DefaultValidSequenceTTL
	}
	return &evidenceCache{store: store, redis: redis, ttl: ttl}
}

func validSequenceKey(storeID string) string {
	return validSequenceKeyPrefix + storeID
}

// CountValidSequences returns the cached count, loading it from the store on a miss.
// Redis failures fall back to the store.
func (c *evidenceCache) CountValidSequences(ctx context.Context, storeID string) (int64, error) {
	if c.redis == nil {
		return c.store.CountValidSequences(ctx, storeID)
	}

	key := validSequenceKey(storeID)
	cached, err := c.redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		count, parseErr := strconv.ParseInt(cached, 10, 64)
		if parseErr == nil {
			return count, nil
		}
		logger.WarnCtx(ctx, "Ignoring malformed cached valid sequence count",
			zap.String("storeID", storeID),
			zap.String("value", cached))
	case errors.Is(err, redis.Nil):
		// miss
	default:
		logger.WarnCtx(ctx, "Failed to read cached valid sequence count",
			zap.String("storeID", storeID),
			zap.Error(err))
	}

	count, err := c.store.CountValidSequences(ctx, storeID)
	if err != nil {
		return 0, fmt.Errorf("failed to count valid sequences: %w", err)
	}

	if err := c.redis.Set(ctx, key, strconv.FormatInt(count, 10), c.ttl).Err(); err != nil {
		logger.WarnCtx(ctx, "Failed to cache valid sequence count",
			zap.String("storeID", storeID),
			zap.Error(err))
	}

	return count, nil
}

// GetPairwiseCounts returns the counts of a store for the pairs among the given items
func (c *evidenceCache) GetPairwiseCounts(ctx context.Context, storeID string, scope domain.Scope, items []string) ([]domain.PairCount, error) {
	return c.store.GetPairwiseCounts(ctx, storeID, scope, items)
}

// GetAggregatedPairwiseCounts returns the counts summed across all stores
func (c *evidenceCache) GetAggregatedPairwiseCounts(ctx context.Context, scope domain.Scope, items []string) ([]domain.PairCount, error) {
	return c.store.GetAggregatedPairwiseCounts(ctx, scope, items)
}

// InvalidateValidSequences drops the cached count of a store
func (c *evidenceCache) InvalidateValidSequences(ctx context.Context, storeID string) error {
	if c.redis == nil {
		return nil
	}
	if err := c.redis.Del(ctx, validSequenceKey(storeID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate valid sequence count: %w", err)
	}
	return nil
}
