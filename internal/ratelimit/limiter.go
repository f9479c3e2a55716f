package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/shopwalk/aisle-engine/internal/adapter"
	"github.com/shopwalk/aisle-engine/internal/config"
	"github.com/shopwalk/aisle-engine/internal/logger"
)

const healthCheckInterval = 10 * time.Second

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter defines the interface for per-client request rate limiting
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one request from the budget of the key
	Allow(ctx context.Context, key string) (*Decision, error)

	// Close stops the health monitor
	Close() error
}

// limiter limits requests through Redis so the budget is shared by every
// API replica, and falls back to in-process token buckets while Redis is down
type limiter struct {
	config         config.RateLimitConfig
	redis          adapter.RedisClient
	distributed    adapter.RedisRateLimiter
	clock          adapter.Clock
	redisAvailable atomic.Bool
	closed         atomic.Bool
	closeOnce      sync.Once
	done           chan struct{}
	wg             sync.WaitGroup

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

// NewLimiter creates a new rate limiter
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisAvailable := true
	if err := rc.Ping(ctx).Err(); err != nil {
		redisAvailable = false
		if !cfg.EnableLocalFallback {
			return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
		}
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	}

	l := &limiter{
		config:      cfg,
		redis:       rc,
		distributed: rc.NewRateLimiter(),
		clock:       clock,
		done:        make(chan struct{}),
		local:       make(map[string]*rate.Limiter),
	}
	l.redisAvailable.Store(redisAvailable)

	l.wg.Add(1)
	go l.monitorRedisHealth()

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("burst", cfg.Burst),
		zap.Bool("local_fallback", cfg.EnableLocalFallback),
	)

	return l, nil
}

// Allow consumes one request from the budget of the key
func (l *limiter) Allow(ctx context.Context, key string) (*Decision, error) {
	if l.closed.Load() {
		return nil, fmt.Errorf("rate limiter is closed")
	}

	if l.redisAvailable.Load() {
		decision, err := l.allowDistributed(ctx, key)
		if err == nil {
			return decision, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		l.redisAvailable.Store(false)
		if !l.config.EnableLocalFallback {
			return nil, fmt.Errorf("redis rate limiter unavailable: %w", err)
		}

		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	if !l.config.EnableLocalFallback {
		return nil, fmt.Errorf("redis rate limiter unavailable")
	}

	return l.allowLocal(key), nil
}

// allowDistributed checks the shared budget kept in Redis
func (l *limiter) allowDistributed(ctx context.Context, key string) (*Decision, error) {
	limit := redis_rate.Limit{
		Rate:   l.config.RequestsPerMinute,
		Burst:  l.config.Burst,
		Period: time.Minute,
	}

	res, err := l.distributed.Allow(ctx, l.config.RedisKeyPrefix+key, limit)
	if err != nil {
		return nil, err
	}

	if res.Allowed == 0 {
		logger.DebugCtx(ctx, "Rate limit exceeded",
			zap.String("key", key),
			zap.Duration("retry_after", res.RetryAfter),
		)
	}

	return &Decision{
		Allowed:    res.Allowed > 0,
		Limit:      l.config.RequestsPerMinute,
		Remaining:  res.Remaining,
		RetryAfter: res.RetryAfter,
	}, nil
}

// allowLocal checks the in-process bucket of the key
func (l *limiter) allowLocal(key string) *Decision {
	bucket := l.localLimiter(key)
	now := l.clock.Now()

	reservation := bucket.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return &Decision{
			Allowed:    false,
			Limit:      l.config.RequestsPerMinute,
			RetryAfter: delay,
		}
	}

	return &Decision{
		Allowed:   true,
		Limit:     l.config.RequestsPerMinute,
		Remaining: int(bucket.TokensAt(now)),
	}
}

// localLimiter returns the bucket of the key, creating it with the reduced fallback rate
func (l *limiter) localLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.local[key]
	if !ok {
		perSecond := float64(l.config.RequestsPerMinute) / 60 * l.config.LocalFallbackMultiplier
		burst := max(int(float64(l.config.Burst)*l.config.LocalFallbackMultiplier), 1)
		bucket = rate.NewLimiter(rate.Limit(perSecond), burst)
		l.local[key] = bucket
	}
	return bucket
}

// monitorRedisHealth periodically checks Redis health and updates availability status
func (l *limiter) monitorRedisHealth() {
	defer l.wg.Done()

	for {
		select {
		case <-l.done:
			return
		case <-l.clock.After(healthCheckInterval):
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx).Err()
		cancel()

		redisAvailable := err == nil
		wasAvailable := l.redisAvailable.Swap(redisAvailable)

		if !wasAvailable && redisAvailable {
			logger.Info("Redis connection restored")
		}
	}
}

// Close stops the health monitor. The Redis client is owned by the caller.
func (l *limiter) Close() error {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)
		l.wg.Wait()
		logger.Info("Rate limiter shutdown complete")
	})
	return nil
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be positive")
	}

	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}

	if cfg.RedisKeyPrefix == "" {
		cfg.RedisKeyPrefix = "aisle:limiter:"
	}

	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 0.5
	}

	return nil
}
