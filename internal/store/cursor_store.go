package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopwalk/aisle-engine/internal/store/schema"
)

// SweepCursor is the keyset position of a sweeper over trips ordered by (ended_at, id)
type SweepCursor struct {
	EndedAt time.Time
	TripID  uuid.UUID
}

// String encodes the cursor for the key-value store
func (c SweepCursor) String() string {
	return fmt.Sprintf("%s|%s", c.EndedAt.UTC().Format(time.RFC3339Nano), c.TripID)
}

// ParseSweepCursor decodes a cursor previously encoded with String
func ParseSweepCursor(s string) (*SweepCursor, error) {
	endedAt, tripID, ok := strings.Cut(s, "|")
	if !ok {
		return nil, fmt.Errorf("invalid sweep cursor: %q", s)
	}

	t, err := time.Parse(time.RFC3339Nano, endedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid sweep cursor time: %w", err)
	}
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, fmt.Errorf("invalid sweep cursor trip id: %w", err)
	}

	return &SweepCursor{EndedAt: t, TripID: id}, nil
}

//go:generate mockgen -source=cursor_store.go -destination=../mocks/cursor_store.go -package=mocks -mock_names=CursorStore=MockCursorStore

// CursorStore defines the interface for storing and retrieving sweeper cursors
type CursorStore interface {
	// GetSweepCursor retrieves the last processed position of a sweeper, nil when none
	GetSweepCursor(ctx context.Context, sweeper string) (*SweepCursor, error)
	// SetSweepCursor stores the last processed position of a sweeper, nil resets it
	SetSweepCursor(ctx context.Context, sweeper string, cursor *SweepCursor) error
}

type cursorStore struct {
	db *gorm.DB
}

// NewCursorStore creates a new cursor store
func NewCursorStore(db *gorm.DB) CursorStore {
	return &cursorStore{db: db}
}

func sweepCursorKey(sweeper string) string {
	return fmt.Sprintf("sweep_cursor:%s", sweeper)
}

// GetSweepCursor retrieves the last processed position of a sweeper
func (s *cursorStore) GetSweepCursor(ctx context.Context, sweeper string) (*SweepCursor, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", sweepCursorKey(sweeper)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Start from the beginning if no cursor exists
		}
		return nil, fmt.Errorf("failed to get sweep cursor: %w", err)
	}

	if kv.Value == "" {
		return nil, nil
	}

	cursor, err := ParseSweepCursor(kv.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sweep cursor: %w", err)
	}

	return cursor, nil
}

// SetSweepCursor stores the last processed position of a sweeper
func (s *cursorStore) SetSweepCursor(ctx context.Context, sweeper string, cursor *SweepCursor) error {
	kv := schema.KeyValueStore{
		Key: sweepCursorKey(sweeper),
	}
	if cursor != nil {
		kv.Value = cursor.String()
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set sweep cursor: %w", err)
	}

	return nil
}
