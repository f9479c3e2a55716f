package archiver

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/shopwalk/aisle-engine/internal/adapter"
	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/messaging"
	"github.com/shopwalk/aisle-engine/internal/store/schema"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/learning_scheduler.go -package=mocks -mock_names=LearningScheduler=MockLearningScheduler

// LearningScheduler hands the learning of an archived trip to the background pipeline
type LearningScheduler interface {
	ScheduleLearning(ctx context.Context, trip *schema.Trip) error
}

type eventScheduler struct {
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewEventScheduler creates a scheduler that publishes a trip completed event per trip
func NewEventScheduler(publisher messaging.Publisher, clock adapter.Clock) LearningScheduler {
	return &eventScheduler{publisher: publisher, clock: clock}
}

// ScheduleLearning publishes the trip completed event of the trip
func (s *eventScheduler) ScheduleLearning(ctx context.Context, trip *schema.Trip) error {
	event := &domain.TripCompletedEvent{
		EventID:     ulid.MustNewDefault(s.clock.Now()).String(),
		TripID:      trip.ID.String(),
		ListID:      trip.ListID.String(),
		StoreID:     trip.StoreID,
		CompletedAt: trip.EndedAt,
	}

	if err := s.publisher.PublishTripCompleted(ctx, event); err != nil {
		return fmt.Errorf("failed to publish trip completed event: %w", err)
	}
	return nil
}
