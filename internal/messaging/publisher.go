package messaging

import (
	"context"

	"github.com/shopwalk/aisle-engine/internal/domain"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishTripCompleted publishes a trip completed event to the message broker
	PublishTripCompleted(ctx context.Context, event *domain.TripCompletedEvent) error
	// Close closes the connection
	Close()
}
