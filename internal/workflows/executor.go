package workflows

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/shopwalk/aisle-engine/internal/archiver"
	"github.com/shopwalk/aisle-engine/internal/logger"
)

// Executor defines the interface for executing learning activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// RecordCheckoffSequence builds and persists the checkoff sequence of a trip
	RecordCheckoffSequence(ctx context.Context, tripID string) (*archiver.SequenceOutcome, error)

	// ApplyTripLearning adds the pairwise evidence of a trip to the comparison counters
	ApplyTripLearning(ctx context.Context, tripID string) (*archiver.LearningOutcome, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	archiver archiver.Archiver
}

// NewExecutor creates a new executor instance
func NewExecutor(archiver archiver.Archiver) Executor {
	return &executor{
		archiver: archiver,
	}
}

// RecordCheckoffSequence builds and persists the checkoff sequence of a trip
func (e *executor) RecordCheckoffSequence(ctx context.Context, tripID string) (*archiver.SequenceOutcome, error) {
	id, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	outcome, err := e.archiver.RecordCheckoffSequence(ctx, id)
	if err != nil {
		if archiver.IsNotFound(err) {
			return nil, temporal.NewNonRetryableApplicationError(
				"trip not found",
				"TripNotFound",
				err,
			)
		}
		return nil, fmt.Errorf("failed to record checkoff sequence: %w", err)
	}

	logger.InfoCtx(ctx, "Checkoff sequence recorded",
		zap.String("tripID", tripID),
		zap.Bool("skipped", outcome.Skipped),
		zap.Bool("valid", outcome.IsValid),
	)

	return outcome, nil
}

// ApplyTripLearning adds the pairwise evidence of a trip to the comparison counters
func (e *executor) ApplyTripLearning(ctx context.Context, tripID string) (*archiver.LearningOutcome, error) {
	id, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	outcome, err := e.archiver.ApplyLearning(ctx, id)
	if err != nil {
		if archiver.IsNotFound(err) {
			return nil, temporal.NewNonRetryableApplicationError(
				"checkoff sequence not found",
				"CheckoffSequenceNotFound",
				err,
			)
		}
		return nil, fmt.Errorf("failed to apply trip learning: %w", err)
	}

	if !outcome.Applied {
		logger.InfoCtx(ctx, "Trip learning already applied or sequence invalid", zap.String("tripID", tripID))
	}

	return outcome, nil
}

func parseTripID(tripID string) (uuid.UUID, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return uuid.Nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("invalid trip ID: %s", tripID),
			"InvalidTripID",
			err,
		)
	}
	return id, nil
}
