package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/shopwalk/aisle-engine/internal/archiver"
	"github.com/shopwalk/aisle-engine/internal/logger"
)

// LearnFromTrip records the checkoff sequence of a trip and applies its pairwise evidence when valid
func (w *workerCore) LearnFromTrip(ctx workflow.Context, tripID string) error {
	logger.InfoWf(ctx, "Starting trip learning", zap.String("tripID", tripID))

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var sequence archiver.SequenceOutcome
	err := workflow.ExecuteActivity(ctx, w.executor.RecordCheckoffSequence, tripID).Get(ctx, &sequence)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to record checkoff sequence"),
			zap.Error(err),
			zap.String("tripID", tripID),
		)
		return err
	}

	if sequence.Skipped {
		logger.InfoWf(ctx, "Trip has no store, skipping learning", zap.String("tripID", tripID))
		return nil
	}

	if !sequence.IsValid {
		logger.InfoWf(ctx, "Checkoff sequence is not valid, skipping learning",
			zap.String("tripID", tripID),
			zap.String("storeID", sequence.StoreID),
			zap.Int("entries", sequence.EntryCount),
		)
		return nil
	}

	var learning archiver.LearningOutcome
	err = workflow.ExecuteActivity(ctx, w.executor.ApplyTripLearning, tripID).Get(ctx, &learning)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to apply trip learning"),
			zap.Error(err),
			zap.String("tripID", tripID),
		)
		return err
	}

	logger.InfoWf(ctx, "Trip learning completed",
		zap.String("tripID", tripID),
		zap.String("storeID", sequence.StoreID),
		zap.Bool("applied", learning.Applied),
		zap.Int("deltas", learning.DeltaCount),
		zap.Int("categories", learning.CategoryCount),
	)

	return nil
}
