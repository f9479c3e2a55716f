package temporal

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/shopwalk/aisle-engine/internal/logger"
	"github.com/shopwalk/aisle-engine/internal/store/schema"
	"github.com/shopwalk/aisle-engine/internal/workflows"
)

// TripLearningRunTimeout bounds a single trip learning workflow run
const TripLearningRunTimeout = 10 * time.Minute

//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// TripLearningWorkflowID returns the workflow ID of the learning workflow of a trip.
// One ID per trip keeps concurrent triggers from learning the same trip twice.
func TripLearningWorkflowID(tripID string) string {
	return fmt.Sprintf("learn-trip-%s", tripID)
}

// StartTripLearning starts the learning workflow of a trip on the given task queue
func StartTripLearning(ctx context.Context, orchestrator TemporalOrchestrator, taskQueue string, tripID string) (client.WorkflowRun, error) {
	opts := client.StartWorkflowOptions{
		ID:                    TripLearningWorkflowID(tripID),
		TaskQueue:             taskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		WorkflowRunTimeout:    TripLearningRunTimeout,
	}

	w := workflows.NewWorkerCore(nil)
	run, err := orchestrator.ExecuteWorkflow(ctx, opts, w.LearnFromTrip, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to start trip learning workflow: %w", err)
	}

	return run, nil
}

// WorkflowScheduler schedules trip learning directly on Temporal
type WorkflowScheduler struct {
	orchestrator TemporalOrchestrator
	taskQueue    string
}

// NewWorkflowScheduler creates a scheduler starting learning workflows on the given task queue
func NewWorkflowScheduler(orchestrator TemporalOrchestrator, taskQueue string) *WorkflowScheduler {
	return &WorkflowScheduler{
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
	}
}

// ScheduleLearning starts the learning workflow of the trip
func (s *WorkflowScheduler) ScheduleLearning(ctx context.Context, trip *schema.Trip) error {
	run, err := StartTripLearning(ctx, s.orchestrator, s.taskQueue, trip.ID.String())
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Trip learning scheduled",
		zap.String("tripID", trip.ID.String()),
		zap.String("workflowID", run.GetID()),
		zap.String("runID", run.GetRunID()),
	)

	return nil
}
