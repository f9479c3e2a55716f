package workflows

import (
	"go.temporal.io/sdk/workflow"
)

// WorkerCore defines the interface for learning workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// LearnFromTrip records the checkoff sequence of a trip and applies its pairwise evidence when valid
	LearnFromTrip(ctx workflow.Context, tripID string) error
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor) WorkerCore {
	return &workerCore{
		executor: executor,
	}
}
