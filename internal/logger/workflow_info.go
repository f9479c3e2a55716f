package logger

import (
	"context"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// WorkflowInfo identifies a workflow execution in logs and sentry events
type WorkflowInfo struct {
	WorkflowType string
	WorkflowID   string
	RunID        string
	Namespace    string
	TaskQueue    string
}

func (i WorkflowInfo) fields() []zap.Field {
	return []zap.Field{
		zap.String("workflow_type", i.WorkflowType),
		zap.String("workflow_id", i.WorkflowID),
		zap.String("run_id", i.RunID),
		zap.String("namespace", i.Namespace),
		zap.String("task_queue", i.TaskQueue),
	}
}

// WithWorkflowInfo returns a logger annotated with the workflow execution.
// When sentry is enabled the execution is also attached as sentry tags.
func WithWorkflowInfo(info WorkflowInfo) *zap.Logger {
	if sentryClient == nil {
		return log.With(info.fields()...)
	}

	hub := sentry.NewHub(sentryClient, sentry.NewScope())
	hub.Scope().SetTags(map[string]string{
		"workflow_type": info.WorkflowType,
		"workflow_id":   info.WorkflowID,
		"namespace":     info.Namespace,
		"task_queue":    info.TaskQueue,
	})
	ctx := sentry.SetHubOnContext(context.Background(), hub)

	return log.With(zapsentry.Context(ctx)).With(info.fields()...)
}

// InfoWorkflow logs an info message for a workflow execution
func InfoWorkflow(info WorkflowInfo, msg string, fields ...zap.Field) {
	WithWorkflowInfo(info).Info(msg, fields...)
}

// ErrorWorkflow logs an error for a workflow execution
func ErrorWorkflow(info WorkflowInfo, err error, fields ...zap.Field) {
	if err != nil {
		WithWorkflowInfo(info).Error(err.Error(), fields...)
	} else {
		WithWorkflowInfo(info).Error("error occurred", fields...)
	}
}

// WarnWorkflow logs a warning message for a workflow execution
func WarnWorkflow(info WorkflowInfo, msg string, fields ...zap.Field) {
	WithWorkflowInfo(info).Warn(msg, fields...)
}

// DebugWorkflow logs a debug message for a workflow execution
func DebugWorkflow(info WorkflowInfo, msg string, fields ...zap.Field) {
	WithWorkflowInfo(info).Debug(msg, fields...)
}
