package main

import (
	"testing"
	"time"

	"go.temporal.io/api/common/v1"
	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "milliseconds", duration: 500 * time.Millisecond, want: "500ms"},
		{name: "seconds", duration: 5 * time.Second, want: "5.00s"},
		{name: "minutes", duration: 2*time.Minute + 30*time.Second, want: "2m 30s"},
		{name: "hours", duration: 1*time.Hour + 15*time.Minute, want: "1h 15m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDuration(tt.duration)
			if got != tt.want {
				t.Errorf("formatDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPercentile(t *testing.T) {
	durations := []time.Duration{5 * time.Second, 1 * time.Second, 3 * time.Second, 2 * time.Second, 4 * time.Second}

	tests := []struct {
		name string
		p    float64
		want time.Duration
	}{
		{name: "p0", p: 0, want: 1 * time.Second},
		{name: "p50", p: 50, want: 3 * time.Second},
		{name: "p95", p: 95, want: 5 * time.Second},
		{name: "max", p: 100, want: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentile(durations, tt.p)
			if got != tt.want {
				t.Errorf("percentile() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := percentile(nil, 50); got != 0 {
		t.Errorf("percentile(nil) = %v, want 0", got)
	}
	if durations[0] != 5*time.Second {
		t.Errorf("percentile() reordered its input")
	}
}

func TestAggregate(t *testing.T) {
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	now := base.Add(time.Hour)

	execution := func(id string, status enums.WorkflowExecutionStatus, startOffset, runtime time.Duration) *workflowpb.WorkflowExecutionInfo {
		info := &workflowpb.WorkflowExecutionInfo{
			Execution: &common.WorkflowExecution{WorkflowId: id, RunId: id + "-run"},
			Status:    status,
			StartTime: timestamppb.New(base.Add(startOffset)),
		}
		if status != enums.WORKFLOW_EXECUTION_STATUS_RUNNING {
			info.CloseTime = timestamppb.New(base.Add(startOffset + runtime))
		}
		return info
	}

	stats := aggregate([]*workflowpb.WorkflowExecutionInfo{
		execution("learn-trip-a", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, 0, 2*time.Second),
		execution("learn-trip-b", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, time.Minute, 4*time.Second),
		execution("learn-trip-c", enums.WORKFLOW_EXECUTION_STATUS_FAILED, 2*time.Minute, time.Second),
		execution("learn-trip-c", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, 3*time.Minute, 6*time.Second),
		execution("learn-trip-d", enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT, 4*time.Minute, 10*time.Minute),
		execution("learn-trip-e", enums.WORKFLOW_EXECUTION_STATUS_RUNNING, 5*time.Minute, 0),
	}, base, now)

	if stats.Total != 6 {
		t.Errorf("Total = %d, want 6", stats.Total)
	}
	if stats.Completed != 3 || stats.Failed != 1 || stats.TimedOut != 1 || stats.Running != 1 {
		t.Errorf("unexpected status counts: %+v", stats)
	}
	if stats.failures() != 2 {
		t.Errorf("failures() = %d, want 2", stats.failures())
	}
	if stats.Retried != 1 {
		t.Errorf("Retried = %d, want 1", stats.Retried)
	}
	if len(stats.Durations) != 3 {
		t.Errorf("len(Durations) = %d, want 3", len(stats.Durations))
	}
	if got := percentile(stats.Durations, 100); got != 6*time.Second {
		t.Errorf("max duration = %v, want 6s", got)
	}
	if want := []string{"learn-trip-c", "learn-trip-d"}; len(stats.FailedWorkflows) != 2 ||
		stats.FailedWorkflows[0] != want[0] || stats.FailedWorkflows[1] != want[1] {
		t.Errorf("FailedWorkflows = %v, want %v", stats.FailedWorkflows, want)
	}
	if !stats.FirstStart.Equal(base) {
		t.Errorf("FirstStart = %v, want %v", stats.FirstStart, base)
	}
	if want := base.Add(4*time.Minute + 10*time.Minute); !stats.LastClose.Equal(want) {
		t.Errorf("LastClose = %v, want %v", stats.LastClose, want)
	}
}

func TestAggregate_Empty(t *testing.T) {
	stats := aggregate(nil, time.Now(), time.Now())

	if stats.Total != 0 || stats.span() != 0 {
		t.Errorf("unexpected stats for no executions: %+v", stats)
	}
	if got := statusEmoji(stats.Completed, stats.failures(), stats.Running); got != "⚪" {
		t.Errorf("statusEmoji() = %v, want ⚪", got)
	}
}

func TestPercentageString(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		total int
		want  string
	}{
		{name: "half", part: 1, total: 2, want: "50.00%"},
		{name: "zero total", part: 1, total: 0, want: "0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentageString(tt.part, tt.total)
			if got != tt.want {
				t.Errorf("percentageString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusEmoji(t *testing.T) {
	tests := []struct {
		name    string
		passed  int
		failed  int
		running int
		want    string
	}{
		{name: "running", running: 1, want: "🟡"},
		{name: "failed", passed: 1, failed: 1, want: "❌"},
		{name: "passed", passed: 5, want: "✅"},
		{name: "none", want: "⚪"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusEmoji(tt.passed, tt.failed, tt.running)
			if got != tt.want {
				t.Errorf("statusEmoji() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	if got := formatRate(20, 10*time.Second); got != "2.00/s" {
		t.Errorf("formatRate() = %v, want 2.00/s", got)
	}
	if got := formatRate(10, 0); got != "N/A" {
		t.Errorf("formatRate() = %v, want N/A", got)
	}
}
