package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
	"go.temporal.io/sdk/client"
)

const (
	defaultTemporalHost = "localhost:7233"
	defaultNamespace    = "default"
	learningWorkflow    = "LearnFromTrip"
	maxListedFailures   = 20
)

type Config struct {
	TemporalHost string
	Namespace    string
	Since        time.Duration
	MaxWorkflows int           // Maximum number of workflows to collect (0 = unlimited)
	QueryTimeout time.Duration // Timeout for each Temporal query
	OutputFile   string        // Output markdown file path (optional)
	PageSize     int           // Page size for Temporal queries
	Debug        bool
}

// LearningStats summarizes the trip learning workflows started within a window
type LearningStats struct {
	WindowStart     time.Time
	Total           int
	Running         int
	Completed       int
	Failed          int
	Terminated      int
	TimedOut        int
	Canceled        int
	Retried         int
	FirstStart      *time.Time
	LastClose       *time.Time
	Durations       []time.Duration
	FailedWorkflows []string
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		fmt.Printf("Error creating Temporal client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	fmt.Printf("Connected to Temporal at %s (namespace: %s)\n", cfg.TemporalHost, cfg.Namespace)

	windowStart := time.Now().Add(-cfg.Since)
	executions, err := listLearningWorkflows(ctx, c, cfg, windowStart)
	if err != nil {
		fmt.Printf("Error listing workflows: %v\n", err)
		os.Exit(1)
	}

	stats := aggregate(executions, windowStart, time.Now())

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("TRIP LEARNING REPORT")
	fmt.Println(strings.Repeat("=", 80))
	printStats(stats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, stats); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.TemporalHost, "temporal-host", defaultTemporalHost, "Temporal host address")
	flag.StringVar(&cfg.Namespace, "namespace", defaultNamespace, "Temporal namespace")
	flag.DurationVar(&cfg.Since, "since", 24*time.Hour, "Report on workflows started within this window")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	flag.IntVar(&cfg.MaxWorkflows, "max-workflows", 10000, "Maximum workflows to collect (0 = unlimited)")
	flag.IntVar(&cfg.PageSize, "page-size", 1000, "Page size for Temporal queries (max: 1000)")

	var queryTimeoutSeconds int
	flag.IntVar(&queryTimeoutSeconds, "query-timeout", 30, "Timeout for each Temporal query in seconds")

	configFile := flag.String("config", GetDefaultConfigPath(), "Path to config file (optional)")

	flag.Parse()

	cfg.QueryTimeout = time.Duration(queryTimeoutSeconds) * time.Second

	if cfg.PageSize <= 0 || cfg.PageSize > 1000 {
		cfg.PageSize = 1000
	}

	if *configFile != "" {
		fileCfg, err := LoadConfig(*configFile)
		if err == nil {
			// Override with file values if not set via flags
			if cfg.TemporalHost == defaultTemporalHost && fileCfg.TemporalHost != "" {
				cfg.TemporalHost = fileCfg.TemporalHost
			}
			if cfg.Namespace == defaultNamespace && fileCfg.Namespace != "" {
				cfg.Namespace = fileCfg.Namespace
			}
		} else if !os.IsNotExist(err) {
			fmt.Printf("Warning: failed to load config file: %v\n", err)
		}
	}

	return cfg
}

// listLearningWorkflows pages through the learning workflows started since windowStart
func listLearningWorkflows(ctx context.Context, c client.Client, cfg *Config, windowStart time.Time) ([]*workflowpb.WorkflowExecutionInfo, error) {
	query := fmt.Sprintf("WorkflowType = '%s' AND StartTime >= '%s'", learningWorkflow, windowStart.UTC().Format(time.RFC3339))
	if cfg.Debug {
		fmt.Printf("[DEBUG] Query: %s\n", query)
	}

	var executions []*workflowpb.WorkflowExecutionInfo
	var pageToken []byte
	for {
		queryCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		resp, err := c.ListWorkflow(queryCtx, &workflowservice.ListWorkflowExecutionsRequest{
			Namespace:     cfg.Namespace,
			Query:         query,
			PageSize:      int32(cfg.PageSize),
			NextPageToken: pageToken,
		})
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return executions, nil
			}
			return nil, fmt.Errorf("failed to list workflows: %w", err)
		}

		executions = append(executions, resp.Executions...)
		if cfg.Debug {
			fmt.Printf("[DEBUG] Collected %d workflows\n", len(executions))
		}

		if cfg.MaxWorkflows > 0 && len(executions) >= cfg.MaxWorkflows {
			return executions[:cfg.MaxWorkflows], nil
		}

		pageToken = resp.NextPageToken
		if len(pageToken) == 0 {
			return executions, nil
		}
	}
}

// aggregate summarizes the executions, running workflows are measured up to now
func aggregate(executions []*workflowpb.WorkflowExecutionInfo, windowStart, now time.Time) *LearningStats {
	stats := &LearningStats{WindowStart: windowStart}
	runs := make(map[string]int)

	for _, exec := range executions {
		stats.Total++
		start := exec.GetStartTime().AsTime()
		if stats.FirstStart == nil || start.Before(*stats.FirstStart) {
			stats.FirstStart = &start
		}

		end := now
		if exec.GetCloseTime() != nil {
			end = exec.GetCloseTime().AsTime()
			if stats.LastClose == nil || end.After(*stats.LastClose) {
				closeTime := end
				stats.LastClose = &closeTime
			}
		}

		failed := false
		switch exec.GetStatus() {
		case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
			stats.Running++
		case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
			stats.Completed++
			stats.Durations = append(stats.Durations, end.Sub(start))
		case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
			stats.Failed++
			failed = true
		case enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
			stats.Terminated++
			failed = true
		case enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
			stats.TimedOut++
			failed = true
		case enums.WORKFLOW_EXECUTION_STATUS_CANCELED:
			stats.Canceled++
			failed = true
		}

		// The reuse policy only allows a new run after a failed one
		runs[exec.GetExecution().GetWorkflowId()]++
		if runs[exec.GetExecution().GetWorkflowId()] == 2 {
			stats.Retried++
		}

		if failed && len(stats.FailedWorkflows) < maxListedFailures {
			stats.FailedWorkflows = append(stats.FailedWorkflows, exec.GetExecution().GetWorkflowId())
		}
	}

	sort.Strings(stats.FailedWorkflows)
	return stats
}

func (s *LearningStats) failures() int {
	return s.Failed + s.Terminated + s.TimedOut + s.Canceled
}

func (s *LearningStats) span() time.Duration {
	if s.FirstStart == nil || s.LastClose == nil {
		return 0
	}
	return s.LastClose.Sub(*s.FirstStart)
}

func printStats(stats *LearningStats) {
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("%s Workflow: %s\n", statusEmoji(stats.Completed, stats.failures(), stats.Running), learningWorkflow)
	fmt.Printf("  Window Start: %s\n", stats.WindowStart.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Total:        %d\n", stats.Total)
	fmt.Printf("  Completed:    %d (%s)\n", stats.Completed, percentageString(stats.Completed, stats.Total))
	if stats.Running > 0 {
		fmt.Printf("  Running:      %d\n", stats.Running)
	}
	if stats.failures() > 0 {
		fmt.Printf("  Failed:       %d (%s)\n", stats.failures(), percentageString(stats.failures(), stats.Total))
		fmt.Printf("    failed %d, terminated %d, timed out %d, canceled %d\n", stats.Failed, stats.Terminated, stats.TimedOut, stats.Canceled)
	}
	if stats.Retried > 0 {
		fmt.Printf("  Rerun trips:  %d\n", stats.Retried)
	}
	fmt.Println()

	if len(stats.Durations) > 0 {
		fmt.Println("Completed Run Durations:")
		fmt.Printf("  p50:          %s\n", formatDuration(percentile(stats.Durations, 50)))
		fmt.Printf("  p95:          %s\n", formatDuration(percentile(stats.Durations, 95)))
		fmt.Printf("  max:          %s\n", formatDuration(percentile(stats.Durations, 100)))
		fmt.Printf("  Throughput:   %s\n", formatRate(stats.Completed, stats.span()))
		fmt.Println()
	}

	if len(stats.FailedWorkflows) > 0 {
		fmt.Println("Failed Workflows:")
		for _, id := range stats.FailedWorkflows {
			fmt.Printf("  %s\n", id)
		}
	}

	fmt.Println(strings.Repeat("-", 80))
}

func formatStatus(status enums.WorkflowExecutionStatus) string {
	switch status {
	case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
		return "🟡 RUNNING"
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		return "✅ COMPLETED"
	case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
		return "❌ FAILED"
	case enums.WORKFLOW_EXECUTION_STATUS_CANCELED:
		return "🚫 CANCELED"
	case enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
		return "⛔ TERMINATED"
	case enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
		return "⏱️ TIMED_OUT"
	default:
		return status.String()
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// writeMarkdownReport writes a markdown report of the learning stats
func writeMarkdownReport(filepath string, stats *LearningStats) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	_, _ = fmt.Fprintf(file, "# Trip Learning Report\n\n")
	_, _ = fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	_, _ = fmt.Fprintf(file, "## Summary\n\n")
	_, _ = fmt.Fprintf(file, "| Metric | Value |\n")
	_, _ = fmt.Fprintf(file, "|--------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Window Start** | %s |\n", stats.WindowStart.Format("2006-01-02 15:04:05"))
	_, _ = fmt.Fprintf(file, "| **Total** | %d |\n", stats.Total)
	_, _ = fmt.Fprintf(file, "| **%s** | %d (%s) |\n", formatStatus(enums.WORKFLOW_EXECUTION_STATUS_COMPLETED), stats.Completed, percentageString(stats.Completed, stats.Total))
	_, _ = fmt.Fprintf(file, "| **%s** | %d |\n", formatStatus(enums.WORKFLOW_EXECUTION_STATUS_RUNNING), stats.Running)
	_, _ = fmt.Fprintf(file, "| **%s** | %d |\n", formatStatus(enums.WORKFLOW_EXECUTION_STATUS_FAILED), stats.Failed)
	_, _ = fmt.Fprintf(file, "| **%s** | %d |\n", formatStatus(enums.WORKFLOW_EXECUTION_STATUS_TERMINATED), stats.Terminated)
	_, _ = fmt.Fprintf(file, "| **%s** | %d |\n", formatStatus(enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT), stats.TimedOut)
	_, _ = fmt.Fprintf(file, "| **%s** | %d |\n", formatStatus(enums.WORKFLOW_EXECUTION_STATUS_CANCELED), stats.Canceled)
	_, _ = fmt.Fprintf(file, "\n")

	if len(stats.Durations) > 0 {
		_, _ = fmt.Fprintf(file, "## Completed Run Durations\n\n")
		_, _ = fmt.Fprintf(file, "| Percentile | Duration |\n")
		_, _ = fmt.Fprintf(file, "|------------|----------|\n")
		_, _ = fmt.Fprintf(file, "| p50 | %s |\n", formatDuration(percentile(stats.Durations, 50)))
		_, _ = fmt.Fprintf(file, "| p95 | %s |\n", formatDuration(percentile(stats.Durations, 95)))
		_, _ = fmt.Fprintf(file, "| max | %s |\n", formatDuration(percentile(stats.Durations, 100)))
		_, _ = fmt.Fprintf(file, "\n")
	}

	if len(stats.FailedWorkflows) > 0 {
		_, _ = fmt.Fprintf(file, "## Failed Workflows\n\n")
		for _, id := range stats.FailedWorkflows {
			_, _ = fmt.Fprintf(file, "- `%s`\n", id)
		}
	}

	return nil
}
