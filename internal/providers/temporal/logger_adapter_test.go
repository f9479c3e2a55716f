package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shopwalk/aisle-engine/internal/providers/temporal"
)

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	adapter := temporal.NewZapLoggerAdapter(zap.New(core))

	adapter.Debug("debug", "k", 1)
	adapter.Info("info", "workflowID", "learn-trip-1", "attempt", 2)
	adapter.Warn("warn")
	adapter.Error("error", "dangling")

	entries := logs.AllUntimed()
	assert.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, int64(1), entries[0].ContextMap()["k"])

	info := entries[1].ContextMap()
	assert.Equal(t, "learn-trip-1", info["workflowID"])
	assert.Equal(t, int64(2), info["attempt"])
	assert.Equal(t, "temporal", info["component"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)

	// odd trailing key is dropped
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.NotContains(t, entries[3].ContextMap(), "dangling")
}

func TestZapLoggerAdapter_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	adapter := temporal.NewZapLoggerAdapter(zap.New(core))

	withLogger, ok := adapter.(log.WithLogger)
	assert.True(t, ok)

	child := withLogger.With("namespace", "default", 42, "ignored")
	child.Info("polling")

	entries := logs.AllUntimed()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "default", fields["namespace"])
	assert.Len(t, fields, 2)
}
