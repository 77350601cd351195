// internal/utils/logger/logger_test.go
package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{Logger: zap.New(core), config: DefaultConfig()}, logs
}

func TestWithOperationAddsCorrelationID(t *testing.T) {
	log, logs := observedLogger()

	log.WithOperation("swap").Info("started")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "swap", fields["operation"])

	id, ok := fields["correlation_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestWithTransactionAddsTxHash(t *testing.T) {
	log, logs := observedLogger()

	log.WithTransaction("5h3k").Info("confirmed")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "5h3k", entries[0].ContextMap()["tx_hash"])
}

func TestWithComponentAddsComponent(t *testing.T) {
	log, logs := observedLogger()

	log.WithComponent("admin-api").Info("listening")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "admin-api", entries[0].ContextMap()["component"])
}

func TestLogErrorAttachesError(t *testing.T) {
	log, logs := observedLogger()

	log.LogError("request failed", errors.New("boom"), zap.String("op", "swap"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "swap", fields["op"])
}

func TestNewWritesToLogFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "multihub.log")

	log, err := New(cfg)
	require.NoError(t, err)

	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
