package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, level("", true))
	assert.Equal(t, slog.LevelDebug, level("", false))
	assert.Equal(t, slog.LevelWarn, level("WARN", true))
	assert.Equal(t, slog.LevelError, level("error", false))
	assert.Equal(t, slog.LevelInfo, level("verbose", true), "unknown names keep the default")
}

func TestInit(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	Init(false)
	assert.NotNil(t, Log)
	assert.False(t, Log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, Log.Enabled(context.Background(), slog.LevelWarn))
}
