package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.EqualError(t, err, "invalid log level: loud")
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "debug", Resolve("debug", "error"))
	assert.Equal(t, "error", Resolve("", "error"))
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "widgets.log")

	logger, closeFn, err := New(path, "warn")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("division by zero", "operand", 6)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `msg="division by zero" operand=6`)
}

func TestNew_NoPath(t *testing.T) {
	logger, closeFn, err := New("", "debug")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closeFn())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("", "loud")
	assert.Error(t, err)
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, slog.LevelDebug).Debug("tick", "elapsed", 3)
	assert.Contains(t, buf.String(), "level=DEBUG msg=tick elapsed=3")
}
