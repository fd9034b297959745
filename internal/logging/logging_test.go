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

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"fatal", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestSetupConsole(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var console bytes.Buffer
	logger, err := Setup(&console, "warn", "")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("duplicate member name", "name", "a.o")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "duplicate member name")
	assert.Contains(t, console.String(), "a.o")
}

func TestSetupFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	dir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer
	logger, err := Setup(&console, "info", dir)
	require.NoError(t, err)

	logger.Info("indexed archive", "members", 3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^arindex_\d{8}_\d{6}\.log$`, entries[0].Name())

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"indexed archive"`)
	assert.Contains(t, string(content), `"members":3`)
	assert.Contains(t, console.String(), "indexed archive")
}
