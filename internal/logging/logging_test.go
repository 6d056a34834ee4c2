package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pathways/internal/config"
)

func TestSetup_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "debug", LogFormat: "text"}

	logger := SetupWithWriter(cfg, &buf)
	require.NotNil(t, logger)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestSetup_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "info", LogFormat: "json"}

	logger := SetupWithWriter(cfg, &buf)
	require.NotNil(t, logger)

	logger.Info("test-msg")
	assert.Contains(t, buf.String(), `"msg":"test-msg"`)
}

func TestSetup_SetsDefault(t *testing.T) {
	cfg := &config.Config{LogLevel: "info", LogFormat: "text"}
	logger := Setup(cfg)
	assert.Equal(t, logger.Handler(), slog.Default().Handler())
}

func TestSetup_QuietSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "info", LogFormat: "text", Quiet: true}

	logger := SetupWithWriter(cfg, &buf)
	logger.Info("should-not-appear")
	logger.Error("should-appear")

	assert.NotContains(t, buf.String(), "should-not-appear")
	assert.Contains(t, buf.String(), "should-appear")
}

func TestSetup_DebugLevelShowsDebugMessages(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "debug", LogFormat: "text"}

	logger := SetupWithWriter(cfg, &buf)
	logger.Debug("debug-msg")

	assert.Contains(t, buf.String(), "debug-msg")
}

func TestSetup_InfoLevelHidesDebugMessages(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "info", LogFormat: "text"}

	logger := SetupWithWriter(cfg, &buf)
	logger.Debug("debug-hidden")

	assert.NotContains(t, buf.String(), "debug-hidden")
}

func TestNew_DoesNotReplaceDefault(t *testing.T) {
	before := slog.Default()

	var buf bytes.Buffer
	logger := New(&config.Config{LogLevel: "info", LogFormat: "json"}, &buf)
	logger.Info("pathways loaded", slog.Int("count", 3))

	assert.Equal(t, before, slog.Default())
	assert.Contains(t, buf.String(), `"count":3`)
}

func TestOpenFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browse.log")
	cfg := &config.Config{LogLevel: "info", LogFormat: "text"}

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := OpenFile(cfg, path)
		require.NoError(t, err)
		logger.Info(msg)
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=first")
	assert.Contains(t, string(data), "msg=second")
}

func TestOpenFile_BadPath(t *testing.T) {
	_, _, err := OpenFile(&config.Config{}, filepath.Join(t.TempDir(), "missing", "x.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening log file")
}

func TestDiscard_DropsEverything(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestContext_RoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := NewContext(context.Background(), logger)
	got := FromContext(ctx)
	assert.Equal(t, logger, got)
}

func TestFromContext_FallbackToDefault(t *testing.T) {
	got := FromContext(context.Background())
	assert.Equal(t, slog.Default(), got)
}
