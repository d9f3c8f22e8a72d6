package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SIDEDOCK_LOG_LEVEL", "trace")
	t.Setenv("SIDEDOCK_LOG_FORMAT", "json")

	cfg := ConfigFromEnv(DefaultConfig())

	assert.Equal(t, zerolog.TraceLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestWithComponentAddsField(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))
	ctx = WithComponent(ctx, "dock")

	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"dock"`)
}

func TestFromContextWithoutLoggerIsUsable(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestNewWithFileWritesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sidedock.log")
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.File = path

	logger, cleanup, err := NewWithFile(cfg)
	require.NoError(t, err)
	logger.Info().Str("edge", "left").Msg("snapped")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"edge":"left"`)
}

func TestNewWithFileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sidedock.log")
	cfg := DefaultConfig()
	cfg.File = path
	cfg.FileOnly = true

	logger, cleanup, err := NewWithFile(cfg)
	require.NoError(t, err)
	logger.Warn().Msg("quiet")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"quiet"`)
}
