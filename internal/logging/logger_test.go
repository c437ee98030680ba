package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"chatty":  zerolog.InfoLevel,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(input))
		})
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gamecat.log")

	logger, closeLog, err := New(&Config{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Info().Msg("hidden message")
	logger.Warn().Str("catalog", "games.xml").Msg("visible message")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible message")
	assert.Contains(t, string(data), `"catalog":"games.xml"`)
	assert.NotContains(t, string(data), "hidden message")
}

func TestNew_Discard(t *testing.T) {
	logger, closeLog, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.NoError(t, closeLog())
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestContext(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())

	logger := zerolog.New(nil).Level(zerolog.WarnLevel)
	ctx := WithLogger(context.Background(), logger)
	assert.Equal(t, zerolog.WarnLevel, FromContext(ctx).GetLevel())
}
