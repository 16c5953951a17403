package logging_test

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to warn", "invalid", log.WarnLevel},
		{"empty defaults to warn", "", log.WarnLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			require.NotNil(t, logger)
			assert.Equal(t, testCase.expected, logger.GetLevel())
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	require.NotNil(t, logging.Default())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, ok := logging.ParseLevel("ERROR")
	require.True(t, ok)
	assert.Equal(t, log.ErrorLevel, lvl)

	_, ok = logging.ParseLevel("verbose")
	assert.False(t, ok)
}

func TestSetLevel_UnknownKeepsCurrent(t *testing.T) {
	before := logging.Default().GetLevel()

	assert.False(t, logging.SetLevel("verbose"))
	assert.Equal(t, before, logging.Default().GetLevel())

	assert.True(t, logging.SetLevel(logging.DefaultLevel))
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)

	assert.Same(t, logger, logging.FromContext(ctx))
}

func TestFromContext_Fallbacks(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, logging.FromContext(nil)) //nolint:staticcheck // nil context fallback is the behavior under test
	assert.NotNil(t, logging.FromContext(context.Background()))
}
