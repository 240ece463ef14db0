package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebws/biztime/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		debugEnabled bool
		errorEnabled bool
	}{
		{
			name:         "debug_level",
			logLevel:     "debug",
			debugEnabled: true,
			errorEnabled: true,
		},
		{
			name:         "error_level",
			logLevel:     "error",
			debugEnabled: false,
			errorEnabled: true,
		},
		{
			name:         "invalid_level_falls_back_to_info",
			logLevel:     "loud",
			debugEnabled: false,
			errorEnabled: true,
		},
		{
			name:         "case_insensitive",
			logLevel:     "DEBUG",
			debugEnabled: true,
			errorEnabled: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)

			ctx := context.Background()
			assert.Equal(t, tc.debugEnabled, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.errorEnabled, logger.Enabled(ctx, slog.LevelError))
		})
	}
}

func TestContextLogger(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		logger := slog.Default().With(slog.String("trace_id", "abc"))
		ctx := WithLogger(context.Background(), logger)

		got, ok := FromContext(ctx)
		require.True(t, ok)
		assert.Same(t, logger, got)
	})

	t.Run("missing_logger", func(t *testing.T) {
		_, ok := FromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("falls_back_to_default_argument", func(t *testing.T) {
		def := slog.Default().With(slog.String("component", "test"))
		got := FromContextOrDefault(context.Background(), def)
		assert.Same(t, def, got)
	})

	t.Run("falls_back_to_process_default", func(t *testing.T) {
		got := FromContextOrDefault(context.Background(), nil)
		assert.NotNil(t, got)
	})

	t.Run("context_logger_wins", func(t *testing.T) {
		ctxLogger := slog.Default().With(slog.String("trace_id", "abc"))
		ctx := WithLogger(context.Background(), ctxLogger)

		def := slog.Default().With(slog.String("component", "test"))
		assert.Same(t, ctxLogger, FromContextOrDefault(ctx, def))
	})
}
