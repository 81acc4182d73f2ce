package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Zuo-Peng/roman-calc/pkg/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		verbose     bool
		debug       bool
	}{
		{name: "development verbose", environment: logger.DevelopmentEnvironment, verbose: true, debug: true},
		{name: "development quiet", environment: logger.DevelopmentEnvironment},
		{name: "production", environment: logger.ProductionEnvironment},
		{name: "unknown falls back to development", environment: "staging", verbose: true, debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment, tt.verbose)
			})

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.debug, logger.Get(ctx).Core().Enabled(zap.DebugLevel))
		})
	}
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	custom := zap.NewExample()

	ctx = logger.WithLogger(ctx, custom)
	require.Equal(t, custom, logger.Get(ctx), "logger in context should match the one we added")
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("session", "abc"))
	logger.Info(ctx, "evaluated", zap.String("expression", "X + V"))
	logger.Debug(ctx, "debug")
	logger.Warn(ctx, "warn")

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, "evaluated", entries[0].Message)
	require.Equal(t, map[string]any{"session": "abc", "expression": "X + V"}, entries[0].ContextMap())
}
