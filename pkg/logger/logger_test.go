package logger_test

import (
	"context"
	"os"
	"passgen/pkg/logger"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NoError(t, logger.Setup(env))
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestSetupWritesToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passgen.log")
	require.NoError(t, logger.Setup(logger.ProductionEnvironment, path))
	t.Cleanup(logger.Discard)

	ctx := context.Background()
	logger.Info(ctx, "password generated", zap.Int("length", 16))
	logger.Sync(ctx)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "password generated")
}

func TestGetPrefersContextLogger(t *testing.T) {
	logger.Discard()
	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom := zap.NewExample()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("requestID", "abc"))
	logger.Warn(ctx, "clipboard unavailable")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "clipboard unavailable", entries[0].Message)
	require.Equal(t, "abc", entries[0].ContextMap()["requestID"])
}

func TestLoggingFunctionsDoNotPanic(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment))
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message")
		logger.Info(ctx, "info message")
		logger.Warn(ctx, "warn message")
		logger.Error(ctx, "error message")
	})
}
