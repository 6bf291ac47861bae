package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rkarlsb/taskline/internal/config"
	"github.com/rkarlsb/taskline/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "case-insensitive", logLevel: "INFO"},
		{name: "invalid level falls back to info", logLevel: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{LogLevel: tt.logLevel})
			require.NoError(t, err)
			assert.NotNil(t, log)
			assert.Same(t, log, slog.Default())
		})
	}
}

func TestLoggerContext(t *testing.T) {
	t.Parallel()

	customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("round trip through context", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), customLogger)
		assert.Same(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})

	t.Run("FromContextOrDefault falls back to provided default", func(t *testing.T) {
		def := slog.New(slog.NewTextHandler(io.Discard, nil))
		assert.Same(t, def, logger.FromContextOrDefault(context.Background(), def))

		ctx := logger.WithLogger(context.Background(), customLogger)
		assert.Same(t, customLogger, logger.FromContextOrDefault(ctx, def))
	})

	t.Run("WithLogger panics on nil logger", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}
