package pkg

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("Maps config levels", func(t *testing.T) {
		cases := map[string]slog.Level{
			"debug": slog.LevelDebug,
			"info":  slog.LevelInfo,
			"warn":  slog.LevelWarn,
			"error": slog.LevelError,
			"":      slog.LevelInfo,
			"loud":  slog.LevelInfo,
		}

		for name, want := range cases {
			logger := NewLogger(&bytes.Buffer{}, name)

			assert.True(t, logger.Enabled(context.Background(), want), name)
			assert.False(t, logger.Enabled(context.Background(), want-1), name)
		}
	})

	t.Run("Writes JSON", func(t *testing.T) {
		var out bytes.Buffer

		NewLogger(&out, "info").Info("started", "port", "9090")

		assert.Contains(t, out.String(), `"msg":"started"`)
		assert.Contains(t, out.String(), `"port":"9090"`)
	})
}
