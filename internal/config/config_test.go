package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a config file overriding a few values
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nredis:\n  host: cache\n  session-ttl: 10m\nengine:\n  workers: 4\nconsole:\n  human-mark: O\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf, err := Load(path)

		// Then: file values win and the rest falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 10*time.Minute, conf.Redis.SessionTTL)
		assert.Equal(t, 4, conf.Engine.Workers)
		assert.True(t, conf.Engine.Heuristics)
		assert.Equal(t, "O", conf.Console.HumanMark)
		assert.Equal(t, "9090", conf.HTTPPort)
	})

	t.Run("Falls back to the environment without a file", func(t *testing.T) {
		// Given: no config file and a socket port in the environment
		t.Setenv("SOCKET_PORT", "7000")
		t.Setenv("ENGINE_HEURISTICS", "false")
		t.Setenv("ALLOWED_ORIGINS", "http://a.example,http://b.example")

		// When: the config is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: environment and defaults are used
		require.NoError(t, err)
		assert.Equal(t, "7000", conf.SocketPort)
		assert.False(t, conf.Engine.Heuristics)
		assert.Equal(t, []string{"http://a.example", "http://b.example"}, conf.AllowedOrigins)
		assert.Equal(t, time.Hour, conf.Redis.SessionTTL)
		assert.Equal(t, "X", conf.Console.HumanMark)
	})

	t.Run("Must load panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
