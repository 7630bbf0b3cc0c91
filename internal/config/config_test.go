package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: A config with only the artifact location
		path := writeConfig(t, "ledger:\n  artifact: ./TicTacToe.json\n")

		// When: Loading it
		conf := MustLoad(path)

		// Then: The cadences match the reference client
		assert.Equal(t, "./TicTacToe.json", conf.Ledger.Artifact)
		assert.Equal(t, uint64(3000000), conf.Ledger.GasLimit)
		assert.Equal(t, time.Second, conf.Polling.Interval)
		assert.Equal(t, 300*time.Millisecond, conf.Watcher.Interval)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Reads durations and nested sections", func(t *testing.T) {
		// Given: A config overriding the cadences
		path := writeConfig(t, `
log-level: debug
socket-port: "8181"
ledger:
  rpc-url: http://node:8545
  artifact: http://assets/TicTacToe.json
polling:
  interval: 2s
  max-failures: 5
  stop-on-terminal: true
watcher:
  interval: 100ms
  max-attempts: 10
session:
  resume: false
`)

		// When: Loading it
		conf := MustLoad(path)

		// Then: Every override is applied
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8181", conf.SocketPort)
		assert.Equal(t, "http://node:8545", conf.Ledger.RPCURL)
		assert.Equal(t, 2*time.Second, conf.Polling.Interval)
		assert.Equal(t, uint64(5), conf.Polling.MaxFailures)
		assert.True(t, conf.Polling.StopOnTerminal)
		assert.Equal(t, 100*time.Millisecond, conf.Watcher.Interval)
		assert.Equal(t, uint64(10), conf.Watcher.MaxAttempts)
		assert.False(t, conf.Session.Resume)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		// When / Then: Loading a missing file panics
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
