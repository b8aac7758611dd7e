package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.Equal(t, 9, cfg.ForGame("tictactoe").Depth)
	require.Equal(t, cfg.Search, cfg.ForGame("unknown"),
		"Unknown games get the global settings")
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults field by field", func(t *testing.T) {
		path := writeConfig(t, `
log_level: debug
games:
  connectfour:
    depth: 9
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "debug", cfg.LogLevel)
		got := cfg.ForGame("connectfour")
		require.Equal(t, 9, got.Depth)
		require.Equal(t, Default().Search.MoveCapacity, got.MoveCapacity,
			"An override without move_capacity falls back to the global value")
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "search: ["))
		require.Error(t, err)
	})

	t.Run("rejects a bad log level", func(t *testing.T) {
		_, err := Load(writeConfig(t, "log_level: shout"))
		require.Error(t, err)
	})
}
