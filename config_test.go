package scenery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edwinsyarief/scenery"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := scenery.LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, scenery.DefaultConfig(), cfg)
		assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "scene.yaml", "max_entity_count: 500\nlog_level: debug\ndebug_checks: true\n")
		cfg, err := scenery.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, scenery.Config{MaxEntityCount: 500, LogLevel: "debug", DebugChecks: true}, cfg)
	})

	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, "scene.toml", "max_entity_count = 64\n")
		cfg, err := scenery.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 64, cfg.MaxEntityCount)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("SCENERY_MAX_ENTITY_COUNT", "128")
		t.Setenv("SCENERY_DEBUG_CHECKS", "true")
		path := writeFile(t, "scene.yaml", "max_entity_count: 500\n")
		cfg, err := scenery.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 128, cfg.MaxEntityCount)
		assert.True(t, cfg.DebugChecks)
	})

	t.Run("unknown extension", func(t *testing.T) {
		path := writeFile(t, "scene.ini", "")
		_, err := scenery.LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := scenery.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     scenery.Config
		wantErr bool
	}{
		{"default", scenery.DefaultConfig(), false},
		{"zero capacity", scenery.Config{MaxEntityCount: 0, LogLevel: "info"}, true},
		{"bad level", scenery.Config{MaxEntityCount: 1, LogLevel: "loud"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
