package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "tasks.json", cfg.DBPath)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.LoadFile(filepath.Join(t.TempDir(), "taskd.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "taskd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: 8080\ndb_path: /var/lib/taskd/tasks.json\n"), 0644))

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFile(path))
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "/var/lib/taskd/tasks.json", cfg.DBPath)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "taskd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: 9000\n"), 0644))

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFile(path))
		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, "tasks.json", cfg.DBPath)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "taskd.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: [not valid"), 0644))

		cfg := NewConfig()
		err := cfg.LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse")
	})
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Run("env values override defaults", func(t *testing.T) {
		t.Setenv("TASKD_PORT", "4000")
		t.Setenv("TASKD_DB_PATH", "other.json")

		cfg := NewConfig()
		cfg.LoadFromEnvironment()
		assert.Equal(t, 4000, cfg.Port)
		assert.Equal(t, "other.json", cfg.DBPath)
	})

	t.Run("unparseable port is ignored", func(t *testing.T) {
		t.Setenv("TASKD_PORT", "not-a-port")

		cfg := NewConfig()
		cfg.LoadFromEnvironment()
		assert.Equal(t, 3000, cfg.Port)
	})
}

func TestValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, NewConfig().Validate())
	})

	t.Run("port out of range", func(t *testing.T) {
		for _, port := range []int{0, -1, 70000} {
			cfg := NewConfig()
			cfg.Port = port
			assert.Error(t, cfg.Validate(), "port %d", port)
		}
	})

	t.Run("empty database path", func(t *testing.T) {
		cfg := NewConfig()
		cfg.DBPath = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database path")
	})
}
