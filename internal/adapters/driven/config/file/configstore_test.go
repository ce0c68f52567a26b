package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore(t *testing.T) {
	t.Run("starts empty without a file", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)

		assert.Empty(t, store.GetString(KeyDataDir))
		assert.Zero(t, store.GetInt(KeySearchLimit))
		assert.False(t, store.GetBool("verbose"))
	})

	t.Run("set persists and reloads", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewConfigStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Set(KeyDataDir, "/srv/readocs/data"))
		require.NoError(t, store.Set(KeySearchLimit, 25))

		reloaded, err := NewConfigStore(dir)
		require.NoError(t, err)
		assert.Equal(t, "/srv/readocs/data", reloaded.GetString(KeyDataDir))
		assert.Equal(t, 25, reloaded.GetInt(KeySearchLimit))
	})

	t.Run("reads nested tables as dot keys", func(t *testing.T) {
		dir := t.TempDir()
		content := "[data]\ndir = \"/data\"\n\n[search]\nlimit = 5\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

		store, err := NewConfigStore(dir)
		require.NoError(t, err)
		assert.Equal(t, "/data", store.GetString(KeyDataDir))
		assert.Equal(t, 5, store.GetInt(KeySearchLimit))
	})

	t.Run("wrong types read as zero values", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.Set(KeySearchLimit, "not a number"))

		assert.Zero(t, store.GetInt(KeySearchLimit))
	})

	t.Run("Path points into the config dir", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewConfigStore(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	})
}
