package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	for _, format := range []string{"yaml", "json"} {
		t.Run(format, func(t *testing.T) {
			fs, err := NewFileStore[Snapshot](t.TempDir(), format)
			require.NoError(t, err)

			var snap Snapshot
			snap.SetSize(800, 1280)
			require.NoError(t, fs.Save("ipad", snap))

			loaded, err := fs.Load("ipad")
			require.NoError(t, err)
			assert.Equal(t, snap, loaded)
			assert.False(t, loaded.IsZero())
		})
	}
}

func TestLoadMissingReturnsZero(t *testing.T) {
	fs, err := NewFileStore[Snapshot](t.TempDir(), "yaml")
	require.NoError(t, err)

	snap, err := fs.Load("nope")
	require.NoError(t, err)
	assert.True(t, snap.IsZero())
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := NewFileStore[Snapshot](t.TempDir(), "toml")
	assert.Error(t, err)
}

func TestCacheDir(t *testing.T) {
	dir := CacheDir()
	assert.NotEmpty(t, dir)
	assert.NotEqual(t, os.TempDir(), dir)
}
