package iofs_test

import (
	"os"
	"testing"

	"github.com/gnames/gnanno/internal/iofs"
	"github.com/gnames/gnanno/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	for _, dir := range []string{
		config.ConfigDir(home),
		config.CacheDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent.
	require.NoError(t, iofs.EnsureDirs(home))
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))

	path := config.ConfigFilePath(home)
	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(bs)
	assert.Contains(t, content, "GNanno configuration")
	assert.Contains(t, content, "export:")
	assert.Contains(t, content, "log:")

	// An existing file is never overwritten.
	require.NoError(t, os.WriteFile(path, []byte("custom"), 0644))
	require.NoError(t, iofs.EnsureConfigFile(home))
	bs, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(bs))
}
