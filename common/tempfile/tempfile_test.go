package tempfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/songquanpeng/fal-relay/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := config.TempDir
	config.TempDir = dir
	t.Cleanup(func() { config.TempDir = prev })
	return dir
}

func TestWriteAndRemove(t *testing.T) {
	dir := useTempDir(t)

	path, err := Write(strings.NewReader("jpeg bytes"), ImageSuffix)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".jpg", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	Remove(context.Background(), path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveMissingFileDoesNotPanic(t *testing.T) {
	useTempDir(t)
	Remove(context.Background(), "")
	Remove(context.Background(), filepath.Join(Dir(), "does-not-exist.jpg"))
}
