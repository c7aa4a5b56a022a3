package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("stream broken") }

func TestNewManagerCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	manager, err := NewManager(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, manager.GetOutputDir())
	assert.DirExists(t, dir)
	assert.Equal(t, 0, manager.SavedCount())
}

func TestLogoPath(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "2829.png", LogoFilename(2829))
	assert.Equal(t, filepath.Join(manager.GetOutputDir(), "17.png"), manager.LogoPath(17))
}

func TestSaveLogo(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	require.NoError(t, err)

	data := []byte("\x89PNG fake logo bytes")
	n, err := manager.SaveLogo(bytes.NewReader(data), 17)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)

	content, err := os.ReadFile(filepath.Join(dir, "17.png"))
	require.NoError(t, err)
	assert.Equal(t, data, content)
	assert.Equal(t, 1, manager.SavedCount())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestSaveLogoOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "18.png"), []byte("an older and longer logo"), 0644))

	manager, err := NewManager(dir)
	require.NoError(t, err)

	_, err = manager.SaveLogo(bytes.NewReader([]byte("new")), 18)
	require.NoError(t, err)

	_, err = manager.SaveLogo(bytes.NewReader([]byte("newer")), 18)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "18.png"))
	require.NoError(t, err)
	assert.Equal(t, "newer", string(content))
	assert.Equal(t, 1, manager.SavedCount())
}

func TestSaveLogoReadFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	require.NoError(t, err)

	n, err := manager.SaveLogo(failingReader{}, 19)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream broken")
	assert.Zero(t, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 0, manager.SavedCount())
}
