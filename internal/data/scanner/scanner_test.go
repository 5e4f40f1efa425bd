package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFindsLogFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.LOG"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	files, err := NewFileScanner(dir).Scan()

	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestScanMissingFolderIsEmptyNotError(t *testing.T) {
	files, err := NewFileScanner(filepath.Join(t.TempDir(), "never-synced")).Scan()

	assert.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanEmptyFolder(t *testing.T) {
	files, err := NewFileScanner(t.TempDir()).Scan()

	assert.NoError(t, err)
	assert.Empty(t, files)
}
