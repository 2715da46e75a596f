package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPack represents a test pack with its directory structure
type TestPack struct {
	Root string // Packs root directory
	Name string // Pack name
	Dir  string // Full path to pack directory
}

// SetupTestRoot creates an empty packs root in a temp directory
func SetupTestRoot(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "packs")
	require.NoError(t, os.MkdirAll(root, 0755))
	return root
}

// AddTestPack creates a pack directory below root
func AddTestPack(t *testing.T, root, packName string) *TestPack {
	t.Helper()

	packDir := filepath.Join(root, packName)
	require.NoError(t, os.MkdirAll(packDir, 0755))

	return &TestPack{
		Root: root,
		Name: packName,
		Dir:  packDir,
	}
}

// AddFile adds a file to the test pack, creating parent directories
func (tp *TestPack) AddFile(t *testing.T, filename, content string) string {
	t.Helper()

	path := filepath.Join(tp.Dir, filename)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// AddDir adds a directory to the test pack
func (tp *TestPack) AddDir(t *testing.T, dirname string) string {
	t.Helper()

	path := filepath.Join(tp.Dir, dirname)
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}
