package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/nvy/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, ".env")
	testContent := []byte("APP_ENV=default\n")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, ".env", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	entries, err := fsys.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".env", entries[0].Name())

	_, err = fsys.ReadFile(root)
	assert.Error(t, err, "reading a directory should fail")

	require.NoError(t, fsys.Remove(testFile))
	_, err = fsys.Stat(testFile)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	require.NotNil(t, fsys)
	exerciseFS(t, fsys, t.TempDir())
}

func TestNewAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/project", 0755))
	exerciseFS(t, NewAferoFS(mem), "/project")
}

func TestNewMemoryFS_MissingFile(t *testing.T) {
	fsys := NewMemoryFS()
	_, err := fsys.ReadFile("/nope/.env")
	assert.True(t, os.IsNotExist(err))
}
