package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrappers.h")

	require.NoError(t, WriteFile(path, "\nstruct Pair {\n};\n"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\nstruct Pair {\n};\n", string(content))
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "wrappers.h")

	require.NoError(t, WriteFile(path, "x"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))
}

func TestWriteFile_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), filePerm))

	err := WriteFile(filepath.Join(blocker, "sub", "wrappers.h"), "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")
}
