package safefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build", "resources", "out.yml")

	require.NoError(t, WriteFile(path, []byte("name: test\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: test\n", string(data))
}

func TestWriteFileReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yml")
	require.NoError(t, WriteFile(path, []byte("old")))
	require.NoError(t, WriteFile(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files should be left behind")
}
