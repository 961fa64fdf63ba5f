package hashutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dirsort/pkg/filesystem"
	"github.com/arthur-debert/dirsort/pkg/internal/hashutil"
)

func TestFileChecksum(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile("/a.txt", []byte("Hello, World!\n"), 0644))
	require.NoError(t, fs.WriteFile("/b.txt", []byte("Hello, World!\n"), 0644))
	require.NoError(t, fs.WriteFile("/c.txt", []byte("Goodbye\n"), 0644))

	a, err := hashutil.FileChecksum(fs, "/a.txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(a, hashutil.Prefix))
	assert.Len(t, a, len(hashutil.Prefix)+64)

	b, err := hashutil.FileChecksum(fs, "/b.txt")
	require.NoError(t, err)
	assert.Equal(t, a, b, "same content, same checksum")

	c, err := hashutil.FileChecksum(fs, "/c.txt")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	fromReader, err := hashutil.ReaderChecksum(strings.NewReader("Hello, World!\n"))
	require.NoError(t, err)
	assert.Equal(t, a, fromReader)

	_, err = hashutil.FileChecksum(fs, "/missing.txt")
	assert.Error(t, err)
}
