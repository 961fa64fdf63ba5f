package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"syscall"
	"testing"

	"github.com/arthur-debert/dirsort/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	require.NotNil(t, fsys)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	content := []byte("hello world")

	require.NoError(t, fsys.WriteFile(testFile, content, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(content)), info.Size())

	got, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	nested := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, fsys.MkdirAll(nested, 0755))

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	assert.Equal(t, []string{"a", "test.txt"}, names)

	renamed := filepath.Join(nested, "moved.txt")
	require.NoError(t, fsys.Rename(testFile, renamed))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fsys.Remove(renamed))
}

func TestAferoFS_BasicOperations(t *testing.T) {
	fsys := NewMemory()

	require.NoError(t, fsys.MkdirAll("/src/sub", 0755))
	require.NoError(t, fsys.WriteFile("/src/one.txt", []byte("1"), 0644))

	entries, err := fsys.ReadDir("/src")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	info, err := fsys.Lstat("/src/sub")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = fsys.ReadFile("/src/sub")
	assert.Error(t, err, "reading a directory should fail")

	f, err := fsys.OpenFile("/src/two.txt", os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	require.NoError(t, err)
	_, err = f.Write([]byte("2"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := fsys.ReadFile("/src/two.txt")
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))
}

func TestMove(t *testing.T) {
	t.Run("renames_into_place", func(t *testing.T) {
		fsys := NewMemory()
		require.NoError(t, fsys.MkdirAll("/d/Images", 0755))
		require.NoError(t, fsys.WriteFile("/d/photo.jpg", []byte("jpg"), 0644))

		require.NoError(t, Move(fsys, "/d/photo.jpg", "/d/Images/photo.jpg"))

		got, err := fsys.ReadFile("/d/Images/photo.jpg")
		require.NoError(t, err)
		assert.Equal(t, "jpg", string(got))
		_, err = fsys.Stat("/d/photo.jpg")
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("refuses_to_replace_existing_destination", func(t *testing.T) {
		fsys := NewMemory()
		require.NoError(t, fsys.MkdirAll("/d/Images", 0755))
		require.NoError(t, fsys.WriteFile("/d/photo.jpg", []byte("new"), 0644))
		require.NoError(t, fsys.WriteFile("/d/Images/photo.jpg", []byte("old"), 0644))

		err := Move(fsys, "/d/photo.jpg", "/d/Images/photo.jpg")
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrExist))

		got, _ := fsys.ReadFile("/d/Images/photo.jpg")
		assert.Equal(t, "old", string(got), "existing destination must be untouched")
		_, err = fsys.Stat("/d/photo.jpg")
		assert.NoError(t, err, "source must stay in place")
	})

	t.Run("missing_source", func(t *testing.T) {
		fsys := NewMemory()
		require.NoError(t, fsys.MkdirAll("/d/Images", 0755))
		assert.Error(t, Move(fsys, "/d/gone.txt", "/d/Images/gone.txt"))
	})
}

// crossDeviceFS fails every rename the way rename(2) does across mounts
type crossDeviceFS struct {
	types.FS
}

func (c crossDeviceFS) Rename(oldpath, newpath string) error {
	return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
}

func TestMove_CrossDeviceFallsBackToCopy(t *testing.T) {
	fsys := crossDeviceFS{FS: NewMemory()}
	require.NoError(t, fsys.MkdirAll("/d/Docs", 0755))
	require.NoError(t, fsys.WriteFile("/d/notes.txt", []byte("some notes"), 0600))

	require.NoError(t, Move(fsys, "/d/notes.txt", "/d/Docs/notes.txt"))

	got, err := fsys.ReadFile("/d/Docs/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "some notes", string(got))

	_, err = fsys.Stat("/d/notes.txt")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "original should be removed after copy")
}

func TestIsCrossDevice(t *testing.T) {
	assert.True(t, isCrossDevice(&os.LinkError{Err: syscall.EXDEV}))
	assert.True(t, isCrossDevice(syscall.EXDEV))
	assert.False(t, isCrossDevice(&os.LinkError{Err: syscall.EACCES}))
	assert.False(t, isCrossDevice(errors.New("boom")))
}
