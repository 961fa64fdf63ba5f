package lock

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dirsort/pkg/errors"
)

func TestAcquire(t *testing.T) {
	t.Run("acquire_and_release", func(t *testing.T) {
		dir := t.TempDir()

		l, err := Acquire(dir, nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, FileName), l.Path())
		assert.FileExists(t, l.Path())

		require.NoError(t, l.Release())
		assert.FileExists(t, filepath.Join(dir, FileName), "lock file stays after release")
	})

	t.Run("second_acquire_fails", func(t *testing.T) {
		dir := t.TempDir()

		first, err := Acquire(dir, nil)
		require.NoError(t, err)
		defer func() { _ = first.Release() }()

		_, err = Acquire(dir, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrLocked))
	})

	t.Run("reacquire_after_release", func(t *testing.T) {
		dir := t.TempDir()

		first, err := Acquire(dir, nil)
		require.NoError(t, err)
		require.NoError(t, first.Release())

		second, err := Acquire(dir, nil)
		require.NoError(t, err)

		_, err = Acquire(dir, nil)
		require.Error(t, err, "the reused lock file still excludes other runs")
		assert.True(t, errors.IsErrorCode(err, errors.ErrLocked))
		assert.NoError(t, second.Release())
	})

	t.Run("missing_directory", func(t *testing.T) {
		_, err := Acquire(filepath.Join(t.TempDir(), "gone"), nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrLocked))
	})

	t.Run("release_nil", func(t *testing.T) {
		var l *Lock
		assert.NoError(t, l.Release())
	})
}
