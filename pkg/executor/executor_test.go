// pkg/executor/executor_test.go
// TEST TYPE: Business Logic
// DEPENDENCIES: Memory FS, OS temp dirs for failure modes
// PURPOSE: Test collision naming, per-item failure accounting and progress reporting

package executor_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dirsort/pkg/errors"
	"github.com/arthur-debert/dirsort/pkg/executor"
	"github.com/arthur-debert/dirsort/pkg/filesystem"
	"github.com/arthur-debert/dirsort/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func move(sourceDir, name, category string) types.PlannedMove {
	return types.PlannedMove{
		FileName:       name,
		SourcePath:     filepath.Join(sourceDir, name),
		DestinationDir: filepath.Join(sourceDir, category),
		Category:       category,
	}
}

func TestUniqueName(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		file     string
		want     string
	}{
		{"free", nil, "photo.jpg", "photo.jpg"},
		{"first_collision", []string{"photo.jpg"}, "photo.jpg", "photo (1).jpg"},
		{"sequence", []string{"f.txt", "f (1).txt", "f (2).txt"}, "f.txt", "f (3).txt"},
		{"gap_is_reused", []string{"f.txt", "f (2).txt"}, "f.txt", "f (1).txt"},
		{"no_extension", []string{"Makefile"}, "Makefile", "Makefile (1)"},
		{"multi_dot", []string{"backup.tar.gz"}, "backup.tar.gz", "backup.tar (1).gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := filesystem.NewMemory()
			require.NoError(t, fsys.MkdirAll("/dst", 0755))
			for _, name := range tt.existing {
				require.NoError(t, fsys.WriteFile(filepath.Join("/dst", name), []byte("x"), 0644))
			}

			got, err := executor.UniqueName(fsys, "/dst", tt.file)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUniqueName_MissingDirectory(t *testing.T) {
	got, err := executor.UniqueName(filesystem.NewMemory(), "/not/yet", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", got)
}

func TestExecute_MovesIntoCategoryFolders(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/src", 0755))
	require.NoError(t, fsys.WriteFile("/src/photo.jpg", []byte("jpg"), 0644))
	require.NoError(t, fsys.WriteFile("/src/notes.txt", []byte("txt"), 0644))

	moves := []types.PlannedMove{move("/src", "photo.jpg", "Images"), move("/src", "notes.txt", "Docs")}
	before := append([]types.PlannedMove(nil), moves...)

	result := executor.Execute(moves, executor.Options{FileSystem: fsys})

	assert.Equal(t, 2, result.MovedCount)
	assert.Zero(t, result.ErrorCount)
	assert.Equal(t, before, moves, "the plan must not be written back")

	got, err := fsys.ReadFile("/src/Images/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpg", string(got))
	_, err = fsys.Stat("/src/Docs/notes.txt")
	assert.NoError(t, err)

	require.Len(t, result.Outcomes, 2)
	assert.Equal(t, "/src/Images/photo.jpg", result.Outcomes[0].FinalPath)
	assert.Empty(t, result.Failures())
}

func TestExecute_CollisionWithExistingFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/src/Images", 0755))
	require.NoError(t, fsys.WriteFile("/src/Images/photo.jpg", []byte("old"), 0644))
	require.NoError(t, fsys.WriteFile("/src/photo.jpg", []byte("new"), 0644))

	result := executor.Execute([]types.PlannedMove{move("/src", "photo.jpg", "Images")}, executor.Options{FileSystem: fsys})

	assert.Equal(t, 1, result.MovedCount)
	assert.Equal(t, "/src/Images/photo (1).jpg", result.Outcomes[0].FinalPath)

	old, _ := fsys.ReadFile("/src/Images/photo.jpg")
	moved, _ := fsys.ReadFile("/src/Images/photo (1).jpg")
	assert.Equal(t, "old", string(old))
	assert.Equal(t, "new", string(moved))
}

func TestExecute_UniquenessWithinBatch(t *testing.T) {
	fsys := filesystem.NewMemory()
	var moves []types.PlannedMove
	for _, dir := range []string{"/a", "/b", "/c"} {
		require.NoError(t, fsys.MkdirAll(dir, 0755))
		require.NoError(t, fsys.WriteFile(filepath.Join(dir, "f.txt"), []byte(dir), 0644))
		moves = append(moves, types.PlannedMove{
			FileName:       "f.txt",
			SourcePath:     filepath.Join(dir, "f.txt"),
			DestinationDir: "/sorted/Docs",
			Category:       "Docs",
		})
	}

	result := executor.Execute(moves, executor.Options{FileSystem: fsys})

	require.Equal(t, 3, result.MovedCount)
	seen := map[string]bool{}
	for _, o := range result.Outcomes {
		assert.False(t, seen[o.FinalPath], "duplicate final path %s", o.FinalPath)
		seen[o.FinalPath] = true
	}
	assert.True(t, seen["/sorted/Docs/f.txt"])
	assert.True(t, seen["/sorted/Docs/f (1).txt"])
	assert.True(t, seen["/sorted/Docs/f (2).txt"])
}

func TestExecute_PartialFailureAccounting(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/src", 0755))
	require.NoError(t, fsys.WriteFile("/src/a.txt", []byte("a"), 0644))
	require.NoError(t, fsys.WriteFile("/src/c.txt", []byte("c"), 0644))

	// b.txt and d.txt vanished between planning and execution
	moves := []types.PlannedMove{
		move("/src", "a.txt", "Docs"),
		move("/src", "b.txt", "Docs"),
		move("/src", "c.txt", "Docs"),
		move("/src", "d.txt", "Docs"),
	}
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	result := executor.Execute(moves, executor.Options{FileSystem: fsys, Logger: &logger})

	assert.Equal(t, len(moves), result.MovedCount+result.ErrorCount)
	assert.Equal(t, 2, result.MovedCount)
	assert.Equal(t, 2, result.ErrorCount)

	failures := result.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, "b.txt", failures[0].Move.FileName)
	assert.True(t, errors.IsErrorCode(failures[0].Err, errors.ErrMoveFailed))
	assert.Contains(t, buf.String(), `"level":"warn"`)

	_, err := fsys.Stat("/src/Docs/c.txt")
	assert.NoError(t, err, "items after a failure are still processed")
}

func TestExecute_Progress(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/src", 0755))
	require.NoError(t, fsys.WriteFile("/src/a.txt", []byte("a"), 0644))

	moves := []types.PlannedMove{
		move("/src", "a.txt", "Docs"),
		move("/src", "missing.txt", "Docs"),
		move("/src", "also-missing.txt", "Docs"),
	}
	type tick struct{ processed, total int }
	var ticks []tick

	executor.Execute(moves, executor.Options{
		FileSystem: fsys,
		OnProgress: func(processed, total int) {
			ticks = append(ticks, tick{processed, total})
		},
	})

	assert.Equal(t, []tick{{1, 3}, {2, 3}, {3, 3}}, ticks)
}

func TestExecute_Empty(t *testing.T) {
	called := false
	result := executor.Execute(nil, executor.Options{
		FileSystem: filesystem.NewMemory(),
		OnProgress: func(int, int) { called = true },
	})

	assert.Zero(t, result.MovedCount)
	assert.Zero(t, result.ErrorCount)
	assert.False(t, called)
}

// panickyFS panics when asked to create one specific directory
type panickyFS struct {
	types.FS
	poison string
}

func (p panickyFS) MkdirAll(path string, perm fs.FileMode) error {
	if path == p.poison {
		panic("disk on fire")
	}
	return p.FS.MkdirAll(path, perm)
}

func TestExecute_UnexpectedFailureDoesNotAbort(t *testing.T) {
	base := filesystem.NewMemory()
	require.NoError(t, base.MkdirAll("/src", 0755))
	require.NoError(t, base.WriteFile("/src/a.bin", []byte("a"), 0644))
	require.NoError(t, base.WriteFile("/src/b.txt", []byte("b"), 0644))
	fsys := panickyFS{FS: base, poison: "/src/Others"}

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	result := executor.Execute([]types.PlannedMove{
		move("/src", "a.bin", "Others"),
		move("/src", "b.txt", "Docs"),
	}, executor.Options{FileSystem: fsys, Logger: &logger})

	assert.Equal(t, 1, result.MovedCount)
	assert.Equal(t, 1, result.ErrorCount)
	assert.True(t, errors.IsErrorCode(result.Outcomes[0].Err, errors.ErrInternal))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "disk on fire")
}

func TestExecute_CategoryPathBlockedByFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Images"), []byte("not a folder"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("jpg"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("txt"), 0644))

	result := executor.Execute([]types.PlannedMove{
		move(dir, "photo.jpg", "Images"),
		move(dir, "notes.txt", "Docs"),
	}, executor.Options{})

	assert.Equal(t, 1, result.MovedCount)
	assert.Equal(t, 1, result.ErrorCount)
	assert.False(t, result.Outcomes[0].Succeeded())

	_, err := os.Stat(filepath.Join(dir, "photo.jpg"))
	assert.NoError(t, err, "failed item stays where it was")
	_, err = os.Stat(filepath.Join(dir, "Docs", "notes.txt"))
	assert.NoError(t, err)
}

func TestExecute_CreatesNestedDestination(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/src", 0755))
	require.NoError(t, fsys.WriteFile("/src/a.txt", []byte("a"), 0644))

	result := executor.Execute([]types.PlannedMove{{
		FileName:       "a.txt",
		SourcePath:     "/src/a.txt",
		DestinationDir: "/out/deep/Docs",
		Category:       "Docs",
	}}, executor.Options{FileSystem: fsys})

	assert.Equal(t, 1, result.MovedCount)
	info, err := fsys.Stat("/out/deep/Docs")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
