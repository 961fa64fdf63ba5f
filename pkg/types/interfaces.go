package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for dirsort operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// ReadDir lists the immediate children of name in the order the
	// underlying filesystem yields them. Callers must not assume sorting.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

// File is the subset of an open file handle needed to stream a copy
type File interface {
	io.Reader
	io.Writer
	io.Closer
}

// ProgressFunc receives (itemsProcessed, totalItems) after each executed move
type ProgressFunc func(processed, total int)
