// Package filesystem provides filesystem implementations for dirsort.
//
// This package contains implementations of the types.FS interface (the
// standard OS filesystem and an afero-backed one used by tests) and Move,
// the rename-or-copy primitive the executor relies on.
package filesystem
