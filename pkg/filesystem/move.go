package filesystem

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/arthur-debert/dirsort/pkg/internal/hashutil"
	"github.com/arthur-debert/dirsort/pkg/types"
)

// Move relocates src to dst without ever replacing an existing dst.
//
// A rename is tried first. When the rename fails because src and dst live on
// different devices, the file is copied, verified and the original removed.
// The existence check and the rename are separate calls, so a file created at
// dst in between is still overwritten on platforms whose rename replaces.
func Move(fsys types.FS, src, dst string) error {
	if _, err := fsys.Lstat(dst); err == nil {
		return &fs.PathError{Op: "move", Path: dst, Err: fs.ErrExist}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	err := fsys.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}

	if err := copyVerified(fsys, src, dst); err != nil {
		return fmt.Errorf("cross-device copy: %w", err)
	}
	if err := fsys.Remove(src); err != nil {
		return fmt.Errorf("remove original after copy: %w", err)
	}
	return nil
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errors.Is(linkErr.Err, syscall.EXDEV)
	}
	return errors.Is(err, syscall.EXDEV)
}

// copyVerified streams src to a new dst, then checks the size and re-reads
// dst to compare its checksum with the source's. dst is created exclusively
// and removed again on any failure.
func copyVerified(fsys types.FS, src, dst string) (err error) {
	srcInfo, err := fsys.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := fsys.OpenFile(src, os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	closed := false
	defer func() {
		if !closed {
			_ = out.Close()
		}
		if err != nil {
			_ = fsys.Remove(dst)
		}
	}()

	srcHasher := sha256.New()
	written, err := io.Copy(out, io.TeeReader(in, srcHasher))
	if err != nil {
		return err
	}
	closed = true
	if err = out.Close(); err != nil {
		return err
	}

	if written != srcInfo.Size() {
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
	}
	dstSum, err := hashutil.FileChecksum(fsys, dst)
	if err != nil {
		return fmt.Errorf("verify copy: %w", err)
	}
	if srcSum := fmt.Sprintf("%s%x", hashutil.Prefix, srcHasher.Sum(nil)); srcSum != dstSum {
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}
	return nil
}
