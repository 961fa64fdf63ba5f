package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dirsort/pkg/types"
)

// Prefix tags every checksum with its algorithm
const Prefix = "sha256:"

// FileChecksum calculates the SHA256 checksum of a file on fsys
func FileChecksum(fsys types.FS, path string) (string, error) {
	file, err := fsys.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	return ReaderChecksum(file)
}

// ReaderChecksum calculates the SHA256 checksum of everything r yields
func ReaderChecksum(r io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%x", Prefix, hash.Sum(nil)), nil
}
