package executor

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dirsort/pkg/types"
)

// UniqueName returns name unchanged when dir/name is free, otherwise the
// first free "stem (n)ext" for n = 1, 2, ... A dangling link counts as taken.
func UniqueName(fsys types.FS, dir, name string) (string, error) {
	taken, err := exists(fsys, filepath.Join(dir, name))
	if err != nil || !taken {
		return name, err
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, counter, ext)
		taken, err := exists(fsys, filepath.Join(dir, candidate))
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

func exists(fsys types.FS, path string) (bool, error) {
	_, err := fsys.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
