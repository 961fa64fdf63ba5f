// Package lock serializes dirsort runs on the same source directory.
package lock

import (
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dirsort/pkg/errors"
	"github.com/arthur-debert/dirsort/pkg/logging"
)

// FileName is created inside the locked directory and stays there after
// release. The leading dot keeps the planner from ever moving it.
const FileName = ".dirsort.lock"

// Lock is a held advisory lock on a directory
type Lock struct {
	path   string
	flock  *flock.Flock
	logger zerolog.Logger
}

// Acquire takes the lock on dir without blocking. It fails with ErrLocked
// when another process holds it.
func Acquire(dir string, logger *zerolog.Logger) (*Lock, error) {
	path := filepath.Join(dir, FileName)
	log := logging.GetLogger(logging.OrNop(logger), "lock").With().Str("lock", path).Logger()

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLocked, "cannot lock %s", dir).WithDetail("path", dir)
	}
	if !ok {
		log.Warn().Msg("Directory is locked by another dirsort run")
		return nil, errors.Newf(errors.ErrLocked, "%s is being organized by another dirsort run", dir).
			WithDetail("path", dir)
	}

	log.Debug().Msg("Lock acquired")
	return &Lock{path: path, flock: fl, logger: log}, nil
}

// Path returns the lock file location
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks the lock file and leaves it in place so every run locks
// the same inode. Safe to call on nil.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	if err := l.flock.Unlock(); err != nil {
		l.logger.Warn().Err(err).Msg("Failed to release lock")
		return err
	}
	l.logger.Debug().Msg("Lock released")
	return nil
}
