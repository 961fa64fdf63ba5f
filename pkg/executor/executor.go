package executor

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/dirsort/pkg/errors"
	"github.com/arthur-debert/dirsort/pkg/filesystem"
	"github.com/arthur-debert/dirsort/pkg/logging"
	"github.com/arthur-debert/dirsort/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultDirPerm is used when creating category folders
const DefaultDirPerm fs.FileMode = 0755

// Options configures Execute
type Options struct {
	FileSystem types.FS // Allow injecting a filesystem for testing
	Logger     *zerolog.Logger

	// OnProgress, when set, is called after every item with (processed, total)
	OnProgress types.ProgressFunc

	// RunID tags diagnostics so they can be matched with the plan
	RunID string

	DirPerm fs.FileMode
}

// Execute moves every planned file into its category folder, in order.
//
// It never returns an error: each failed item is logged, counted in
// ErrorCount and recorded in Outcomes, and the loop goes on. MovedCount plus
// ErrorCount always equals len(moves).
func Execute(moves []types.PlannedMove, opts Options) *types.ExecutionResult {
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	dirPerm := opts.DirPerm
	if dirPerm == 0 {
		dirPerm = DefaultDirPerm
	}
	logger := logging.GetLogger(logging.OrNop(opts.Logger), "executor")
	if opts.RunID != "" {
		logger = logger.With().Str("run", opts.RunID).Logger()
	}
	done := logging.LogOperationStart(logger, "execute")
	defer done()

	total := len(moves)
	result := &types.ExecutionResult{
		Outcomes: make([]types.MoveOutcome, 0, total),
	}

	for i, move := range moves {
		outcome := executeOne(fsys, move, dirPerm, logger.With().
			Int("item", i+1).
			Int("total", total).
			Str("file", move.FileName).
			Logger())

		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.Succeeded() {
			result.MovedCount++
		} else {
			result.ErrorCount++
		}

		if opts.OnProgress != nil {
			opts.OnProgress(i+1, total)
		}
	}

	logger.Info().
		Int("moved", result.MovedCount).
		Int("errors", result.ErrorCount).
		Msg("Execution finished")
	return result
}

// executeOne processes a single move. A panic is converted into an internal
// error for that item so the batch keeps going.
func executeOne(fsys types.FS, move types.PlannedMove, dirPerm fs.FileMode, logger zerolog.Logger) (outcome types.MoveOutcome) {
	outcome.Move = move

	defer func() {
		if r := recover(); r != nil {
			outcome.Err = errors.Newf(errors.ErrInternal, "unexpected failure processing %s: %v", move.FileName, r)
			logUnexpected(logger, outcome.Err)
		}
	}()

	finalName, err := UniqueName(fsys, move.DestinationDir, move.FileName)
	if err != nil {
		outcome.Err = errors.Wrapf(err, errors.ErrInternal, "cannot choose a destination name for %s", move.FileName)
		logUnexpected(logger, outcome.Err)
		return outcome
	}
	finalPath := filepath.Join(move.DestinationDir, finalName)

	logger.Info().
		Str("category", move.Category).
		Str("destination", filepath.Join(move.Category, finalName)).
		Msg("Moving file")

	if err := fsys.MkdirAll(move.DestinationDir, dirPerm); err != nil {
		outcome.Err = errors.Wrapf(err, errors.ErrDirCreate, "cannot create category folder %s", move.DestinationDir)
		logUnexpected(logger, outcome.Err)
		return outcome
	}

	if err := filesystem.Move(fsys, move.SourcePath, finalPath); err != nil {
		outcome.Err = errors.Wrapf(err, errors.ErrMoveFailed, "cannot move %s", move.FileName).
			WithDetail("destination", finalPath)
		logger.Warn().
			Err(err).
			Str("source", move.SourcePath).
			Str("destination", finalPath).
			Msg("Move failed (destination taken or permission denied?)")
		return outcome
	}

	outcome.FinalPath = finalPath
	logger.Debug().Str("destination", finalPath).Msg("Moved")
	return outcome
}

func logUnexpected(logger zerolog.Logger, err error) {
	logger.Error().
		Err(err).
		Str("code", string(errors.GetErrorCode(err))).
		Msg("Unexpected failure")
}
