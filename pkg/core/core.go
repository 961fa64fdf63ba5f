package core

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dirsort/pkg/categories"
	"github.com/arthur-debert/dirsort/pkg/errors"
	"github.com/arthur-debert/dirsort/pkg/exclusions"
	"github.com/arthur-debert/dirsort/pkg/executor"
	"github.com/arthur-debert/dirsort/pkg/filesystem"
	"github.com/arthur-debert/dirsort/pkg/lock"
	"github.com/arthur-debert/dirsort/pkg/logging"
	"github.com/arthur-debert/dirsort/pkg/planner"
	"github.com/arthur-debert/dirsort/pkg/types"
)

// PlanOptions holds the inputs of PlanDirectory
type PlanOptions struct {
	SourceDir string

	// CategoriesPath is the category definition. When empty,
	// DefaultCategories (TOML) is parsed instead.
	CategoriesPath    string
	DefaultCategories []byte

	// ExclusionsPath is the exclusion definition. When empty,
	// DefaultExclusions (TOML) is parsed instead; both empty means no
	// exclusions.
	ExclusionsPath    string
	DefaultExclusions []byte

	CatchAll string
	Sorted   bool
	RunID    string

	FileSystem types.FS
	Logger     *zerolog.Logger
}

// ExecuteOptions holds the inputs of ExecutePlan
type ExecuteOptions struct {
	OnProgress types.ProgressFunc

	// Lock holds an advisory lock on the source directory during the batch.
	// It always works on the real filesystem, whatever FileSystem is.
	Lock bool

	FileSystem types.FS
	Logger     *zerolog.Logger
}

// LoadCategories loads the category table selected by opts
func LoadCategories(opts PlanOptions) (*categories.Table, error) {
	fsys := fileSystem(opts.FileSystem)

	if opts.CategoriesPath != "" {
		return categories.Load(fsys, opts.CategoriesPath, categories.LoadOptions{
			CatchAll: opts.CatchAll,
			Logger:   opts.Logger,
		})
	}
	if len(opts.DefaultCategories) == 0 {
		return nil, errors.New(errors.ErrConfigNotFound, "no category definition configured")
	}

	table, err := categories.LoadBytes(opts.DefaultCategories, categories.FormatTOML, opts.CatchAll)
	if err != nil {
		return nil, err
	}
	logger := logging.OrNop(opts.Logger)
	logger.Debug().Strs("categories", table.Names()).Msg("Using built-in categories")
	return table, nil
}

// LoadExclusions loads the exclusion set selected by opts. It never fails.
func LoadExclusions(opts PlanOptions) *exclusions.Set {
	if opts.ExclusionsPath != "" || len(opts.DefaultExclusions) == 0 {
		return exclusions.Load(fileSystem(opts.FileSystem), opts.ExclusionsPath, opts.Logger)
	}

	logger := logging.OrNop(opts.Logger)
	def, err := exclusions.Parse(opts.DefaultExclusions, categories.FormatTOML)
	if err != nil {
		logger.Warn().Err(err).Msg("Built-in exclusions are malformed, no exclusions applied")
		return exclusions.Empty()
	}
	return exclusions.NewSet(def.ExcludeFiles, def.ExcludeFolders)
}

// PlanDirectory loads the definitions and plans the organization of
// opts.SourceDir. It never returns a nil result; failures are reported with
// StatusError and a message.
func PlanDirectory(opts PlanOptions) *types.PlanResult {
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	// the planner adds the run field itself
	plannerLogger := opts.Logger
	base := logging.OrNop(opts.Logger).With().Str("run", runID).Logger()
	opts.Logger = &base
	logger := logging.GetLogger(base, "core")

	table, err := LoadCategories(opts)
	if err != nil {
		logger.Error().Err(err).Msg("Cannot load categories, nothing will be organized")
		return failed(err)
	}
	excl := LoadExclusions(opts)

	plan, err := planner.Plan(planner.Options{
		SourceDir:  opts.SourceDir,
		Categories: table,
		Exclusions: excl,
		Sorted:     opts.Sorted,
		RunID:      runID,
		FileSystem: opts.FileSystem,
		Logger:     plannerLogger,
	})
	if err != nil {
		return failed(err)
	}

	return &types.PlanResult{
		Status: plan.Status(),
		Plan:   plan,
	}
}

// ExecutePlan moves the planned files. The only error it returns is a
// failure to take the directory lock, in which case nothing was moved.
func ExecutePlan(plan *types.Plan, opts ExecuteOptions) (*types.ExecutionResult, error) {
	if plan == nil || len(plan.Moves) == 0 {
		return &types.ExecutionResult{Outcomes: []types.MoveOutcome{}}, nil
	}

	base := logging.OrNop(opts.Logger).With().Str("run", plan.RunID).Logger()
	logger := logging.GetLogger(base, "core")

	if opts.Lock {
		l, err := lock.Acquire(plan.SourceDir, &base)
		if err != nil {
			logger.Error().Err(err).Msg("Cannot lock source directory, nothing moved")
			return nil, err
		}
		defer func() { _ = l.Release() }()
		logger.Debug().Str("lock", l.Path()).Msg("Source directory locked")
	}

	result := executor.Execute(plan.Moves, executor.Options{
		FileSystem: opts.FileSystem,
		Logger:     opts.Logger,
		OnProgress: opts.OnProgress,
		RunID:      plan.RunID,
	})
	return result, nil
}

func failed(err error) *types.PlanResult {
	return &types.PlanResult{
		Status:  types.PlanStatusError,
		Message: err.Error(),
		Err:     err,
	}
}

func fileSystem(fsys types.FS) types.FS {
	if fsys == nil {
		return filesystem.NewOS()
	}
	return fsys
}
