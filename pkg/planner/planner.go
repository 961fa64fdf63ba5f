package planner

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dirsort/pkg/categories"
	"github.com/arthur-debert/dirsort/pkg/errors"
	"github.com/arthur-debert/dirsort/pkg/exclusions"
	"github.com/arthur-debert/dirsort/pkg/filesystem"
	"github.com/arthur-debert/dirsort/pkg/logging"
	"github.com/arthur-debert/dirsort/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HiddenPrefix marks entries the planner never moves
const HiddenPrefix = "."

// Options holds the inputs of a planning run
type Options struct {
	SourceDir  string
	Categories *categories.Table

	// Exclusions may be nil, meaning nothing is excluded
	Exclusions *exclusions.Set

	// Sorted processes entries by name instead of directory order
	Sorted bool

	// RunID tags the plan and its diagnostics. Generated when empty.
	RunID string

	FileSystem types.FS // Allow injecting a filesystem for testing
	Logger     *zerolog.Logger
}

// Plan scans the immediate children of opts.SourceDir and returns the moves
// that would organize it. It fails with ErrSourceNotFound when SourceDir is
// missing, is not a directory or cannot be listed; no partial plan is
// returned in that case.
func Plan(opts Options) (*types.Plan, error) {
	if opts.Categories == nil {
		return nil, errors.New(errors.ErrInvalidInput, "planning requires a category table")
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := logging.GetLogger(logging.OrNop(opts.Logger), "planner").
		With().Str("run", runID).Logger()
	done := logging.LogOperationStart(logger, "plan")
	defer done()

	sourceDir := filepath.Clean(opts.SourceDir)
	info, err := fsys.Stat(sourceDir)
	if err != nil || !info.IsDir() {
		logger.Error().Err(err).Str("source", sourceDir).Msg("Source directory does not exist")
		return nil, errors.Wrapf(sourceErr(err), errors.ErrSourceNotFound, "source directory not found: %s", sourceDir).
			WithDetail("path", sourceDir)
	}

	entries, err := fsys.ReadDir(sourceDir)
	if err != nil {
		logger.Error().Err(err).Str("source", sourceDir).Msg("Cannot list source directory")
		return nil, errors.Wrapf(err, errors.ErrSourceNotFound, "cannot list source directory: %s", sourceDir).
			WithDetail("path", sourceDir)
	}
	if opts.Sorted {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name() < entries[j].Name()
		})
	}

	logger.Info().Str("source", sourceDir).Int("entries", len(entries)).Msg("Analyzing source directory")

	p := &planBuilder{
		plan: &types.Plan{
			RunID:     runID,
			SourceDir: sourceDir,
			Moves:     []types.PlannedMove{},
			Ignored:   []types.IgnoredEntry{},
		},
		table:      opts.Categories,
		exclusions: opts.Exclusions,
		fsys:       fsys,
		logger:     logger,
	}
	for _, entry := range entries {
		p.visit(entry)
	}

	if len(p.plan.Moves) == 0 {
		logger.Info().Int("ignored", p.plan.IgnoredCount()).Msg("No eligible files found")
	} else {
		logger.Info().
			Int("planned", len(p.plan.Moves)).
			Int("ignored", p.plan.IgnoredCount()).
			Msg("Plan ready")
	}
	return p.plan, nil
}

// sourceErr keeps a cause on the error even when Stat succeeded on a non-directory
func sourceErr(err error) error {
	if err != nil {
		return err
	}
	return fs.ErrInvalid
}

type planBuilder struct {
	plan       *types.Plan
	table      *categories.Table
	exclusions *exclusions.Set
	fsys       types.FS
	logger     zerolog.Logger
}

func (p *planBuilder) visit(entry fs.DirEntry) {
	name := entry.Name()
	path := filepath.Join(p.plan.SourceDir, name)

	if p.exclusions.ExcludesFile(name) {
		p.ignore(name, types.IgnoreExcludedFile)
		return
	}

	// Stat follows links, so a link is judged by what it points at and a
	// broken link fails here and falls through to "not regular".
	info, statErr := p.fsys.Stat(path)
	if statErr == nil && info.IsDir() {
		switch {
		case p.exclusions.ExcludesFolder(name):
			p.ignore(name, types.IgnoreExcludedFolder)
		case p.table.Has(name):
			p.ignore(name, types.IgnoreCategoryFolder)
		default:
			p.ignore(name, types.IgnoreDirectory)
		}
		return
	}

	if strings.HasPrefix(name, HiddenPrefix) {
		p.ignore(name, types.IgnoreHidden)
		return
	}

	if statErr != nil || !info.Mode().IsRegular() {
		if statErr != nil {
			p.logger.Debug().Err(statErr).Str("entry", name).Msg("Cannot stat entry")
		}
		p.ignore(name, types.IgnoreNotRegular)
		return
	}

	category := p.table.ClassifyFile(name)
	move := types.PlannedMove{
		FileName:       name,
		SourcePath:     path,
		DestinationDir: filepath.Join(p.plan.SourceDir, category),
		Category:       category,
	}
	p.plan.Moves = append(p.plan.Moves, move)
	p.logger.Info().
		Str("file", name).
		Str("category", category).
		Msg("Planned move")
}

func (p *planBuilder) ignore(name string, reason types.IgnoreReason) {
	p.plan.Ignored = append(p.plan.Ignored, types.IgnoredEntry{Name: name, Reason: reason})
	p.logger.Info().
		Str("entry", name).
		Str("reason", string(reason)).
		Msg("Ignoring entry")
}
