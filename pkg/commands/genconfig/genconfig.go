package genconfig

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dirsort/pkg/config"
	"github.com/arthur-debert/dirsort/pkg/errors"
	"github.com/arthur-debert/dirsort/pkg/filesystem"
	"github.com/arthur-debert/dirsort/pkg/logging"
	"github.com/arthur-debert/dirsort/pkg/paths"
	"github.com/arthur-debert/dirsort/pkg/types"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// ConfigDir receives the files in write mode
	ConfigDir string
	Write     bool

	FileSystem types.FS
	Logger     *zerolog.Logger
}

// GenConfig outputs or writes the default config, categories and exclusions.
// Existing files are never overwritten.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger(logging.OrNop(opts.Logger), "commands.genconfig")
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	result := &types.GenConfigResult{
		Files: []types.GeneratedFile{
			{Name: paths.ConfigFileName, Content: config.DefaultConfigContent()},
			{Name: paths.CategoriesFileName, Content: string(config.DefaultCategories())},
			{Name: paths.ExclusionsFileName, Content: string(config.DefaultExclusions())},
		},
		FilesWritten: []string{},
		FilesSkipped: []string{},
	}
	for i := range result.Files {
		result.Files[i].Path = filepath.Join(opts.ConfigDir, result.Files[i].Name)
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	if opts.ConfigDir == "" {
		return result, errors.New(errors.ErrInvalidInput, "no config directory to write to")
	}

	logger.Info().Str("dir", opts.ConfigDir).Msg("Writing config files")
	if err := fsys.MkdirAll(opts.ConfigDir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", opts.ConfigDir)
	}

	for _, f := range result.Files {
		if _, err := fsys.Stat(f.Path); err == nil {
			logger.Warn().Str("path", f.Path).Msg("Config file already exists, skipping")
			result.FilesSkipped = append(result.FilesSkipped, f.Path)
			continue
		}

		if err := fsys.WriteFile(f.Path, []byte(f.Content), 0644); err != nil {
			return result, errors.Wrapf(err, errors.ErrInternal, "failed to write config to %s", f.Path)
		}

		logger.Info().Str("path", f.Path).Msg("Written config file")
		result.FilesWritten = append(result.FilesWritten, f.Path)
	}

	return result, nil
}
