package config

import (
	"github.com/arthur-debert/dirsort/pkg/paths"
	"github.com/arthur-debert/dirsort/pkg/types"
)

// Config is dirsort's resolved application configuration
type Config struct {
	CatchAll   string           `koanf:"catch_all"`
	Categories DefinitionConfig `koanf:"categories"`
	Exclusions DefinitionConfig `koanf:"exclusions"`
	Scan       ScanConfig       `koanf:"scan"`
	Execute    ExecuteConfig    `koanf:"execute"`
	Log        LogConfig        `koanf:"log"`

	// Source is the config file that was merged, empty when none was found
	Source string `koanf:"-"`
}

// DefinitionConfig points at a category or exclusion definition file
type DefinitionConfig struct {
	Path string `koanf:"path"`
}

// ScanConfig controls how the source directory is listed
type ScanConfig struct {
	Sorted bool `koanf:"sorted"`
}

// ExecuteConfig controls the move phase
type ExecuteConfig struct {
	Lock bool `koanf:"lock"`
}

// LogConfig controls the per-run log file
type LogConfig struct {
	File bool   `koanf:"file"`
	Dir  string `koanf:"dir"`
}

// CategoriesPath returns the category definition to load. An explicit path
// wins, then categories.toml in the config directory. An empty result means
// the built-in table from DefaultCategories applies.
func (c *Config) CategoriesPath(fsys types.FS, p paths.Paths) string {
	return resolveDefinition(fsys, c.Categories.Path, p.CategoriesFile())
}

// ExclusionsPath is CategoriesPath for the exclusion definition
func (c *Config) ExclusionsPath(fsys types.FS, p paths.Paths) string {
	return resolveDefinition(fsys, c.Exclusions.Path, p.ExclusionsFile())
}

// LogDir returns the directory for per-run log files
func (c *Config) LogDir(p paths.Paths) string {
	if c.Log.Dir != "" {
		return paths.ExpandHome(c.Log.Dir)
	}
	return p.LogDir()
}

func resolveDefinition(fsys types.FS, explicit, conventional string) string {
	if explicit != "" {
		return paths.ExpandHome(explicit)
	}
	if _, err := fsys.Stat(conventional); err == nil {
		return conventional
	}
	return ""
}
