package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for dirsort
	EnvConfigDir = "DIRSORT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for dirsort
	EnvStateDir = "DIRSORT_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// File and directory names under the dirsort directories
const (
	AppDirName         = "dirsort"
	ConfigFileName     = "config.toml"
	CategoriesFileName = "categories.toml"
	ExclusionsFileName = "exclusions.toml"
	LogsDirName        = "logs"
)

// Paths provides the locations of dirsort's own files
type Paths interface {
	ConfigDir() string
	StateDir() string
	LogDir() string
	ConfigFile() string
	CategoriesFile() string
	ExclusionsFile() string
}

type paths struct {
	configDir string
	stateDir  string
}

// New resolves the directories from the environment and XDG defaults
func New() Paths {
	p := &paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) StateDir() string {
	return p.stateDir
}

func (p *paths) LogDir() string {
	return filepath.Join(p.stateDir, LogsDirName)
}

func (p *paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

func (p *paths) CategoriesFile() string {
	return filepath.Join(p.configDir, CategoriesFileName)
}

func (p *paths) ExclusionsFile() string {
	return filepath.Join(p.configDir, ExclusionsFileName)
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
