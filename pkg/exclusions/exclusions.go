// Package exclusions loads the optional lists of file and folder names the
// planner must leave alone. A missing or unreadable definition is never an
// error: it yields an empty set and a warning.
package exclusions

import (
	"encoding/json"
	"strings"

	"github.com/arthur-debert/dirsort/pkg/categories"
	"github.com/arthur-debert/dirsort/pkg/logging"
	"github.com/arthur-debert/dirsort/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Definition is the on-disk shape of an exclusion file
type Definition struct {
	ExcludeFiles   []string `json:"exclude_files" yaml:"exclude_files" toml:"exclude_files"`
	ExcludeFolders []string `json:"exclude_folders" yaml:"exclude_folders" toml:"exclude_folders"`
}

// Set holds lower-cased excluded names for case-insensitive matching
type Set struct {
	files   map[string]struct{}
	folders map[string]struct{}
}

// Empty returns a set that excludes nothing
func Empty() *Set {
	return &Set{
		files:   map[string]struct{}{},
		folders: map[string]struct{}{},
	}
}

// NewSet builds a set from raw name lists
func NewSet(files, folders []string) *Set {
	s := Empty()
	for _, f := range files {
		if key := normalize(f); key != "" {
			s.files[key] = struct{}{}
		}
	}
	for _, f := range folders {
		if key := normalize(f); key != "" {
			s.folders[key] = struct{}{}
		}
	}
	return s
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ExcludesFile reports whether name is in the excluded-files list
func (s *Set) ExcludesFile(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.files[strings.ToLower(name)]
	return ok
}

// ExcludesFolder reports whether name is in the excluded-folders list
func (s *Set) ExcludesFolder(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.folders[strings.ToLower(name)]
	return ok
}

// Len returns the number of excluded file and folder names
func (s *Set) Len() (files, folders int) {
	if s == nil {
		return 0, 0
	}
	return len(s.files), len(s.folders)
}

// Load reads the exclusion definition at path. It never fails: a missing or
// malformed definition is logged as a warning and an empty set returned.
func Load(fsys types.FS, path string, logger *zerolog.Logger) *Set {
	log := logging.GetLogger(logging.OrNop(logger), "exclusions")

	if path == "" {
		log.Debug().Msg("No exclusion definition configured")
		return Empty()
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Exclusion definition not found, no exclusions applied")
		return Empty()
	}

	def, err := Parse(data, categories.FormatForPath(path))
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Exclusion definition is malformed, no exclusions applied")
		return Empty()
	}

	set := NewSet(def.ExcludeFiles, def.ExcludeFolders)
	files, folders := set.Len()
	log.Info().
		Str("path", path).
		Int("files", files).
		Int("folders", folders).
		Msg("Exclusions loaded")
	return set
}

// Parse decodes an exclusion definition in the given format
func Parse(data []byte, format categories.Format) (*Definition, error) {
	var def Definition
	var err error
	switch format {
	case categories.FormatTOML:
		err = toml.Unmarshal(data, &def)
	case categories.FormatJSON:
		err = json.Unmarshal(data, &def)
	default:
		err = yaml.Unmarshal(data, &def)
	}
	if err != nil {
		return nil, err
	}
	return &def, nil
}
