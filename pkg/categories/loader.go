package categories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dirsort/pkg/errors"
	"github.com/arthur-debert/dirsort/pkg/logging"
	"github.com/arthur-debert/dirsort/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Format identifies the syntax of a category definition
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the format from the file extension. Anything that is
// neither .toml nor .json is read as YAML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// LoadOptions configures Load
type LoadOptions struct {
	// CatchAll names the catch-all category. Empty selects DefaultCatchAll.
	CatchAll string

	Logger *zerolog.Logger
}

// Load reads and parses the category definition at path.
//
// It fails with ErrConfigNotFound when the file cannot be read and with
// ErrConfigMalformed when it does not parse into a category mapping. Callers
// must treat both as fatal.
func Load(fsys types.FS, path string, opts LoadOptions) (*Table, error) {
	logger := logging.GetLogger(logging.OrNop(opts.Logger), "categories")

	data, err := fsys.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Category definition not found")
		return nil, errors.Wrapf(err, errors.ErrConfigNotFound, "cannot read category definition %s", path).
			WithDetail("path", path)
	}

	table, err := LoadBytes(data, FormatForPath(path), opts.CatchAll)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Category definition is malformed")
		if e, ok := err.(*errors.Error); ok {
			return nil, e.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Info().
		Str("path", path).
		Int("categories", table.Len()).
		Str("catchAll", table.CatchAll()).
		Msg("Categories loaded")
	return table, nil
}

// LoadBytes parses an in-memory category definition
func LoadBytes(data []byte, format Format, catchAll string) (*Table, error) {
	var (
		cats []Category
		err  error
	)
	switch format {
	case FormatTOML:
		cats, err = parseTOML(data)
	case FormatJSON:
		cats, err = parseJSON(data)
	default:
		cats, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}
	return NewTable(cats, catchAll), nil
}

type tomlDefinition struct {
	Category []tomlCategory `toml:"category"`
}

type tomlCategory struct {
	Name       string   `toml:"name"`
	Extensions []string `toml:"extensions"`
}

func parseTOML(data []byte) ([]Category, error) {
	var def tomlDefinition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigMalformed, "invalid TOML category definition")
	}

	seen := make(map[string]bool, len(def.Category))
	cats := make([]Category, 0, len(def.Category))
	for i, c := range def.Category {
		if strings.TrimSpace(c.Name) == "" {
			return nil, errors.Newf(errors.ErrConfigMalformed, "category #%d has no name", i+1)
		}
		if seen[c.Name] {
			return nil, errors.Newf(errors.ErrConfigMalformed, "category %q is defined more than once", c.Name)
		}
		seen[c.Name] = true
		cats = append(cats, Category{Name: c.Name, Extensions: c.Extensions})
	}
	return cats, nil
}

// parseJSON reads the top-level object token by token so the key order
// survives; decoding into a Go map would lose it.
func parseJSON(data []byte) ([]Category, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, errors.New(errors.ErrConfigMalformed, "category definition is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigMalformed, "invalid JSON category definition")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New(errors.ErrConfigMalformed,
			"category definition must be an object of name to extensions")
	}

	seen := make(map[string]bool)
	var cats []Category
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigMalformed, "invalid JSON category definition")
		}
		name, _ := tok.(string)
		if strings.TrimSpace(name) == "" {
			return nil, errors.Newf(errors.ErrConfigMalformed, "invalid category name at offset %d", dec.InputOffset())
		}
		if seen[name] {
			return nil, errors.Newf(errors.ErrConfigMalformed, "category %q is defined more than once", name)
		}
		seen[name] = true

		var exts []string
		if err := dec.Decode(&exts); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigMalformed,
				fmt.Sprintf("extensions of category %q must be a list of strings", name))
		}
		cats = append(cats, Category{Name: name, Extensions: exts})
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigMalformed, "invalid JSON category definition")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrConfigMalformed, "unexpected data after the category definition")
	}
	return cats, nil
}

// parseYAML walks the document node by node so the mapping order survives;
// decoding into a Go map would lose it.
func parseYAML(data []byte) ([]Category, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigMalformed, "invalid category definition")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New(errors.ErrConfigMalformed, "category definition is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrConfigMalformed,
			"category definition must be a mapping of name to extensions (line %d)", root.Line)
	}

	seen := make(map[string]bool, len(root.Content)/2)
	cats := make([]Category, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || strings.TrimSpace(key.Value) == "" {
			return nil, errors.Newf(errors.ErrConfigMalformed, "invalid category name at line %d", key.Line)
		}
		if seen[key.Value] {
			return nil, errors.Newf(errors.ErrConfigMalformed, "category %q is defined more than once", key.Value)
		}
		seen[key.Value] = true

		var exts []string
		if err := value.Decode(&exts); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigMalformed,
				fmt.Sprintf("extensions of category %q must be a list of strings", key.Value))
		}
		cats = append(cats, Category{Name: key.Value, Extensions: exts})
	}
	return cats, nil
}
