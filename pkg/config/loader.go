package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dirsort/pkg/errors"
	"github.com/arthur-debert/dirsort/pkg/paths"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "DIRSORT_"

// LoadOptions selects the layers merged by Load
type LoadOptions struct {
	// ConfigFile is an explicit config path. It must exist when set.
	ConfigFile string

	// Paths locates the conventional config.toml. Nil uses paths.New().
	Paths paths.Paths

	// Overrides are applied last, keyed by dotted name ("scan.sorted")
	Overrides map[string]interface{}

	// SkipEnv ignores DIRSORT_* variables
	SkipEnv bool
}

// Load merges defaults, the config file, the environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load built-in defaults")
	}

	// 2. Config file
	source, err := configFile(opts)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigMalformed, "failed to parse config file %s", source).
				WithDetail("path", source)
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigMalformed, "failed to decode configuration")
	}
	cfg.Source = source

	return &cfg, nil
}

// configFile returns the file to merge, or "" when the conventional file is absent
func configFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		path := paths.ExpandHome(opts.ConfigFile)
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigNotFound, "config file %s not found", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	p := opts.Paths
	if p == nil {
		p = paths.New()
	}
	path := p.ConfigFile()
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

// envKey maps DIRSORT_SCAN__SORTED to scan.sorted; a single underscore stays
// part of the key so DIRSORT_CATCH_ALL maps to catch_all.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
