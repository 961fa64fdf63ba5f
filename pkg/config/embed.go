package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

//go:embed embedded/categories.toml
var defaultCategories []byte

//go:embed embedded/exclusions.toml
var defaultExclusions []byte

// DefaultConfigContent returns the commented default config.toml
func DefaultConfigContent() string {
	return string(defaultConfig)
}

// DefaultCategories returns the built-in category table (TOML)
func DefaultCategories() []byte {
	return defaultCategories
}

// DefaultExclusions returns the built-in exclusion lists (TOML)
func DefaultExclusions() []byte {
	return defaultExclusions
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
