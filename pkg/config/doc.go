// Package config handles configuration management for dirsort.
//
// Configuration is layered, later layers winning:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. the user's config.toml (XDG config dir, or --config)
//  3. DIRSORT_* environment variables, "__" separating sections
//  4. explicit overrides, typically command-line flags
//
// The package also ships the built-in category table and exclusion lists
// used when the user has not provided their own.
package config
