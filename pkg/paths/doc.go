// Package paths resolves where dirsort keeps its own files.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/dirsort (config.toml, categories and exclusion definitions)
//   - State: $XDG_STATE_HOME/dirsort/logs (one log file per run)
//
// # Environment Variables
//
//   - DIRSORT_CONFIG_DIR: Override the config directory
//   - DIRSORT_STATE_DIR: Override the state directory
package paths
