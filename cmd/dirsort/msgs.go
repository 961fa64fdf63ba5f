package dirsort

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Sort the files of a directory into category folders"
	MsgPlanShort       = "Preview how a directory would be organized"
	MsgOrganizeShort   = "Move the files of a directory into category folders"
	MsgCategoriesShort = "List the category table in lookup order"
	MsgGenConfigShort  = "Print or write the default configuration files"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Prompts and status
	MsgConfirmOrganize     = "Move %d file(s)?"
	MsgProgressDescription = "Organizing"
	MsgVersionFormat       = "dirsort version %s\n  commit: %s\n  built:  %s\n"
	MsgLogFile             = "Log file: %s\n"
	MsgManWritten          = "Man pages written to %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrMoveFailed = "%d file(s) could not be moved"
	MsgErrNoCommand  = "no command specified"
	MsgErrConfirm    = "failed to read confirmation: %w"
	MsgErrGenConfig  = "failed to generate config: %w"
	MsgErrManPages   = "failed to generate man pages: %w"
	MsgErrCategories = "failed to load categories: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default $XDG_CONFIG_HOME/dirsort/config.toml)"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagCategories  = "Category definition file (.toml, .json, .yaml)"
	MsgFlagExclusions  = "Exclusion definition file (.toml, .json, .yaml)"
	MsgFlagCatchAll    = "Name of the category for unmatched files"
	MsgFlagSorted      = "Process entries in name order"
	MsgFlagYes         = "Do not ask for confirmation"
	MsgFlagDryRun      = "Show the plan and stop"
	MsgFlagNoLock      = "Do not lock the directory while moving files"
	MsgFlagShowIgnored = "Also list the entries that will be left alone"
	MsgFlagWrite       = "Write the files to the config directory"
	MsgFlagManDir      = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/organize-long.txt
	msgOrganizeLongRaw string
	MsgOrganizeLong    = strings.TrimSpace(msgOrganizeLongRaw)

	//go:embed msgs/organize-example.txt
	msgOrganizeExampleRaw string
	MsgOrganizeExample    = strings.TrimRight(msgOrganizeExampleRaw, "\n")

	//go:embed msgs/plan-example.txt
	msgPlanExampleRaw string
	MsgPlanExample    = strings.TrimRight(msgPlanExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)
)
