package dirsort

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dirsort/internal/version"
	"github.com/arthur-debert/dirsort/pkg/config"
	"github.com/arthur-debert/dirsort/pkg/logging"
	"github.com/arthur-debert/dirsort/pkg/paths"
	"github.com/arthur-debert/dirsort/pkg/ui/display"
)

// annotationLogFile marks commands that write a per-run log file
const annotationLogFile = "dirsort/logfile"

// app carries the state shared by all commands of one invocation
type app struct {
	verbosity  int
	configFile string
	noColor    bool

	paths paths.Paths
	cfg   *config.Config
	log   *logging.Setup
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "dirsort",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddCommand(newPlanCmd(a))
	rootCmd.AddCommand(newOrganizeCmd(a))
	rootCmd.AddCommand(newCategoriesCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

// setup loads the configuration and builds the logger for cmd
func (a *app) setup(cmd *cobra.Command) error {
	if os.Getenv("NO_COLOR") != "" {
		a.noColor = true
	}
	a.paths = paths.New()

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Paths:      a.paths,
		Overrides:  flagOverrides(cmd),
	})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg

	logDir := ""
	if cfg.Log.File && cmd.Annotations[annotationLogFile] == "true" {
		logDir = cfg.LogDir(a.paths)
	}
	a.log = logging.SetupLogger(logging.Options{
		Verbosity: a.verbosity,
		Console:   cmd.ErrOrStderr(),
		NoColor:   a.noColor,
		LogDir:    logDir,
	})

	a.log.Logger.Debug().
		Str("command", cmd.Name()).
		Str("config", cfg.Source).
		Msg("Command started")
	if a.log.LogFile != "" && a.verbosity > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgLogFile, a.log.LogFile)
	}
	return nil
}

// logger returns the invocation logger, disabled before setup
func (a *app) logger() *zerolog.Logger {
	if a.log == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return &a.log.Logger
}

func (a *app) printer(cmd *cobra.Command) *display.Printer {
	return display.NewPrinter(cmd.OutOrStdout(), a.noColor)
}

// withLog closes the log file once run returns
func (a *app) withLog(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() {
			if a.log != nil {
				_ = a.log.Close()
			}
		}()
		return run(cmd, args)
	}
}

// flagOverrides maps changed command-line flags to configuration keys
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()

	strFlags := map[string]string{
		"categories": "categories.path",
		"exclusions": "exclusions.path",
		"catch-all":  "catch_all",
	}
	for flag, key := range strFlags {
		if flags.Lookup(flag) != nil && flags.Changed(flag) {
			v, _ := flags.GetString(flag)
			overrides[key] = v
		}
	}
	if flags.Lookup("sorted") != nil && flags.Changed("sorted") {
		v, _ := flags.GetBool("sorted")
		overrides["scan.sorted"] = v
	}
	if flags.Lookup("no-lock") != nil && flags.Changed("no-lock") {
		v, _ := flags.GetBool("no-lock")
		overrides["execute.lock"] = !v
	}
	return overrides
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(dirsort completion bash)

Zsh:
  $ dirsort completion zsh > "${fpath[1]}/_dirsort"

Fish:
  $ dirsort completion fish | source

PowerShell:
  PS> dirsort completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd(root *cobra.Command) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrManPages, err)
			}
			header := &doc.GenManHeader{
				Title:   "DIRSORT",
				Section: "1",
			}
			if err := doc.GenManTree(root, header, dir); err != nil {
				return fmt.Errorf(MsgErrManPages, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)
	return cmd
}
