package dirsort

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dirsort/pkg/commands/genconfig"
	"github.com/arthur-debert/dirsort/pkg/config"
	"github.com/arthur-debert/dirsort/pkg/core"
	"github.com/arthur-debert/dirsort/pkg/errors"
	"github.com/arthur-debert/dirsort/pkg/filesystem"
	"github.com/arthur-debert/dirsort/pkg/paths"
	"github.com/arthur-debert/dirsort/pkg/types"
	"github.com/arthur-debert/dirsort/pkg/ui/confirmations"
	"github.com/arthur-debert/dirsort/pkg/ui/progress"
)

func newPlanCmd(a *app) *cobra.Command {
	var showIgnored bool

	cmd := &cobra.Command{
		Use:         "plan <dir>",
		Short:       MsgPlanShort,
		Example:     MsgPlanExample,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationLogFile: "true"},
	}
	cmd.RunE = a.withLog(func(cmd *cobra.Command, args []string) error {
		result := core.PlanDirectory(a.planOptions(args[0]))
		if result.Status == types.PlanStatusError {
			return result.Err
		}

		printer := a.printer(cmd)
		printer.Plan(result.Plan)
		if showIgnored {
			printer.Ignored(result.Plan)
		}
		return nil
	})

	addPlanningFlags(cmd)
	cmd.Flags().BoolVar(&showIgnored, "show-ignored", false, MsgFlagShowIgnored)
	return cmd
}

func newOrganizeCmd(a *app) *cobra.Command {
	var (
		yes    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:         "organize <dir>",
		Short:       MsgOrganizeShort,
		Long:        MsgOrganizeLong,
		Example:     MsgOrganizeExample,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationLogFile: "true"},
	}
	cmd.RunE = a.withLog(func(cmd *cobra.Command, args []string) error {
		logger := a.logger()
		planned := core.PlanDirectory(a.planOptions(args[0]))
		if planned.Status == types.PlanStatusError {
			return planned.Err
		}
		plan := planned.Plan

		printer := a.printer(cmd)
		printer.Plan(plan)

		if planned.Status == types.PlanStatusEmpty {
			printer.Summary(&types.ExecutionResult{}, plan.IgnoredCount())
			return nil
		}
		if dryRun {
			printer.DryRun()
			return nil
		}

		if !yes {
			dialog := confirmations.NewConsoleDialog(cmd.InOrStdin(), cmd.OutOrStdout())
			ok, err := dialog.Confirm(fmt.Sprintf(MsgConfirmOrganize, len(plan.Moves)), false)
			if err != nil {
				return fmt.Errorf(MsgErrConfirm, err)
			}
			if !ok {
				logger.Info().Str("run", plan.RunID).Msg("Organization cancelled by user")
				printer.Cancelled()
				return nil
			}
		}

		bar := progress.New(cmd.ErrOrStderr(), len(plan.Moves), MsgProgressDescription,
			progress.IsTerminal(cmd.ErrOrStderr()))
		result, err := core.ExecutePlan(plan, core.ExecuteOptions{
			OnProgress: bar.Func(),
			Lock:       a.cfg.Execute.Lock,
			FileSystem: filesystem.NewOS(),
			Logger:     logger,
		})
		bar.Finish()
		if err != nil {
			return err
		}

		printer.Summary(result, plan.IgnoredCount())
		printer.Failures(result)
		if result.ErrorCount > 0 {
			return errors.Newf(errors.ErrMoveFailed, MsgErrMoveFailed, result.ErrorCount)
		}
		return nil
	})

	addPlanningFlags(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().Bool("no-lock", false, MsgFlagNoLock)
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: MsgCategoriesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := core.LoadCategories(a.planOptions(""))
			if err != nil {
				return fmt.Errorf(MsgErrCategories, err)
			}
			a.printer(cmd).Categories(table)
			return nil
		},
	}
	cmd.Flags().String("categories", "", MsgFlagCategories)
	cmd.Flags().String("catch-all", "", MsgFlagCatchAll)
	return cmd
}

func newGenConfigCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				ConfigDir:  a.paths.ConfigDir(),
				Write:      write,
				FileSystem: filesystem.NewOS(),
				Logger:     a.logger(),
			})
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}
			a.printer(cmd).GenConfig(result, write)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func addPlanningFlags(cmd *cobra.Command) {
	cmd.Flags().String("categories", "", MsgFlagCategories)
	cmd.Flags().String("exclusions", "", MsgFlagExclusions)
	cmd.Flags().String("catch-all", "", MsgFlagCatchAll)
	cmd.Flags().Bool("sorted", false, MsgFlagSorted)
}

// planOptions resolves the loader inputs from the configuration
func (a *app) planOptions(dir string) core.PlanOptions {
	fsys := filesystem.NewOS()
	sourceDir := paths.ExpandHome(dir)
	if sourceDir != "" {
		if abs, err := filepath.Abs(sourceDir); err == nil {
			sourceDir = abs
		}
	}

	return core.PlanOptions{
		SourceDir:         sourceDir,
		CategoriesPath:    a.cfg.CategoriesPath(fsys, a.paths),
		DefaultCategories: config.DefaultCategories(),
		ExclusionsPath:    a.cfg.ExclusionsPath(fsys, a.paths),
		DefaultExclusions: config.DefaultExclusions(),
		CatchAll:          a.cfg.CatchAll,
		Sorted:            a.cfg.Scan.Sorted,
		FileSystem:        fsys,
		Logger:            a.logger(),
	}
}
