// Package display renders plans, execution summaries and category tables
// for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/dirsort/pkg/categories"
	"github.com/arthur-debert/dirsort/pkg/types"
	"github.com/arthur-debert/dirsort/pkg/ui/styles"
)

// Printer writes human readable output to one stream
type Printer struct {
	w       io.Writer
	theme   *styles.Theme
	noColor bool
}

// NewPrinter creates a printer for w
func NewPrinter(w io.Writer, noColor bool) *Printer {
	return &Printer{
		w:       w,
		theme:   styles.NewTheme(w, noColor),
		noColor: noColor,
	}
}

// Plan shows every planned move as a table followed by a per-category tally
func (p *Printer) Plan(plan *types.Plan) {
	if plan == nil || len(plan.Moves) == 0 {
		p.printf("%s\n", p.theme.Render(styles.Muted, "No files to organize."))
		p.ignoredLine(plan)
		return
	}

	p.printf("%s %s\n\n",
		p.theme.Render(styles.Header, "Planned moves in"),
		p.theme.Render(styles.FilePath, plan.SourceDir))

	data := pterm.TableData{{"File", "Category", "Destination"}}
	for _, m := range plan.Moves {
		data = append(data, []string{m.FileName, m.Category, m.DestinationDir})
	}
	p.table(data)

	p.printf("\n")
	counts := plan.CategoryCounts()
	for _, name := range orderedCategories(plan) {
		p.printf("  %s %s\n", p.theme.Render(styles.Category, name), p.theme.Render(styles.Count, fmt.Sprint(counts[name])))
	}
	p.printf("\n%s %s\n", p.theme.Render(styles.Count, fmt.Sprint(len(plan.Moves))), "file(s) to move")
	p.ignoredLine(plan)
}

// Ignored lists the entries the planner skipped and why
func (p *Printer) Ignored(plan *types.Plan) {
	if plan == nil || len(plan.Ignored) == 0 {
		return
	}
	data := pterm.TableData{{"Entry", "Reason"}}
	for _, e := range plan.Ignored {
		data = append(data, []string{e.Name, string(e.Reason)})
	}
	p.printf("\n%s\n", p.theme.Render(styles.Header, "Ignored"))
	p.table(data)
}

// DryRun announces that nothing was changed
func (p *Printer) DryRun() {
	p.printf("\n%s\n", p.theme.Render(styles.DryRunBanner, "DRY RUN - no files were moved"))
}

// Cancelled reports a declined confirmation
func (p *Printer) Cancelled() {
	p.printf("%s\n", p.theme.Render(styles.Warning, "Cancelled, no files were moved."))
}

// Summary prints the moved, ignored and error counts
func (p *Printer) Summary(result *types.ExecutionResult, ignored int) {
	p.printf("\n%s\n", p.theme.Render(styles.Header, "Summary"))
	p.printf("  %s %s\n", p.theme.Render(styles.Success, "moved:  "), fmt.Sprint(result.MovedCount))
	p.printf("  %s %s\n", p.theme.Render(styles.Muted, "ignored:"), fmt.Sprint(ignored))
	errLabel := p.theme.Render(styles.Muted, "errors: ")
	if result.ErrorCount > 0 {
		errLabel = p.theme.Render(styles.Error, "errors: ")
	}
	p.printf("  %s %s\n", errLabel, fmt.Sprint(result.ErrorCount))
}

// Failures lists the items that could not be moved
func (p *Printer) Failures(result *types.ExecutionResult) {
	failed := result.Failures()
	if len(failed) == 0 {
		return
	}
	p.printf("\n%s\n", p.theme.Render(styles.Error, "Failed moves"))
	for _, o := range failed {
		p.printf("  %s: %v\n", p.theme.Render(styles.FilePath, o.Move.SourcePath), o.Err)
	}
}

// Categories prints a category table in lookup order
func (p *Printer) Categories(table *categories.Table) {
	data := pterm.TableData{{"#", "Category", "Extensions"}}
	for i, c := range table.Categories() {
		exts := strings.Join(c.Extensions, " ")
		if c.Name == table.CatchAll() && exts == "" {
			exts = "(anything else)"
		}
		data = append(data, []string{fmt.Sprint(i + 1), c.Name, exts})
	}
	p.table(data)
}

// GenConfig prints generated files, or the list of files written
func (p *Printer) GenConfig(result *types.GenConfigResult, write bool) {
	if !write {
		for i, f := range result.Files {
			if i > 0 {
				p.printf("\n")
			}
			p.printf("# ---- %s ----\n%s", f.Name, f.Content)
		}
		return
	}
	for _, path := range result.FilesWritten {
		p.printf("%s %s\n", p.theme.Render(styles.Success, "wrote"), path)
	}
	for _, path := range result.FilesSkipped {
		p.printf("%s %s (already exists)\n", p.theme.Render(styles.Muted, "kept "), path)
	}
}

func (p *Printer) ignoredLine(plan *types.Plan) {
	if plan == nil || plan.IgnoredCount() == 0 {
		return
	}
	p.printf("%s %s\n", p.theme.Render(styles.Muted, fmt.Sprint(plan.IgnoredCount())), p.theme.Render(styles.Muted, "entry(ies) ignored"))
}

func (p *Printer) table(data pterm.TableData) {
	tp := pterm.DefaultTable.WithHasHeader().WithData(data)
	if p.noColor {
		tp = tp.WithHeaderStyle(pterm.NewStyle()).WithSeparatorStyle(pterm.NewStyle())
	}
	out, err := tp.Srender()
	if err != nil {
		// fall back to tab separated rows
		for _, row := range data {
			p.printf("%s\n", strings.Join(row, "\t"))
		}
		return
	}
	p.printf("%s\n", out)
}

func (p *Printer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

// orderedCategories returns the categories of plan in first-use order
func orderedCategories(plan *types.Plan) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range plan.Moves {
		if !seen[m.Category] {
			seen[m.Category] = true
			names = append(names, m.Category)
		}
	}
	return names
}
