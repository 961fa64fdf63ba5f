// Package progress draws the execution progress bar.
package progress

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/arthur-debert/dirsort/pkg/types"
)

// Bar wraps a progress bar fed by executor progress callbacks
type Bar struct {
	bar *progressbar.ProgressBar
}

// New creates a bar for total items drawn on w. The bar stays invisible
// when visible is false.
func New(w io.Writer, total int, description string, visible bool) *Bar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionClearOnFinish(),
	)
	return &Bar{bar: bar}
}

// IsTerminal reports whether w is a terminal. Anything that is not an
// *os.File, such as a buffer in tests, is not.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Func returns a callback suitable for executor options
func (b *Bar) Func() types.ProgressFunc {
	return func(processed, total int) {
		_ = b.bar.Set(processed)
	}
}

// Finish completes the bar and clears it
func (b *Bar) Finish() {
	_ = b.bar.Finish()
}
