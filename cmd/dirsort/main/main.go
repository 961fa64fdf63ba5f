package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dirsort/cmd/dirsort"
	"github.com/arthur-debert/dirsort/pkg/ui/styles"
)

func main() {
	rootCmd := dirsort.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		theme := styles.NewTheme(os.Stderr, os.Getenv("NO_COLOR") != "")
		fmt.Fprintln(os.Stderr, theme.Render(styles.Error, fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
