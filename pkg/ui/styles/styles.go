// Package styles defines the visual styling for dirsort's terminal output.
//
// Styles have semantic names and adaptive colors that adjust to light and
// dark terminals. They are declared in styles.yaml, embedded in the binary.
package styles

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Style names used by the display package
const (
	Header       = "Header"
	Category     = "Category"
	FilePath     = "FilePath"
	Success      = "Success"
	Error        = "Error"
	Warning      = "Warning"
	Muted        = "Muted"
	Count        = "Count"
	DryRunBanner = "DryRunBanner"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Theme renders named styles for one output stream
type Theme struct {
	styles  map[string]lipgloss.Style
	noColor bool
}

// ParseConfig decodes a styles definition
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}
	return &cfg, nil
}

// NewTheme builds the embedded styles for w. The lipgloss renderer detects
// the color profile of w, so a pipe or buffer gets plain text. With noColor
// every style renders its input unchanged.
func NewTheme(w io.Writer, noColor bool) *Theme {
	cfg, err := ParseConfig(embeddedStyles)
	if err != nil {
		cfg = &Config{}
	}
	return NewThemeFromConfig(cfg, lipgloss.NewRenderer(w), noColor)
}

// NewThemeFromConfig builds a theme from an explicit configuration
func NewThemeFromConfig(cfg *Config, renderer *lipgloss.Renderer, noColor bool) *Theme {
	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	t := &Theme{styles: make(map[string]lipgloss.Style, len(cfg.Styles)), noColor: noColor}
	for name, def := range cfg.Styles {
		t.styles[name] = buildStyle(renderer, def, colors)
	}
	return t
}

// Has reports whether name is defined
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// Get safely retrieves a style; unknown names give an empty style
func (t *Theme) Get(name string) lipgloss.Style {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text
func (t *Theme) Render(name, text string) string {
	if t == nil || t.noColor {
		return text
	}
	style, ok := t.styles[name]
	if !ok {
		return text
	}
	return style.Render(text)
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(renderer *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := renderer.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}

	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}

	return style
}
