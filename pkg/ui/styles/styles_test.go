package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	cfg, err := ParseConfig(embeddedStyles)
	require.NoError(t, err)

	for _, name := range []string{Header, Category, FilePath, Success, Error, Warning, Muted, Count, DryRunBanner} {
		t.Run(name, func(t *testing.T) {
			_, ok := cfg.Styles[name]
			assert.True(t, ok, "style %s should be defined", name)
		})
	}

	for name, def := range cfg.Styles {
		if def.Foreground != "" {
			_, ok := cfg.Colors[def.Foreground]
			assert.True(t, ok, "style %s uses unknown color %s", name, def.Foreground)
		}
	}
}

func TestTheme(t *testing.T) {
	t.Run("no_color_is_identity", func(t *testing.T) {
		theme := NewTheme(&bytes.Buffer{}, true)
		assert.Equal(t, "Images", theme.Render(Category, "Images"))
	})

	t.Run("unknown_style", func(t *testing.T) {
		theme := NewTheme(&bytes.Buffer{}, false)
		assert.False(t, theme.Has("Nope"))
		assert.Equal(t, "text", theme.Render("Nope", "text"))
		assert.Equal(t, lipgloss.NewStyle(), theme.Get("Nope"))
	})

	t.Run("non_terminal_writer_renders_plain_text", func(t *testing.T) {
		theme := NewTheme(&bytes.Buffer{}, false)
		assert.True(t, theme.Has(Success))
		assert.Equal(t, "done", theme.Render(Success, "done"))
	})

	t.Run("nil_theme", func(t *testing.T) {
		var theme *Theme
		assert.Equal(t, "x", theme.Render(Success, "x"))
	})

	t.Run("malformed_config", func(t *testing.T) {
		_, err := ParseConfig([]byte("colors: [unterminated"))
		assert.Error(t, err)
	})
}
