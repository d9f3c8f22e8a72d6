package styles

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
	// Plain disables syntax highlighting, e.g. when stdout is not a terminal.
	Plain bool
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path followed by any load warnings.
func (r *ConfigRenderer) RenderConfigInfo(path string, warnings []string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s Config %s\n", iconStyle.Render(IconConfig), pathStyle.Render(path))

	if len(warnings) == 0 {
		fmt.Fprintf(&sb, "  %s Config is valid\n", r.theme.SuccessStyle.Render(IconCheck))
		return sb.String()
	}

	warnStyle := r.theme.WarningStyle
	fmt.Fprintf(&sb, "  %s %s settings replaced by defaults:\n",
		warnStyle.Render(IconWarning),
		warnStyle.Render(fmt.Sprintf("%d", len(warnings))),
	)
	for _, w := range warnings {
		fmt.Fprintf(&sb, "    %s %s\n", iconStyle.Render(IconArrow), r.theme.Normal.Render(w))
	}
	return sb.String()
}

// RenderJSON highlights a JSON document for the terminal. Highlighting
// failures fall back to the raw document.
func (r *ConfigRenderer) RenderJSON(doc []byte) string {
	if r.Plain {
		return string(doc)
	}

	var sb strings.Builder
	if err := quick.Highlight(&sb, string(doc), "json", "terminal256", "monokai"); err != nil {
		return string(doc)
	}
	return sb.String()
}

// RenderCreated renders the message shown after writing a file.
func (r *ConfigRenderer) RenderCreated(what, path string) string {
	return fmt.Sprintf(
		"\n  %s Wrote %s %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(what),
		r.theme.Subtle.Render(path),
	)
}

// RenderExists renders the message shown when a file is kept as is.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s already exists\n  %s\n",
		iconStyle.Render(IconInfo),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Use --force to overwrite it with defaults."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf(
		"\n  %s %s\n",
		r.theme.ErrorStyle.Render(IconWarning),
		r.theme.ErrorStyle.Render(fmt.Sprintf("Config error: %v", err)),
	)
}
