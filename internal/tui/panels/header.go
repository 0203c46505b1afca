// Package panels provides the panel components of the gutter preview.
package panels

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// HeaderProps holds all data needed to render the header bar.
type HeaderProps struct {
	ConfigPath  string
	Kind        string
	Orientation string
	Reverse     bool
	RightToLeft bool
	SpanCount   int
	Items       int
	AsSpace     bool
}

// AbbreviatePath returns a display-friendly path, replacing the home directory
// with "~" and converting backslashes to forward slashes.
func AbbreviatePath(path string) string {
	if path == "" {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	return strings.ReplaceAll(path, "\\", "/")
}

// RenderHeader renders the header bar. accentStyle is applied to the full
// header width.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	source := "defaults"
	if props.ConfigPath != "" {
		source = AbbreviatePath(props.ConfigPath)
	}

	layout := props.Kind
	if props.Kind != "linear" {
		layout = fmt.Sprintf("%s ×%d", props.Kind, props.SpanCount)
	}

	parts := []string{
		"gutter",
		source,
		fmt.Sprintf("%s %s", layout, props.Orientation),
		fmt.Sprintf("items: %d", props.Items),
	}
	var flags []string
	if props.Reverse {
		flags = append(flags, "reversed")
	}
	if props.RightToLeft {
		flags = append(flags, "rtl")
	}
	if props.AsSpace {
		flags = append(flags, "as space")
	}
	if len(flags) > 0 {
		parts = append(parts, strings.Join(flags, ", "))
	}

	content := runewidth.Truncate(strings.Join(parts, "  │  "), width, "…")
	return accentStyle.Width(width).Render(content)
}
