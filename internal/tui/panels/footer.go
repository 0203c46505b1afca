package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	footerWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D"))
	footerFailed = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Focus   string // "preview", "inspector"
	Warning string // last decoration warning
	Err     string // last render or reload error
	Help    string // rendered key hints
}

// RenderFooter renders the footer bar. Left side: the last error, else the
// last warning, else the focused panel. Right side: key hints.
func RenderFooter(props FooterProps, width int) string {
	var left string
	switch {
	case props.Err != "":
		left = footerFailed.Render("✗ " + props.Err)
	case props.Warning != "":
		left = footerWarn.Render("⚠ " + props.Warning)
	default:
		left = footerStyle.Render("focus: " + props.Focus)
	}
	right := footerStyle.Render(props.Help)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(left + strings.Repeat(" ", gap) + right)
}
