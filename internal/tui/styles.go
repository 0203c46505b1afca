// Package tui provides a bubbletea + lipgloss terminal preview of a
// decorated list.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/config"
)

const defaultAccentColor = config.DefaultAccentColor

var (
	colorWhite = lipgloss.Color("#FAFAFA")
	colorGray  = lipgloss.Color("#888888")
)

// labelStyle paints the item labels of the preview.
var labelStyle = lipgloss.NewStyle().Foreground(colorWhite)
