// Package components provides reusable TUI components for the gutter preview.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// TabBar is a stateless row of labelled tabs. The active tab is rendered
// with the active style, the others dimmed.
type TabBar struct {
	tabs   []string
	active int
	width  int
	style  lipgloss.Style
}

// NewTabBar creates a TabBar with the given tab titles. The first tab is active.
func NewTabBar(tabs []string) TabBar {
	return TabBar{tabs: tabs, style: lipgloss.NewStyle().Bold(true)}
}

// Active returns the index of the currently active tab.
func (t TabBar) Active() int {
	return t.active
}

// Label returns the title of the active tab.
func (t TabBar) Label() string {
	if len(t.tabs) == 0 {
		return ""
	}
	return t.tabs[t.active]
}

// Next returns a TabBar with the next tab active (wraps around).
func (t TabBar) Next() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + 1) % len(t.tabs)
	return t
}

// Prev returns a TabBar with the previous tab active (wraps around).
func (t TabBar) Prev() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + len(t.tabs) - 1) % len(t.tabs)
	return t
}

// SetWidth returns a TabBar truncated to the given render width.
func (t TabBar) SetWidth(w int) TabBar {
	t.width = w
	return t
}

// SetActiveStyle returns a TabBar rendering its active tab with s.
func (t TabBar) SetActiveStyle(s lipgloss.Style) TabBar {
	t.style = s
	return t
}

// View renders the tab bar as a single line.
func (t TabBar) View() string {
	if len(t.tabs) == 0 {
		return ""
	}

	parts := make([]string, len(t.tabs))
	for i, label := range t.tabs {
		if i == t.active {
			parts[i] = t.style.Render(label)
		} else {
			parts[i] = tabInactiveStyle.Render(label)
		}
	}

	line := strings.Join(parts, " │ ")
	if t.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(t.width).Render(line)
	}
	return line
}
