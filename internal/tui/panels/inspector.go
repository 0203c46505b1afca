package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/tui/components"
)

// InspectorTab identifies the active content tab of the inspector.
type InspectorTab int

const (
	TabInsets InspectorTab = iota // per-item divider offsets
	TabConfig                     // the effective configuration
)

var inspectorTabLabels = []string{"Insets", "Config"}

// InspectorPanel shows the measured insets of every item and the effective
// configuration, one per tab.
type InspectorPanel struct {
	tabbar components.TabBar
	insets components.Scroller
	config components.Scroller
	width  int
	height int
}

// NewInspectorPanel creates an inspector panel.
func NewInspectorPanel(w, h int) InspectorPanel {
	contentH := max(h-1, 1)
	return InspectorPanel{
		tabbar: components.NewTabBar(inspectorTabLabels).SetWidth(w),
		insets: components.NewScroller(w, contentH),
		config: components.NewScroller(w, contentH),
		width:  w,
		height: h,
	}
}

// ActiveTab returns the visible tab.
func (p InspectorPanel) ActiveTab() InspectorTab {
	return InspectorTab(p.tabbar.Active())
}

// SetTabStyle returns a panel whose active tab is rendered with s.
func (p InspectorPanel) SetTabStyle(s lipgloss.Style) InspectorPanel {
	p.tabbar = p.tabbar.SetActiveStyle(s)
	return p
}

// SetInsets replaces the lines of the insets tab.
func (p InspectorPanel) SetInsets(lines []string) InspectorPanel {
	p.insets = p.insets.SetContent(lines)
	return p
}

// SetConfig replaces the text of the config tab.
func (p InspectorPanel) SetConfig(text string) InspectorPanel {
	p.config = p.config.SetContent(strings.Split(strings.TrimRight(text, "\n"), "\n"))
	return p
}

// Insets returns the lines of the insets tab.
func (p InspectorPanel) Insets() []string {
	return p.insets.Lines()
}

// SetSize resizes the panel.
func (p InspectorPanel) SetSize(w, h int) InspectorPanel {
	p.width = w
	p.height = h
	contentH := max(h-1, 1)
	p.tabbar = p.tabbar.SetWidth(w)
	p.insets = p.insets.SetSize(w, contentH)
	p.config = p.config.SetSize(w, contentH)
	return p
}

// Update handles tab switching and scrolling of the active tab.
func (p InspectorPanel) Update(msg tea.Msg) (InspectorPanel, tea.Cmd) {
	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "]":
			p.tabbar = p.tabbar.Next()
			return p, nil
		case "[":
			p.tabbar = p.tabbar.Prev()
			return p, nil
		}
	}
	switch p.ActiveTab() {
	case TabInsets:
		p.insets, cmd = p.insets.Update(msg)
	case TabConfig:
		p.config, cmd = p.config.Update(msg)
	}
	return p, cmd
}

// View renders the tab bar above the active tab.
func (p InspectorPanel) View() string {
	body := p.insets.View()
	if p.ActiveTab() == TabConfig {
		body = p.config.View()
	}
	return p.tabbar.View() + "\n" + body
}
