package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/config"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/decoration"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/diag"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/listview"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/tui/components"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/tui/panels"
)

var layoutKinds = []string{config.KindLinear, config.KindGrid, config.KindStaggered}

// Model is the bubbletea model of the preview: a header, the rendered list
// next to an inspector, and a footer.
type Model struct {
	cfg      config.Config
	path     string
	reloader Reloader
	warnings *diag.Recorder

	adapter    *listview.StringAdapter
	view       *listview.View
	decoration decoration.Decoration

	theme     Theme
	keys      KeyMap
	help      help.Model
	focus     FocusTarget
	layout    Layout
	preview   components.Scroller
	inspector panels.InspectorPanel

	width  int
	height int
	err    error
}

// New creates the model for cfg, read from path ("" for built-in defaults).
// When r is non-nil, every change it reports reloads the file at path.
func New(cfg *config.Config, path string, r Reloader) (Model, error) {
	m := Model{
		path:      path,
		reloader:  r,
		warnings:  &diag.Recorder{},
		adapter:   listview.NewStringAdapter(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		focus:     FocusPreview,
		width:     80,
		height:    24,
		preview:   components.NewScroller(78, 20),
		inspector: panels.NewInspectorPanel(28, 20),
	}
	m.view = listview.New(m.adapter, nil)
	m.view.SetLabelStyle(labelStyle)
	m.layout = Calculate(m.width, m.height)
	m.resize()
	if err := m.setConfig(*cfg); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts waiting for configuration changes.
func (m Model) Init() tea.Cmd {
	return m.listen()
}

func (m Model) listen() tea.Cmd {
	if m.reloader == nil {
		return nil
	}
	return waitForReload(m.reloader)
}

// Err returns the last render or reload error.
func (m Model) Err() error {
	return m.err
}

// Config returns the configuration currently previewed.
func (m Model) Config() config.Config {
	return m.cfg
}

// Focus returns the panel holding keyboard focus.
func (m Model) Focus() FocusTarget {
	return m.focus
}

// PreviewLines returns the rendered rows of the list.
func (m Model) PreviewLines() []string {
	return m.preview.Lines()
}

// Warnings returns every warning reported while decorating.
func (m Model) Warnings() []string {
	return m.warnings.Messages()
}

// setConfig validates next and applies it to the view. The view keeps its
// adapter and reattaches the decoration, so cached sizes are dropped.
func (m *Model) setConfig(next config.Config) error {
	if err := next.Validate(); err != nil {
		return err
	}
	mgr, err := next.Manager()
	if err != nil {
		return err
	}
	m.cfg = next
	m.theme = NewTheme(next.View.AccentColor)
	m.inspector = m.inspector.SetTabStyle(m.theme.TabStyle())

	m.adapter.SetItems(next.Labels())
	m.view.SetLayoutManager(mgr)
	m.view.SetRightToLeft(next.Layout.RightToLeft)
	m.view.SetItemExtents(next.Items.Extents...)
	if m.decoration != nil {
		m.view.RemoveDecoration(m.decoration)
	}
	m.decoration = next.Decoration(m.warnings)
	m.view.AddDecoration(m.decoration)

	if text, err := next.Encode(); err == nil {
		m.inspector = m.inspector.SetConfig(text)
	}
	return m.render()
}

// render lays the list out in the preview panel and refreshes both panels.
func (m *Model) render() error {
	w, h := innerDims(m.layout.Preview)
	if m.layout.TooSmall {
		w, h = m.width, m.height
	}
	c, err := m.view.Render(w, h)
	if err != nil {
		m.err = err
		return err
	}
	m.err = nil
	m.preview = m.preview.SetContent(strings.Split(c.Render(), "\n"))
	m.inspector = m.inspector.SetInsets(insetLines(m.view))
	return nil
}

// insetLines formats the measured offsets of every item.
func insetLines(v *listview.View) []string {
	items := v.Items()
	lines := make([]string, 0, len(items))
	for _, c := range items {
		o := c.Offsets
		lines = append(lines, fmt.Sprintf("%3d %-8s t%d r%d b%d l%d", c.Position, c.Label, o.Top, o.Right, o.Bottom, o.Left))
	}
	return lines
}

func (m *Model) resize() {
	if m.layout.TooSmall {
		return
	}
	pw, ph := innerDims(m.layout.Preview)
	iw, ih := innerDims(m.layout.Inspector)
	m.preview = m.preview.SetSize(pw, ph)
	m.inspector = m.inspector.SetSize(iw, ih)
	m.help.Width = pw
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = Calculate(m.width, m.height)
		m.resize()
		_ = m.render()
		return m, nil

	case reloadMsg:
		m.reload()
		return m, m.listen()

	case watchErrMsg:
		m.err = msg.err
		return m, m.listen()

	case watchDoneMsg:
		m.reloader = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.delegateToFocused(msg)
}

// reload re-reads the configuration file. A broken file keeps the previous
// configuration on screen.
func (m *Model) reload() {
	if m.path == "" {
		return
	}
	cfg, err := config.Load(m.path)
	if err != nil {
		m.err = err
		return
	}
	if err := m.setConfig(*cfg); err != nil {
		m.err = err
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	next := m.cfg
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, k.NextFocus):
		m.focus = m.focus.Next()
		return m, nil
	case key.Matches(msg, k.PrevFocus):
		m.focus = m.focus.Prev()
		return m, nil
	case key.Matches(msg, k.Tab):
		var cmd tea.Cmd
		m.inspector, cmd = m.inspector.Update(msg)
		return m, cmd

	case key.Matches(msg, k.Orientation):
		if next.Layout.Orientation == "horizontal" {
			next.Layout.Orientation = "vertical"
		} else {
			next.Layout.Orientation = "horizontal"
		}
	case key.Matches(msg, k.Reverse):
		next.Layout.Reverse = !next.Layout.Reverse
	case key.Matches(msg, k.RightToLeft):
		next.Layout.RightToLeft = !next.Layout.RightToLeft
	case key.Matches(msg, k.Kind):
		next.Layout.Kind = nextKind(next.Layout.Kind)
		if next.Layout.Kind != config.KindLinear && next.Layout.SpanCount < 2 {
			next.Layout.SpanCount = 2
		}
	case key.Matches(msg, k.SpanUp):
		next.Layout.SpanCount++
	case key.Matches(msg, k.SpanDown):
		next.Layout.SpanCount--
	case key.Matches(msg, k.First):
		next.Divider.FirstVisible = !next.Divider.FirstVisible
	case key.Matches(msg, k.Last):
		next.Divider.LastVisible = !next.Divider.LastVisible
	case key.Matches(msg, k.Side):
		next.Divider.SideVisible = !next.Divider.SideVisible
	case key.Matches(msg, k.AsSpace):
		next.Divider.AsSpace = !next.Divider.AsSpace
	default:
		return m.delegateToFocused(msg)
	}

	if err := m.setConfig(next); err != nil {
		m.err = err
	}
	return m, nil
}

func nextKind(kind string) string {
	for i, k := range layoutKinds {
		if k == kind {
			return layoutKinds[(i+1)%len(layoutKinds)]
		}
	}
	return config.KindLinear
}

func (m Model) delegateToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusPreview:
		m.preview, cmd = m.preview.Update(msg)
	case FocusInspector:
		m.inspector, cmd = m.inspector.Update(msg)
	}
	return m, cmd
}

// View renders the whole screen.
func (m Model) View() string {
	if m.layout.TooSmall {
		return fmt.Sprintf("Terminal too small (%d×%d); need at least 40×10.", m.width, m.height)
	}

	header := panels.RenderHeader(panels.HeaderProps{
		ConfigPath:  m.path,
		Kind:        m.cfg.Layout.Kind,
		Orientation: m.cfg.Layout.Orientation,
		Reverse:     m.cfg.Layout.Reverse,
		RightToLeft: m.cfg.Layout.RightToLeft,
		SpanCount:   m.cfg.Layout.SpanCount,
		Items:       m.adapter.ItemCount(),
		AsSpace:     m.cfg.Divider.AsSpace,
	}, m.width, m.theme.AccentHeaderStyle())

	pw, ph := innerDims(m.layout.Preview)
	iw, ih := innerDims(m.layout.Inspector)

	body := m.preview.View()
	if m.help.ShowAll {
		body = m.help.View(m.keys)
	}
	left := m.theme.PanelBorderStyle(m.focus == FocusPreview).
		Width(pw).Height(ph).
		Render(body)
	right := m.theme.PanelBorderStyle(m.focus == FocusInspector).
		Width(iw).Height(ih).
		Render(m.inspector.View())

	errText := ""
	if m.err != nil {
		errText = m.err.Error()
	}
	footer := panels.RenderFooter(panels.FooterProps{
		Focus:   m.focus.String(),
		Warning: m.warnings.Last(),
		Err:     errText,
		Help:    m.help.ShortHelpView(m.keys.ShortHelp()),
	}, m.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		footer,
	)
}
