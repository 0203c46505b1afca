package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings handled by the root model. Scroll keys are
// handled by the focused panel's viewport.
type KeyMap struct {
	Orientation key.Binding
	Reverse     key.Binding
	RightToLeft key.Binding
	Kind        key.Binding
	SpanUp      key.Binding
	SpanDown    key.Binding
	First       key.Binding
	Last        key.Binding
	Side        key.Binding
	AsSpace     key.Binding
	Tab         key.Binding
	NextFocus   key.Binding
	PrevFocus   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Orientation: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "orientation")),
		Reverse:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
		RightToLeft: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "rtl")),
		Kind:        key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "layout")),
		SpanUp:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "span")),
		SpanDown:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "span")),
		First:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "first")),
		Last:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "last")),
		Side:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sides")),
		AsSpace:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "as space")),
		Tab:         key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "tab")),
		NextFocus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevFocus:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Orientation, k.Reverse, k.RightToLeft, k.SpanUp, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Orientation, k.Reverse, k.RightToLeft, k.Kind},
		{k.SpanUp, k.SpanDown, k.AsSpace},
		{k.First, k.Last, k.Side},
		{k.Tab, k.NextFocus, k.PrevFocus, k.Help, k.Quit},
	}
}
