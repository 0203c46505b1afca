package config

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/decoration"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/diag"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/layout"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/listview"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/provider"
)

// Manager returns the layout manager described by the [layout] section.
func (c *Config) Manager() (layout.Manager, error) {
	o, err := grid.ParseOrientation(c.Layout.Orientation)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	switch c.Layout.Kind {
	case KindLinear:
		return &layout.LinearLayout{Orientation: o, Reverse: c.Layout.Reverse}, nil
	case KindGrid:
		var spans grid.SpanSizeLookup
		if len(c.Layout.SpanSizes) > 0 {
			spans = grid.SpanSizes(c.Layout.SpanSizes)
		}
		return &layout.GridLayout{Orientation: o, Reverse: c.Layout.Reverse, SpanCount: c.Layout.SpanCount, Spans: spans}, nil
	case KindStaggered:
		m := &layout.StaggeredGridLayout{Orientation: o, Reverse: c.Layout.Reverse, SpanCount: c.Layout.SpanCount}
		if n := c.Layout.FullSpanEvery; n > 0 {
			m.FullSpan = func(i int) bool { return i%n == 0 }
		}
		return m, nil
	}
	return nil, fmt.Errorf("config: unknown layout kind %q", c.Layout.Kind)
}

// Labels returns the item labels.
func (c *Config) Labels() []string {
	if len(c.Items.Labels) > 0 {
		return c.Items.Labels
	}
	return listview.Numbered(c.Items.Prefix, c.Items.Count)
}

// Drawable returns the drawable of the [divider] section, or nil for the
// "none" style.
func (c *Config) Drawable() *provider.Drawable {
	style := lipgloss.NewStyle()
	if c.Divider.Color != "" {
		style = style.Foreground(lipgloss.Color(c.Divider.Color))
	}
	var d provider.Drawable
	switch c.Divider.Style {
	case StyleLine:
		d = provider.Line(style)
	case StyleGlyphs:
		d = provider.Glyphs(firstRune(c.Divider.Horizontal), firstRune(c.Divider.Vertical), style)
	case StyleSolid:
		d = provider.Solid(lipgloss.Color(c.Divider.Color))
	default:
		return nil
	}
	return &d
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// Options resolves the [divider] section for linear and grid layouts.
func (c *Config) Options(log diag.Logger) decoration.Options {
	opts := decoration.Options{
		AsSpace:      c.Divider.AsSpace,
		Insets:       provider.FixedInsets{Start: c.Divider.InsetStart, End: c.Divider.InsetEnd},
		FirstVisible: c.Divider.FirstVisible,
		LastVisible:  c.Divider.LastVisible,
		SideVisible:  c.Divider.SideVisible,
		Logger:       log,
	}
	if d := c.Drawable(); d != nil {
		opts.Drawable = provider.FixedDrawable{D: *d}
	}
	if c.Divider.Size > 0 {
		opts.Size = provider.SizeOf(c.Divider.Size)
	}
	if c.Divider.Tint != "" {
		opts.Tint = provider.FixedTint{Color: lipgloss.Color(c.Divider.Tint)}
	}
	return opts
}

// StaggeredOptions resolves the [divider] section for staggered layouts.
// Insets, tint and the first and last flags don't apply there.
func (c *Config) StaggeredOptions(log diag.Logger) decoration.StaggeredOptions {
	opts := decoration.StaggeredOptions{
		AsSpace:     c.Divider.AsSpace,
		Drawable:    c.Drawable(),
		SideVisible: c.Divider.SideVisible,
		Logger:      log,
	}
	if c.Divider.Size > 0 {
		size := c.Divider.Size
		opts.Size = &size
	}
	return opts
}

// Decoration returns the decoration matching the layout kind.
func (c *Config) Decoration(log diag.Logger) decoration.Decoration {
	if c.Layout.Kind == KindStaggered {
		return decoration.NewStaggered(c.StaggeredOptions(log))
	}
	return decoration.New(c.Options(log))
}

// NewView returns a list view of the configured items, laid out and
// decorated as configured.
func (c *Config) NewView(log diag.Logger) (*listview.View, error) {
	m, err := c.Manager()
	if err != nil {
		return nil, err
	}
	v := listview.New(listview.NewStringAdapter(c.Labels()...), m)
	v.SetRightToLeft(c.Layout.RightToLeft)
	v.SetItemExtents(c.Items.Extents...)
	v.AddDecoration(c.Decoration(log))
	return v, nil
}
