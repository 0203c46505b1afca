package provider

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/divider"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

// DefaultSize is the divider thickness used when neither the configuration
// nor the drawable defines one.
const DefaultSize = 1

// DrawableProvider returns the drawable of a divider.
type DrawableProvider interface {
	Drawable(g *grid.Grid, d divider.Divider) Drawable
}

// SizeProvider returns the thickness of a divider in cells.
type SizeProvider interface {
	Size(g *grid.Grid, d divider.Divider, drawable Drawable) int
}

// InsetProvider returns the start and end insets of a divider, measured on
// the axis perpendicular to its thickness.
type InsetProvider interface {
	Insets(g *grid.Grid, d divider.Divider) (start, end int)
}

// TintProvider returns the color re-tinting a divider, if any.
type TintProvider interface {
	Tint(g *grid.Grid, d divider.Divider) (lipgloss.TerminalColor, bool)
}

// VisibilityProvider reports whether a divider is shown.
type VisibilityProvider interface {
	Visible(g *grid.Grid, d divider.Divider) bool
}

// FixedDrawable returns the same drawable for every divider.
type FixedDrawable struct {
	D Drawable
}

// Drawable implements DrawableProvider.
func (p FixedDrawable) Drawable(*grid.Grid, divider.Divider) Drawable { return p.D }

// FixedSize uses Value when it's set, otherwise the intrinsic size of the
// divider's drawable, otherwise DefaultSize.
type FixedSize struct {
	Value *int
}

// SizeOf returns a FixedSize always answering n.
func SizeOf(n int) FixedSize { return FixedSize{Value: &n} }

// Size implements SizeProvider.
func (p FixedSize) Size(_ *grid.Grid, d divider.Divider, drawable Drawable) int {
	if p.Value != nil {
		return *p.Value
	}
	if n := drawable.IntrinsicSize(d.Orientation); n != NoIntrinsicSize {
		return n
	}
	return DefaultSize
}

// FixedInsets applies the same insets to every divider.
type FixedInsets struct {
	Start, End int
}

// Insets implements InsetProvider.
func (p FixedInsets) Insets(*grid.Grid, divider.Divider) (int, int) { return p.Start, p.End }

// FixedTint re-tints every divider with Color, when set.
type FixedTint struct {
	Color lipgloss.TerminalColor
}

// Tint implements TintProvider.
func (p FixedTint) Tint(*grid.Grid, divider.Divider) (lipgloss.TerminalColor, bool) {
	return p.Color, p.Color != nil
}

// DefaultVisibility shows every divider except the first, last and side ones
// whose flag is off.
type DefaultVisibility struct {
	FirstVisible bool
	LastVisible  bool
	SideVisible  bool
}

// Visible implements VisibilityProvider.
func (p DefaultVisibility) Visible(g *grid.Grid, d divider.Divider) bool {
	switch {
	case d.IsFirst(g):
		return p.FirstVisible
	case d.IsLast(g):
		return p.LastVisible
	case d.IsSide(g):
		return p.SideVisible
	}
	return true
}

// DrawableFunc adapts a function to DrawableProvider.
type DrawableFunc func(g *grid.Grid, d divider.Divider) Drawable

// Drawable calls f.
func (f DrawableFunc) Drawable(g *grid.Grid, d divider.Divider) Drawable { return f(g, d) }

// SizeFunc adapts a function to SizeProvider.
type SizeFunc func(g *grid.Grid, d divider.Divider, drawable Drawable) int

// Size calls f.
func (f SizeFunc) Size(g *grid.Grid, d divider.Divider, drawable Drawable) int { return f(g, d, drawable) }

// VisibilityFunc adapts a function to VisibilityProvider.
type VisibilityFunc func(g *grid.Grid, d divider.Divider) bool

// Visible calls f.
func (f VisibilityFunc) Visible(g *grid.Grid, d divider.Divider) bool { return f(g, d) }
