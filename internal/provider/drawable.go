// Package provider holds the collaborators the decorations query for every
// divider: what to draw, how thick it is, its insets, tint and visibility.
// Each collaborator is an interface with a fixed default implementation.
package provider

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/canvas"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

// NoIntrinsicSize is returned by Drawable.IntrinsicSize when the drawable
// adapts to any bounds.
const NoIntrinsicSize = -1

// Drawable is what a divider paints: a glyph repeated over the divider's
// bounds, or a solid block of color.
type Drawable struct {
	// Horizontal and Vertical are the glyphs used for horizontal and
	// vertical dividers. Zero runes mean the drawable is a solid color.
	Horizontal rune
	Vertical   rune
	Style      lipgloss.Style

	color       lipgloss.TerminalColor
	transparent bool
}

// Line returns a drawable painting box-drawing lines in style.
func Line(style lipgloss.Style) Drawable {
	return Drawable{Horizontal: '─', Vertical: '│', Style: style}
}

// Glyphs returns a drawable painting the given glyphs in style.
func Glyphs(horizontal, vertical rune, style lipgloss.Style) Drawable {
	return Drawable{Horizontal: horizontal, Vertical: vertical, Style: style}
}

// Solid returns a drawable filling its bounds with color.
func Solid(color lipgloss.TerminalColor) Drawable {
	return Drawable{Style: lipgloss.NewStyle().Background(color), color: color}
}

// Transparent returns a drawable that paints nothing. It keeps the geometry
// of the dividers when nothing else is configured.
func Transparent() Drawable {
	return Drawable{transparent: true}
}

// IsTransparent reports whether d paints nothing.
func (d Drawable) IsTransparent() bool { return d.transparent }

// IsSolid reports whether d is an opaque block of color.
func (d Drawable) IsSolid() bool {
	return !d.transparent && d.Horizontal == 0 && d.Vertical == 0
}

// Color returns the color of a solid drawable.
func (d Drawable) Color() (lipgloss.TerminalColor, bool) {
	return d.color, d.IsSolid() && d.color != nil
}

// IntrinsicSize returns the thickness d needs for a divider with orientation
// o: the glyph height for horizontal dividers, the glyph width for vertical
// ones. Solid and transparent drawables have no intrinsic size.
func (d Drawable) IntrinsicSize(o grid.Orientation) int {
	if d.transparent || d.IsSolid() {
		return NoIntrinsicSize
	}
	if o.IsHorizontal() {
		return 1
	}
	if w := runewidth.RuneWidth(d.Vertical); w > 0 {
		return w
	}
	return NoIntrinsicSize
}

// Tinted returns a copy of d re-colored with color. Glyphs change their
// foreground, solid drawables their background.
func (d Drawable) Tinted(color lipgloss.TerminalColor) Drawable {
	if d.transparent {
		return d
	}
	if d.IsSolid() {
		d.Style = d.Style.Background(color)
		d.color = color
		return d
	}
	d.Style = d.Style.Foreground(color)
	return d
}

// Draw paints d over r for a divider with orientation o.
func (d Drawable) Draw(c *canvas.Canvas, r geom.Rect, o grid.Orientation) {
	if d.transparent || r.IsEmpty() {
		return
	}
	ch := ' '
	if !d.IsSolid() {
		ch = d.Horizontal
		if o.IsVertical() {
			ch = d.Vertical
		}
		if ch == 0 {
			ch = ' '
		}
	}
	c.Fill(r, ch, c.Register(d.Style))
}
