package decoration

import (
	"fmt"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/canvas"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/divider"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/layout"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/offset"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/provider"
)

// Dividers decorates linear and grid layouts.
type Dividers struct {
	attachments

	asSpace    bool
	drawable   provider.DrawableProvider
	size       provider.SizeProvider
	insets     provider.InsetProvider
	tint       provider.TintProvider
	visibility provider.VisibilityProvider
	offset     offset.Provider
}

var _ Decoration = (*Dividers)(nil)

// Grid returns the grid of the items of h, or nil when h has nothing to
// decorate.
func (d *Dividers) Grid(h Host) (*grid.Grid, error) {
	p, ok := begin(h)
	if !ok {
		return nil, nil
	}
	return d.grid(h, p)
}

func (d *Dividers) grid(h Host, p pass) (*grid.Grid, error) {
	lines, ok := layout.LinesOf(p.manager)
	if !ok {
		return nil, illegalLayout(p.manager)
	}
	dir := grid.ObtainLayoutDirection(lines.Orientation, h.IsRightToLeft(), lines.Reverse)
	cache := d.cacheFor(h)
	if cache != nil {
		g := cache.Get(lines.SpanCount, p.itemCount)
		if g != nil && g.Orientation == lines.Orientation && g.LayoutDirection == dir {
			return g, nil
		}
	}
	g := grid.Build(lines.Orientation, dir, lines.SpanCount, lines.Spans, p.itemCount)
	if cache != nil {
		cache.Put(lines.SpanCount, p.itemCount, g)
	}
	return g, nil
}

// ItemOffsets returns the space v reserves on each physical edge for the
// visible dividers around it.
func (d *Dividers) ItemOffsets(h Host, v ItemView) (geom.Edges, error) {
	var out geom.Edges
	p, ok := begin(h)
	if !ok {
		return out, nil
	}
	index, ok := p.position(v)
	if !ok {
		return out, nil
	}
	g, err := d.grid(h, p)
	if err != nil {
		return out, err
	}
	around, err := divider.AroundCell(g, index)
	if err != nil {
		return out, fmt.Errorf("decoration: item offsets: %w", err)
	}
	for _, side := range grid.AllSides {
		dv := around.Side(side)
		if !d.visibility.Visible(g, dv) {
			continue
		}
		size := d.size.Size(g, dv, d.drawable.Drawable(g, dv))
		off, err := d.offset.OffsetFromSize(g, dv, side, size)
		if err != nil {
			return out, fmt.Errorf("decoration: item offsets: %w", err)
		}
		assign(&out, side, off, g.LayoutDirection)
	}
	return out, nil
}

// Draw paints the dividers of every child of h.
func (d *Dividers) Draw(c *canvas.Canvas, h Host) error {
	if d.asSpace {
		return nil
	}
	p, ok := begin(h)
	if !ok {
		return nil
	}
	g, err := d.grid(h, p)
	if err != nil {
		return err
	}
	for _, v := range h.Children() {
		index, ok := p.position(v)
		if !ok {
			continue
		}
		if err := d.drawItem(c, g, index, v); err != nil {
			return err
		}
	}
	return nil
}

// paint is the geometry of one divider ready to be drawn.
type paint struct {
	drawable   provider.Drawable
	size       int
	start, end int
}

func (d *Dividers) paintOf(g *grid.Grid, dv divider.Divider) paint {
	drawable := d.drawable.Drawable(g, dv)
	if color, ok := d.tint.Tint(g, dv); ok {
		drawable = drawable.Tinted(color)
	}
	start, end := d.insets.Insets(g, dv)
	return paint{
		drawable: drawable,
		size:     d.size.Size(g, dv, drawable),
		start:    start,
		end:      end,
	}
}

// drawItem paints the dividers around one item. Top and start dividers are
// painted only on the grid boundary: inner ones are the bottom and end
// dividers of the neighbouring items. Vertical dividers stretch over the
// thickness of the horizontal ones unless an inset is set.
func (d *Dividers) drawItem(c *canvas.Canvas, g *grid.Grid, index int, v ItemView) error {
	around, err := divider.AroundCell(g, index)
	if err != nil {
		return fmt.Errorf("decoration: draw: %w", err)
	}
	rtl := g.LayoutDirection.IsRightToLeft()
	btt := g.LayoutDirection.IsBottomToTop()
	b := paintBounds(v)
	left, top, right, bottom := b.X, b.Y, b.Right(), b.Bottom()

	horizontalInsets := func(p paint) (int, int) {
		if rtl {
			return p.end, p.start
		}
		return p.start, p.end
	}
	verticalInsets := func(p paint) (int, int) {
		if btt {
			return p.end, p.start
		}
		return p.start, p.end
	}

	topSize := 0
	if dv := around.Top; dv.IsTop(g) && d.visibility.Visible(g, dv) {
		p := d.paintOf(g, dv)
		insetLeft, insetRight := horizontalInsets(p)
		y0, y1 := top-p.size, top
		if btt {
			y0, y1 = bottom, bottom+p.size
		}
		p.drawable.Draw(c, geom.FromBounds(left+insetLeft, y0, right-insetRight, y1), dv.Orientation)
		topSize = p.size
	}
	bottomSize := 0
	if dv := around.Bottom; d.visibility.Visible(g, dv) {
		p := d.paintOf(g, dv)
		insetLeft, insetRight := horizontalInsets(p)
		y0, y1 := bottom, bottom+p.size
		if btt {
			y0, y1 = top-p.size, top
		}
		p.drawable.Draw(c, geom.FromBounds(left+insetLeft, y0, right-insetRight, y1), dv.Orientation)
		bottomSize = p.size
	}
	topFill, bottomFill := topSize, bottomSize
	if btt {
		topFill, bottomFill = bottomSize, topSize
	}
	vertical := func(p paint, x0, x1 int, o grid.Orientation) {
		insetTop, insetBottom := verticalInsets(p)
		filledTop := -topFill
		if insetTop > 0 {
			filledTop = insetTop
		}
		filledBottom := bottomFill
		if insetBottom > 0 {
			filledBottom = -insetBottom
		}
		p.drawable.Draw(c, geom.FromBounds(x0, top+filledTop, x1, bottom+filledBottom), o)
	}
	if dv := around.Start; dv.IsStart(g) && d.visibility.Visible(g, dv) {
		p := d.paintOf(g, dv)
		x0, x1 := left-p.size, left
		if rtl {
			x0, x1 = right, right+p.size
		}
		vertical(p, x0, x1, dv.Orientation)
	}
	if dv := around.End; d.visibility.Visible(g, dv) {
		p := d.paintOf(g, dv)
		x0, x1 := right, right+p.size
		if rtl {
			x0, x1 = left-p.size, left
		}
		vertical(p, x0, x1, dv.Orientation)
	}
	return nil
}
