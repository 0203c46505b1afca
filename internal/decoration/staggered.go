package decoration

import (
	"github.com/LISSConsulting/LISSTech.Gutter/internal/canvas"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/divider"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/layout"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/offset"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/provider"
)

// StaggeredDividers decorates staggered grid layouts. The placement of each
// item is only known once the host has laid it out, so nothing is cached.
type StaggeredDividers struct {
	attachments

	asSpace     bool
	drawable    provider.Drawable
	size        int
	sideVisible bool
	balancer    offset.StaggeredBalancer
}

var _ Decoration = (*StaggeredDividers)(nil)

func (d *StaggeredDividers) staggered(h Host, p pass) (grid.StaggeredGrid, error) {
	m, ok := p.manager.(*layout.StaggeredGridLayout)
	if !ok {
		return grid.StaggeredGrid{}, illegalLayout(p.manager)
	}
	return grid.StaggeredGrid{
		SpanCount:       m.Spans(),
		Orientation:     m.Orientation,
		LayoutDirection: grid.ObtainLayoutDirection(m.Orientation, h.IsRightToLeft(), m.Reverse),
	}, nil
}

// ItemOffsets returns the space v reserves on each physical edge.
func (d *StaggeredDividers) ItemOffsets(h Host, v ItemView) (geom.Edges, error) {
	var out geom.Edges
	p, ok := begin(h)
	if !ok {
		return out, nil
	}
	if _, ok := p.position(v); !ok {
		return out, nil
	}
	g, err := d.staggered(h, p)
	if err != nil {
		return out, err
	}
	cell := v.StaggeredCell()
	for _, side := range grid.AllSides {
		assign(&out, side, d.balancer.OffsetFromSize(g, cell, side, d.size), g.LayoutDirection)
	}
	return out, nil
}

// Draw paints the dividers of every child of h. Dividers along the scroll
// axis are always painted; cross-axis dividers touching the grid boundary
// only when side dividers are visible.
func (d *StaggeredDividers) Draw(c *canvas.Canvas, h Host) error {
	if d.asSpace {
		return nil
	}
	p, ok := begin(h)
	if !ok {
		return nil
	}
	g, err := d.staggered(h, p)
	if err != nil {
		return err
	}
	for _, v := range h.Children() {
		if _, ok := p.position(v); !ok {
			continue
		}
		d.drawItem(c, g, v)
	}
	return nil
}

func (d *StaggeredDividers) drawItem(c *canvas.Canvas, g grid.StaggeredGrid, v ItemView) {
	rtl := g.LayoutDirection.IsRightToLeft()
	btt := g.LayoutDirection.IsBottomToTop()
	b := paintBounds(v)
	left, top, right, bottom := b.X, b.Y, b.Right(), b.Bottom()
	size := d.size
	adjacent := divider.SidesAdjacentToCell(g, v.StaggeredCell())
	shown := func(side grid.Side) bool {
		return !adjacent.Has(side) || d.sideVisible
	}

	if shown(grid.End) {
		x0, x1 := right, right+size
		if rtl {
			x0, x1 = left-size, left
		}
		d.drawable.Draw(c, geom.FromBounds(x0, top-size, x1, bottom+size), grid.Vertical)
	}
	if shown(grid.Start) {
		x0, x1 := left-size, left
		if rtl {
			x0, x1 = right, right+size
		}
		d.drawable.Draw(c, geom.FromBounds(x0, top-size, x1, bottom+size), grid.Vertical)
	}
	if shown(grid.Top) {
		y0, y1 := top-size, top
		if btt {
			y0, y1 = bottom, bottom+size
		}
		d.drawable.Draw(c, geom.FromBounds(left, y0, right, y1), grid.Horizontal)
	}
	if shown(grid.Bottom) {
		y0, y1 := bottom, bottom+size
		if btt {
			y0, y1 = top-size, top
		}
		d.drawable.Draw(c, geom.FromBounds(left, y0, right, y1), grid.Horizontal)
	}
}
