package offset

import (
	"github.com/LISSConsulting/LISSTech.Gutter/internal/divider"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

// Provider returns the offset a cell reserves on side for a divider of the
// given size.
type Provider interface {
	OffsetFromSize(g *grid.Grid, d divider.Divider, side grid.Side, size int) (int, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(g *grid.Grid, d divider.Divider, side grid.Side, size int) (int, error)

// OffsetFromSize calls f.
func (f ProviderFunc) OffsetFromSize(g *grid.Grid, d divider.Divider, side grid.Side, size int) (int, error) {
	return f(g, d, side, size)
}

// Balancer is the default Provider. Boundary dividers keep their full size;
// dividers along the scroll axis are reserved entirely by the cell before
// them; dividers inside a line are split between the two cells they separate.
type Balancer struct {
	SideDividersVisible bool
}

// OffsetFromSize implements Provider.
func (b Balancer) OffsetFromSize(g *grid.Grid, d divider.Divider, side grid.Side, size int) (int, error) {
	if d.IsBoundary(g) {
		return size, nil
	}
	if leads, ok := scrollAxis(g.Orientation, side); ok {
		if leads {
			return 0, nil
		}
		return size, nil
	}
	acc, err := d.AccumulatedSpan(g)
	if err != nil {
		return 0, err
	}
	spanIndex := acc
	if !side.IsLeading() {
		spanIndex = acc - 1
	}
	return NormalizedFromSize(side, size, g.SpanCount, spanIndex, b.SideDividersVisible), nil
}

// StaggeredBalancer balances the dividers of a staggered grid, where only the
// span index of each cell is known.
type StaggeredBalancer struct {
	SideDividersVisible bool
}

// OffsetFromSize returns the offset the cell reserves on side.
func (b StaggeredBalancer) OffsetFromSize(g grid.StaggeredGrid, c grid.StaggeredCell, side grid.Side, size int) int {
	if divider.SidesAdjacentToCell(g, c).Has(side) {
		if b.SideDividersVisible {
			return size
		}
		return 0
	}
	if leads, ok := scrollAxis(g.Orientation, side); ok {
		if leads {
			return 0
		}
		return size
	}
	index := c.SpanIndex
	if g.Orientation.IsVertical() && g.LayoutDirection.IsRightToLeft() {
		// Span 0 stays on the left, so it's the last one in reading order.
		index = g.SpanCount - 1 - index
	}
	return NormalizedFromSize(side, size, g.SpanCount, index, b.SideDividersVisible)
}

// scrollAxis reports whether side lies across the scroll axis of a grid with
// orientation o, and if so whether it's the leading one.
func scrollAxis(o grid.Orientation, side grid.Side) (leads, ok bool) {
	switch {
	case o.IsVertical() && side == grid.Top, o.IsHorizontal() && side == grid.Start:
		return true, true
	case o.IsVertical() && side == grid.Bottom, o.IsHorizontal() && side == grid.End:
		return false, true
	}
	return false, false
}
