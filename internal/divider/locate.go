package divider

import (
	"errors"
	"fmt"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

// ErrCellOutOfRange is returned when a cell index isn't contained in any line
// of the grid. It means the grid and the host disagree on the item count.
var ErrCellOutOfRange = errors.New("divider: cell out of range")

// Around holds the four dividers adjacent to a cell.
type Around struct {
	Top, Bottom, Start, End Divider
}

// Side returns the divider on the given side.
func (a Around) Side(s grid.Side) Divider {
	switch s {
	case grid.Top:
		return a.Top
	case grid.Bottom:
		return a.Bottom
	case grid.Start:
		return a.Start
	default:
		return a.End
	}
}

// AroundCell returns the dividers on the four sides of the cell at the given
// absolute index.
func AroundCell(g *grid.Grid, index int) (Around, error) {
	line, cell, err := locate(g, index)
	if err != nil {
		return Around{}, err
	}
	if g.Orientation.IsVertical() {
		return Around{
			Start:  New(cell, line, grid.Vertical),
			Top:    New(cell, line, grid.Horizontal),
			End:    New(cell+1, line, grid.Vertical),
			Bottom: New(cell, line+1, grid.Horizontal),
		}, nil
	}
	return Around{
		Start:  New(line, cell, grid.Vertical),
		Top:    New(line, cell, grid.Horizontal),
		End:    New(line+1, cell, grid.Vertical),
		Bottom: New(line, cell+1, grid.Horizontal),
	}, nil
}

// locate resolves an absolute cell index to its line and its position inside
// the line.
func locate(g *grid.Grid, index int) (line, cell int, err error) {
	if index >= 0 {
		seen := 0
		for i, l := range g.Lines {
			if index < seen+len(l.Cells) {
				return i, index - seen, nil
			}
			seen += len(l.Cells)
		}
	}
	return 0, 0, fmt.Errorf("%w: the grid doesn't contain the item at position %d", ErrCellOutOfRange, index)
}

// SidesAdjacentToCell returns the sides of a staggered cell that touch the
// boundary of the grid. Only the cross-axis sides are ever reported: start
// and end in a vertical grid, top and bottom in a horizontal one.
func SidesAdjacentToCell(g grid.StaggeredGrid, c grid.StaggeredCell) grid.Sides {
	first := c.SpanIndex == 0
	last := c.FullSpan || c.SpanIndex == g.SpanCount-1
	if g.Orientation.IsHorizontal() {
		var s grid.Sides
		if first {
			s = s.With(grid.Top)
		}
		if last {
			s = s.With(grid.Bottom)
		}
		return s
	}
	left, right := first, last
	if g.LayoutDirection.IsRightToLeft() {
		left, right = right, left
	}
	var s grid.Sides
	if left {
		s = s.With(grid.Start)
	}
	if right {
		s = s.With(grid.End)
	}
	return s
}
