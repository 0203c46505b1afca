// Package divider identifies the dividers of a grid. A Divider is a unit
// segment at integer grid-intersection coordinates; every predicate takes the
// owning grid explicitly, so a Divider is a plain value with no references.
//
// In a vertical grid originY selects the line (row) and originX the position
// inside it; a horizontal grid swaps the two. The coordinates don't depend on
// the layout direction: "start" is always the logical start.
package divider

import (
	"errors"
	"fmt"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

// ErrOrientationMismatch is returned by AccumulatedSpan when the divider and
// its grid don't share the same orientation.
var ErrOrientationMismatch = errors.New("divider: accumulated span needs a divider with the same orientation of its grid")

// Divider is an oriented unit segment of a grid.
type Divider struct {
	OriginX     int
	OriginY     int
	Orientation grid.Orientation
}

// New returns the divider at (x, y) with orientation o.
func New(x, y int, o grid.Orientation) Divider {
	return Divider{OriginX: x, OriginY: y, Orientation: o}
}

// String formats the divider as "horizontal(1,2)".
func (d Divider) String() string {
	return fmt.Sprintf("%s(%d,%d)", d.Orientation, d.OriginX, d.OriginY)
}

// IsTop reports whether the divider lies on the top side of the grid. In a
// bottom-to-top layout the top divider is drawn at the bottom, since the
// cells start from there.
func (d Divider) IsTop(g *grid.Grid) bool {
	return d.Orientation.IsHorizontal() && d.OriginY == 0
}

// IsBottom reports whether the divider lies on the bottom side of the grid.
// In a horizontal grid only a filled line has a bottom divider.
func (d Divider) IsBottom(g *grid.Grid) bool {
	if d.Orientation.IsVertical() {
		return false
	}
	if g.Orientation.IsVertical() {
		return d.OriginY == g.LinesCount()
	}
	line, ok := lineAt(g, d.OriginX)
	return ok && d.OriginY == line.CellsCount() && g.IsFilled(line)
}

// IsStart reports whether the divider lies on the start side of the grid.
func (d Divider) IsStart(g *grid.Grid) bool {
	return d.Orientation.IsVertical() && d.OriginX == 0
}

// IsEnd reports whether the divider lies on the end side of the grid. In a
// vertical grid only a filled line has an end divider.
func (d Divider) IsEnd(g *grid.Grid) bool {
	if d.Orientation.IsHorizontal() {
		return false
	}
	if g.Orientation.IsHorizontal() {
		return d.OriginX == g.LinesCount()
	}
	line, ok := lineAt(g, d.OriginY)
	return ok && d.OriginX == line.CellsCount() && g.IsFilled(line)
}

// IsBoundary reports whether the divider is on any of the four sides of the
// grid.
func (d Divider) IsBoundary(g *grid.Grid) bool {
	return d.IsTop(g) || d.IsBottom(g) || d.IsStart(g) || d.IsEnd(g)
}

// IsFirst reports whether the divider comes before the first line: the top
// divider of a vertical grid, the start divider of a horizontal one.
func (d Divider) IsFirst(g *grid.Grid) bool {
	if g.Orientation.IsVertical() {
		return d.IsTop(g)
	}
	return d.IsStart(g)
}

// IsLast reports whether the divider comes after the last line.
func (d Divider) IsLast(g *grid.Grid) bool {
	if g.Orientation.IsVertical() {
		return d.IsBottom(g)
	}
	return d.IsEnd(g)
}

// IsSide reports whether the divider is on the cross-axis boundary of the
// grid: start/end in a vertical grid, top/bottom in a horizontal one.
func (d Divider) IsSide(g *grid.Grid) bool {
	if g.Orientation.IsVertical() {
		return d.IsStart(g) || d.IsEnd(g)
	}
	return d.IsTop(g) || d.IsBottom(g)
}

// AccumulatedSpan returns the total span of the cells before the divider in
// its line. It is defined only when the divider has the orientation of g.
func (d Divider) AccumulatedSpan(g *grid.Grid) (int, error) {
	if d.Orientation != g.Orientation {
		return 0, fmt.Errorf("%w (divider %s, grid %s)", ErrOrientationMismatch, d, g.Orientation)
	}
	lineIndex, cellIndex := d.OriginY, d.OriginX
	if g.Orientation.IsHorizontal() {
		lineIndex, cellIndex = d.OriginX, d.OriginY
	}
	line, ok := lineAt(g, lineIndex)
	if !ok || cellIndex > line.CellsCount() {
		return 0, fmt.Errorf("%w: divider %s isn't inside the grid", ErrCellOutOfRange, d)
	}
	span := 0
	for _, c := range line.Cells[:cellIndex] {
		span += c.SpanSize
	}
	return span, nil
}

func lineAt(g *grid.Grid, i int) (grid.Line, bool) {
	if i < 0 || i >= len(g.Lines) {
		return grid.Line{}, false
	}
	return g.Lines[i], true
}
