package listview

import (
	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

// frame converts between cells and the logical space layouts work in. In
// logical space items flow down the Y axis, spans run along the X axis and
// the first item is at the origin.
type frame struct {
	horizontal bool
	dir        grid.LayoutDirection
}

// cross returns the viewport size across the scroll axis.
func (f frame) cross(width, height int) int {
	if f.horizontal {
		return height
	}
	return width
}

// logical maps physical edges to logical ones.
func (f frame) logical(e geom.Edges) geom.Edges {
	if f.dir.IsRightToLeft() {
		e.Left, e.Right = e.Right, e.Left
	}
	if f.dir.IsBottomToTop() {
		e.Top, e.Bottom = e.Bottom, e.Top
	}
	if f.horizontal {
		e = geom.Edges{Top: e.Left, Bottom: e.Right, Left: e.Top, Right: e.Bottom}
	}
	return e
}

// physical maps a logical rect inside a logical area of cross by main
// cells to cells.
func (f frame) physical(r geom.Rect, cross, main int) geom.Rect {
	w, h := cross, main
	if f.horizontal {
		r = geom.Rect{X: r.Y, Y: r.X, Width: r.Height, Height: r.Width}
		w, h = main, cross
	}
	if f.dir.IsRightToLeft() {
		r.X = w - r.Right()
	}
	if f.dir.IsBottomToTop() {
		r.Y = h - r.Bottom()
	}
	return r
}
