// Package decoration reserves space for dividers around the items of a list
// view and paints them. Dividers handles linear and grid layouts;
// StaggeredDividers handles staggered grids.
//
// Both run in two passes driven by the host: ItemOffsets during layout,
// Draw during paint. The grid of a lined layout is built once per
// (span count, item count) and cached per attached host until the adapter
// reports a change.
package decoration

import (
	"github.com/LISSConsulting/LISSTech.Gutter/internal/canvas"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/layout"
)

// NoPosition is the adapter position of a view that isn't bound to an item.
const NoPosition = -1

// Host is the list view a decoration serves.
type Host interface {
	// Adapter returns the item source, or nil.
	Adapter() Adapter
	// LayoutManager returns the layout, or nil.
	LayoutManager() layout.Manager
	// IsRightToLeft reports the reading direction of the host.
	IsRightToLeft() bool
	// Children returns the views currently laid out.
	Children() []ItemView
}

// Adapter is the item source of a Host.
type Adapter interface {
	ItemCount() int
	// Observe registers fn to run after any structural change and returns
	// a function removing the registration.
	Observe(fn func()) (cancel func())
}

// ItemView is a laid out item.
type ItemView interface {
	// AdapterPosition returns the item index, or NoPosition.
	AdapterPosition() int
	Bounds() geom.Rect
	Margins() geom.Edges
	// Translation returns the in-flight offset of the view.
	Translation() (dx, dy int)
	// StaggeredCell returns the placement chosen by a staggered layout.
	StaggeredCell() grid.StaggeredCell
}

// Decoration is what a Host drives during its passes.
type Decoration interface {
	ItemOffsets(h Host, v ItemView) (geom.Edges, error)
	Draw(c *canvas.Canvas, h Host) error
	Attach(h Host)
	Detach(h Host)
}

// pass holds what both passes need from the host. ok is false when there's
// nothing to decorate.
type pass struct {
	itemCount int
	manager   layout.Manager
}

func begin(h Host) (pass, bool) {
	a := h.Adapter()
	if a == nil {
		return pass{}, false
	}
	n := a.ItemCount()
	if n == 0 {
		return pass{}, false
	}
	m := h.LayoutManager()
	if m == nil {
		return pass{}, false
	}
	return pass{itemCount: n, manager: m}, true
}

// position returns the item index of v, or false when v isn't bound to an
// item of the current adapter.
func (p pass) position(v ItemView) (int, bool) {
	i := v.AdapterPosition()
	if i == NoPosition || i < 0 || i >= p.itemCount {
		return 0, false
	}
	return i, true
}

// paintBounds returns the bounds of v grown by its margins and shifted by its
// translation.
func paintBounds(v ItemView) geom.Rect {
	dx, dy := v.Translation()
	return v.Bounds().Outset(v.Margins()).Translate(dx, dy)
}

// assign stores off on the physical edge of side.
func assign(out *geom.Edges, side grid.Side, off int, dir grid.LayoutDirection) {
	switch side {
	case grid.Top:
		if dir.IsBottomToTop() {
			out.Bottom = off
		} else {
			out.Top = off
		}
	case grid.Bottom:
		if dir.IsBottomToTop() {
			out.Top = off
		} else {
			out.Bottom = off
		}
	case grid.Start:
		if dir.IsRightToLeft() {
			out.Right = off
		} else {
			out.Left = off
		}
	case grid.End:
		if dir.IsRightToLeft() {
			out.Left = off
		} else {
			out.Right = off
		}
	}
}
