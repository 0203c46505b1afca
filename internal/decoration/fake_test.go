package decoration

import (
	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/layout"
)

type fakeAdapter struct {
	n         int
	observers map[int]func()
	next      int
}

func (a *fakeAdapter) ItemCount() int { return a.n }

func (a *fakeAdapter) Observe(fn func()) func() {
	if a.observers == nil {
		a.observers = make(map[int]func())
	}
	id := a.next
	a.next++
	a.observers[id] = fn
	return func() { delete(a.observers, id) }
}

func (a *fakeAdapter) notify() {
	for _, fn := range a.observers {
		fn()
	}
}

type fakeView struct {
	pos     int
	bounds  geom.Rect
	margins geom.Edges
	dx, dy  int
	cell    grid.StaggeredCell
}

func (v *fakeView) AdapterPosition() int              { return v.pos }
func (v *fakeView) Bounds() geom.Rect                 { return v.bounds }
func (v *fakeView) Margins() geom.Edges               { return v.margins }
func (v *fakeView) Translation() (int, int)           { return v.dx, v.dy }
func (v *fakeView) StaggeredCell() grid.StaggeredCell { return v.cell }

type fakeHost struct {
	adapter  *fakeAdapter
	manager  layout.Manager
	rtl      bool
	children []ItemView
}

func (h *fakeHost) Adapter() Adapter {
	if h.adapter == nil {
		return nil
	}
	return h.adapter
}
func (h *fakeHost) LayoutManager() layout.Manager { return h.manager }
func (h *fakeHost) IsRightToLeft() bool           { return h.rtl }
func (h *fakeHost) Children() []ItemView          { return h.children }

// hostWith returns a host of n unpositioned items laid out by m.
func hostWith(m layout.Manager, n int) *fakeHost {
	h := &fakeHost{adapter: &fakeAdapter{n: n}, manager: m}
	for i := 0; i < n; i++ {
		h.children = append(h.children, &fakeView{pos: i})
	}
	return h
}

// offsetsOf runs the measure pass over every child of h.
func offsetsOf(d Decoration, h *fakeHost) ([]geom.Edges, error) {
	out := make([]geom.Edges, 0, len(h.children))
	for _, v := range h.children {
		e, err := d.ItemOffsets(h, v)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

type customLayout struct{}

func (customLayout) LayoutName() string { return "CustomLayout" }
