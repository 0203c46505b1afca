package listview

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/canvas"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/decoration"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/layout"
)

// View lays out the items of an Adapter and hosts decorations.
//
// Items are laid out on every call to Layout. Changing the adapter, the
// layout manager or the reading direction re-attaches every decoration so
// that nothing computed for the previous configuration survives. Span sizes
// of a layout changed in place are only picked up by SetLayoutManager.
type View struct {
	adapter     Adapter
	manager     layout.Manager
	rtl         bool
	decorations []decoration.Decoration

	extents    []int
	margin     geom.Edges
	labelStyle lipgloss.Style

	children      []*Child
	width, height int
	contentW      int
	contentH      int
}

// New returns a view over a laid out by m.
func New(a Adapter, m layout.Manager) *View {
	return &View{adapter: a, manager: m}
}

// Adapter implements decoration.Host.
func (v *View) Adapter() decoration.Adapter {
	if v.adapter == nil {
		return nil
	}
	return v.adapter
}

// LayoutManager implements decoration.Host.
func (v *View) LayoutManager() layout.Manager { return v.manager }

// IsRightToLeft implements decoration.Host.
func (v *View) IsRightToLeft() bool { return v.rtl }

// Children implements decoration.Host.
func (v *View) Children() []decoration.ItemView {
	out := make([]decoration.ItemView, len(v.children))
	for i, c := range v.children {
		out[i] = c
	}
	return out
}

// Items returns the children laid out by the last call to Layout.
func (v *View) Items() []*Child { return v.children }

// Decorations returns the attached decorations in paint order.
func (v *View) Decorations() []decoration.Decoration { return v.decorations }

// SetAdapter replaces the item source.
func (v *View) SetAdapter(a Adapter) {
	v.adapter = a
	v.reattach()
}

// SetLayoutManager replaces the layout.
func (v *View) SetLayoutManager(m layout.Manager) {
	v.manager = m
	v.reattach()
}

// SetRightToLeft sets the reading direction.
func (v *View) SetRightToLeft(rtl bool) {
	if v.rtl == rtl {
		return
	}
	v.rtl = rtl
	v.reattach()
}

// SetItemExtents sets the size of the items along the scroll axis. The
// extents repeat when there are more items than values. The default is 1.
func (v *View) SetItemExtents(extents ...int) { v.extents = extents }

// SetItemMargins sets the margins of every item.
func (v *View) SetItemMargins(e geom.Edges) { v.margin = e }

// SetLabelStyle sets the style the labels are painted with.
func (v *View) SetLabelStyle(s lipgloss.Style) { v.labelStyle = s }

// AddDecoration attaches d. A decoration added twice moves to the end of
// the paint order.
func (v *View) AddDecoration(d decoration.Decoration) {
	v.RemoveDecoration(d)
	v.decorations = append(v.decorations, d)
	d.Attach(v)
}

// RemoveDecoration detaches d.
func (v *View) RemoveDecoration(d decoration.Decoration) {
	i := slices.Index(v.decorations, d)
	if i < 0 {
		return
	}
	v.decorations = slices.Delete(v.decorations, i, i+1)
	d.Detach(v)
}

func (v *View) reattach() {
	for _, d := range v.decorations {
		d.Attach(v)
	}
}

func (v *View) extent(index int) int {
	if len(v.extents) == 0 {
		return 1
	}
	return max(v.extents[index%len(v.extents)], 1)
}

// ContentSize returns the size of the area covered by the last layout.
func (v *View) ContentSize() (width, height int) { return v.contentW, v.contentH }

// Layout places every item in a viewport of the given size. The viewport
// bounds the axis across the scroll direction; the content grows freely
// along it.
func (v *View) Layout(width, height int) error {
	v.width, v.height = max(width, 0), max(height, 0)
	n := 0
	if v.adapter != nil {
		n = v.adapter.ItemCount()
	}
	v.children = make([]*Child, n)
	for i := range v.children {
		v.children[i] = &Child{Position: i, Label: v.adapter.Label(i), Margin: v.margin}
	}
	if m, ok := v.manager.(*layout.StaggeredGridLayout); ok {
		return v.layoutStaggered(m)
	}
	lines, ok := layout.LinesOf(v.manager)
	if !ok {
		lines = layout.Lines{Orientation: grid.Vertical, SpanCount: 1, Spans: grid.UniformSpans{}}
	}
	return v.layoutLines(lines)
}

func (v *View) layoutLines(l layout.Lines) error {
	dir := grid.ObtainLayoutDirection(l.Orientation, v.rtl, l.Reverse)
	f := frame{horizontal: l.Orientation.IsHorizontal(), dir: dir}
	g := grid.Build(l.Orientation, dir, l.SpanCount, l.Spans, len(v.children))
	cross := max(f.cross(v.width, v.height), g.SpanCount)
	for _, c := range v.children {
		if err := v.measure(c); err != nil {
			return err
		}
	}
	main, i := 0, 0
	for _, line := range g.Lines {
		cells := v.children[i : i+line.CellsCount()]
		extent := 0
		for _, c := range cells {
			e := f.logical(c.Offsets.Add(c.Margin))
			extent = max(extent, e.Vertical()+v.extent(c.Position))
		}
		span := 0
		for k, c := range cells {
			end := min(span+line.Cells[k].SpanSize, g.SpanCount)
			x0, x1 := span*cross/g.SpanCount, end*cross/g.SpanCount
			span = end
			outer := geom.Rect{X: x0, Y: main, Width: x1 - x0, Height: extent}
			c.Rect = clamp(outer.Inset(f.logical(c.Offsets.Add(c.Margin))))
		}
		main += extent
		i += len(cells)
	}
	v.place(f, cross, main)
	return nil
}

func (v *View) layoutStaggered(m *layout.StaggeredGridLayout) error {
	dir := grid.ObtainLayoutDirection(m.Orientation, v.rtl, m.Reverse)
	if m.Orientation.IsVertical() {
		// Spans of a vertical staggered grid keep their left to right order
		// whatever the reading direction.
		dir.Horizontal = grid.LeftToRight
	}
	f := frame{horizontal: m.Orientation.IsHorizontal(), dir: dir}
	spans := m.Spans()
	cross := max(f.cross(v.width, v.height), spans)
	ends := make([]int, spans)
	for _, c := range v.children {
		full := m.IsFullSpan(c.Position)
		span := shortest(ends)
		start := ends[span]
		x0, x1 := span*cross/spans, (span+1)*cross/spans
		if full {
			span, start = 0, slices.Max(ends)
			x0, x1 = 0, cross
		}
		c.Cell = grid.StaggeredCell{SpanIndex: span, FullSpan: full}
		if err := v.measure(c); err != nil {
			return err
		}
		e := f.logical(c.Offsets.Add(c.Margin))
		extent := e.Vertical() + v.extent(c.Position)
		outer := geom.Rect{X: x0, Y: start, Width: x1 - x0, Height: extent}
		c.Rect = clamp(outer.Inset(e))
		if full {
			for k := range ends {
				ends[k] = start + extent
			}
		} else {
			ends[span] = start + extent
		}
	}
	v.place(f, cross, slices.Max(ends))
	return nil
}

// measure sums the offsets every decoration reserves around c.
func (v *View) measure(c *Child) error {
	var off geom.Edges
	for _, d := range v.decorations {
		e, err := d.ItemOffsets(v, c)
		if err != nil {
			return fmt.Errorf("listview: measure item %d: %w", c.Position, err)
		}
		off = off.Add(e)
	}
	c.Offsets = off
	return nil
}

// place maps the logical rects of the children to cells.
func (v *View) place(f frame, cross, main int) {
	for _, c := range v.children {
		c.Rect = f.physical(c.Rect, cross, main)
	}
	v.contentW, v.contentH = cross, main
	if f.horizontal {
		v.contentW, v.contentH = main, cross
	}
}

// shortest returns the first span with the lowest end.
func shortest(ends []int) int {
	best := 0
	for i, e := range ends {
		if e < ends[best] {
			best = i
		}
	}
	return best
}

func clamp(r geom.Rect) geom.Rect {
	r.Width = max(r.Width, 0)
	r.Height = max(r.Height, 0)
	return r
}

// Draw paints the item labels then lets every decoration paint.
func (v *View) Draw(c *canvas.Canvas) error {
	key := c.Register(v.labelStyle)
	for _, ch := range v.children {
		dx, dy := ch.Translation()
		r := ch.Rect.Translate(dx, dy)
		if r.IsEmpty() {
			continue
		}
		c.WriteString(r.X, r.Y, runewidth.Truncate(ch.Label, r.Width, ""), key)
	}
	for _, d := range v.decorations {
		if err := d.Draw(c, v); err != nil {
			return fmt.Errorf("listview: draw: %w", err)
		}
	}
	return nil
}

// Render lays out the view in a viewport of the given size and paints it on
// a canvas covering the content.
func (v *View) Render(width, height int) (*canvas.Canvas, error) {
	if err := v.Layout(width, height); err != nil {
		return nil, err
	}
	c := canvas.New(v.ContentSize())
	if err := v.Draw(c); err != nil {
		return nil, err
	}
	return c, nil
}
