package divider

import (
	"errors"
	"testing"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

func TestAroundCell_Vertical(t *testing.T) {
	g := gridOf(grid.Vertical, 2, 2, 2, 1)
	got, err := AroundCell(g, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Around{
		Start:  New(1, 1, grid.Vertical),
		Top:    New(1, 1, grid.Horizontal),
		End:    New(2, 1, grid.Vertical),
		Bottom: New(1, 2, grid.Horizontal),
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.Side(grid.End) != want.End || got.Side(grid.Top) != want.Top {
		t.Errorf("Side accessor doesn't match fields")
	}
}

func TestAroundCell_Horizontal(t *testing.T) {
	g := gridOf(grid.Horizontal, 2, 2, 2, 1)
	got, err := AroundCell(g, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Around{
		Start:  New(2, 0, grid.Vertical),
		Top:    New(2, 0, grid.Horizontal),
		End:    New(3, 0, grid.Vertical),
		Bottom: New(2, 1, grid.Horizontal),
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestAroundCell_OutOfRange(t *testing.T) {
	g := gridOf(grid.Vertical, 2, 2, 1)
	for _, index := range []int{-1, 3, 10} {
		if _, err := AroundCell(g, index); !errors.Is(err, ErrCellOutOfRange) {
			t.Errorf("index %d: got %v, want ErrCellOutOfRange", index, err)
		}
	}
}

func TestSidesAdjacentToCell(t *testing.T) {
	rtl := grid.LayoutDirection{Horizontal: grid.RightToLeft, Vertical: grid.TopToBottom}
	tests := []struct {
		name string
		g    grid.StaggeredGrid
		cell grid.StaggeredCell
		want grid.Sides
	}{
		{"vertical single column", grid.StaggeredGrid{SpanCount: 1, Orientation: grid.Vertical, LayoutDirection: ltr},
			grid.StaggeredCell{SpanIndex: 0}, grid.SidesOf(grid.Start, grid.End)},
		{"vertical first column", grid.StaggeredGrid{SpanCount: 3, Orientation: grid.Vertical, LayoutDirection: ltr},
			grid.StaggeredCell{SpanIndex: 0}, grid.SidesOf(grid.Start)},
		{"vertical middle column", grid.StaggeredGrid{SpanCount: 3, Orientation: grid.Vertical, LayoutDirection: ltr},
			grid.StaggeredCell{SpanIndex: 1}, grid.SidesOf()},
		{"vertical last column", grid.StaggeredGrid{SpanCount: 3, Orientation: grid.Vertical, LayoutDirection: ltr},
			grid.StaggeredCell{SpanIndex: 2}, grid.SidesOf(grid.End)},
		{"vertical full span", grid.StaggeredGrid{SpanCount: 3, Orientation: grid.Vertical, LayoutDirection: ltr},
			grid.StaggeredCell{SpanIndex: 0, FullSpan: true}, grid.SidesOf(grid.Start, grid.End)},
		{"vertical rtl first column", grid.StaggeredGrid{SpanCount: 2, Orientation: grid.Vertical, LayoutDirection: rtl},
			grid.StaggeredCell{SpanIndex: 0}, grid.SidesOf(grid.End)},
		{"vertical rtl last column", grid.StaggeredGrid{SpanCount: 2, Orientation: grid.Vertical, LayoutDirection: rtl},
			grid.StaggeredCell{SpanIndex: 1}, grid.SidesOf(grid.Start)},
		{"horizontal first row", grid.StaggeredGrid{SpanCount: 2, Orientation: grid.Horizontal, LayoutDirection: rtl},
			grid.StaggeredCell{SpanIndex: 0}, grid.SidesOf(grid.Top)},
		{"horizontal last row", grid.StaggeredGrid{SpanCount: 2, Orientation: grid.Horizontal, LayoutDirection: ltr},
			grid.StaggeredCell{SpanIndex: 1}, grid.SidesOf(grid.Bottom)},
		{"horizontal full span", grid.StaggeredGrid{SpanCount: 2, Orientation: grid.Horizontal, LayoutDirection: ltr},
			grid.StaggeredCell{FullSpan: true}, grid.SidesOf(grid.Top, grid.Bottom)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SidesAdjacentToCell(tt.g, tt.cell); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAroundCell_NeighboursShareDividers(t *testing.T) {
	tests := []struct {
		name      string
		spanCount int
		spans     grid.SpanSizeLookup
		items     int
	}{
		{"uniform spans", 3, grid.UniformSpans{}, 9},
		{"mixed spans", 4, grid.SpanSizes{2, 1, 1}, 9},
		{"partial trailing line", 3, grid.UniformSpans{}, 7},
		{"single span", 1, grid.UniformSpans{}, 4},
	}
	for _, tt := range tests {
		for _, o := range []grid.Orientation{grid.Vertical, grid.Horizontal} {
			t.Run(tt.name+" "+o.String(), func(t *testing.T) {
				g := grid.Build(o, ltr, tt.spanCount, tt.spans, tt.items)
				around := func(i int) Around {
					a, err := AroundCell(g, i)
					if err != nil {
						t.Fatalf("cell %d: unexpected error: %v", i, err)
					}
					return a
				}
				// A cell's inLine side faces the inLineNext side of the next
				// cell of its line; across faces acrossNext in the next line.
				inLine, inLineNext := grid.End, grid.Start
				across, acrossNext := grid.Bottom, grid.Top
				if o.IsHorizontal() {
					inLine, inLineNext = grid.Bottom, grid.Top
					across, acrossNext = grid.End, grid.Start
				}
				first := 0
				for l, line := range g.Lines {
					for k := 0; k+1 < line.CellsCount(); k++ {
						i := first + k
						got, want := around(i).Side(inLine), around(i+1).Side(inLineNext)
						if got != want {
							t.Errorf("line %d cells %d/%d: %v != %v", l, i, i+1, got, want)
						}
					}
					next := first + line.CellsCount()
					if l+1 < len(g.Lines) {
						got, want := around(first).Side(across), around(next).Side(acrossNext)
						if lineCoord(o, got) != lineCoord(o, want) {
							t.Errorf("lines %d/%d: %v and %v aren't on the same line boundary", l, l+1, got, want)
						}
					}
					first = next
				}
			})
		}
	}
}

// lineCoord returns the coordinate of d that identifies a line boundary.
func lineCoord(o grid.Orientation, d Divider) int {
	if o.IsVertical() {
		return d.OriginY
	}
	return d.OriginX
}
