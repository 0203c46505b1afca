package grid

import (
	"reflect"
	"testing"
)

var ltr = LayoutDirection{Horizontal: LeftToRight, Vertical: TopToBottom}

// spansOf flattens a grid to the span sizes of each line.
func spansOf(g *Grid) [][]int {
	out := make([][]int, 0, len(g.Lines))
	for _, l := range g.Lines {
		row := make([]int, 0, len(l.Cells))
		for _, c := range l.Cells {
			row = append(row, c.SpanSize)
		}
		out = append(out, row)
	}
	return out
}

func TestBuild_SingleSpan(t *testing.T) {
	g := Build(Vertical, ltr, 1, UniformSpans{}, 4)
	if g.LinesCount() != 4 {
		t.Fatalf("LinesCount: got %d, want 4", g.LinesCount())
	}
	want := [][]int{{1}, {1}, {1}, {1}}
	if got := spansOf(g); !reflect.DeepEqual(got, want) {
		t.Errorf("lines: got %v, want %v", got, want)
	}
	if g.SpanCount != 1 || g.Orientation != Vertical {
		t.Errorf("grid header: got spanCount=%d orientation=%v", g.SpanCount, g.Orientation)
	}
}

func TestBuild_SingleSpanIgnoresLookup(t *testing.T) {
	g := Build(Horizontal, ltr, 1, SpanSizes{3}, 2)
	want := [][]int{{1}, {1}}
	if got := spansOf(g); !reflect.DeepEqual(got, want) {
		t.Errorf("lines: got %v, want %v", got, want)
	}
}

func TestBuild_Empty(t *testing.T) {
	for _, span := range []int{1, 3} {
		g := Build(Vertical, ltr, span, UniformSpans{}, 0)
		if g.LinesCount() != 0 {
			t.Errorf("spanCount=%d: LinesCount got %d, want 0", span, g.LinesCount())
		}
	}
}

func TestBuild_MultipleSpans(t *testing.T) {
	tests := []struct {
		name      string
		spanCount int
		lookup    SpanSizeLookup
		itemCount int
		want      [][]int
	}{
		{"uniform full lines", 2, UniformSpans{}, 6, [][]int{{1, 1}, {1, 1}, {1, 1}}},
		{"uniform partial last line", 3, UniformSpans{}, 7, [][]int{{1, 1, 1}, {1, 1, 1}, {1}}},
		{"fewer items than spans", 4, UniformSpans{}, 2, [][]int{{1, 1}}},
		{"mixed spans", 3, SpanSizes{1, 2, 3, 1, 1}, 5, [][]int{{1, 2}, {3}, {1, 1}}},
		{"wrapping span", 3, SpanSizes{2, 2, 1}, 3, [][]int{{2}, {2, 1}}},
		{"full span items", 2, SpanSizes{2}, 3, [][]int{{2}, {2}, {2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(Vertical, ltr, tt.spanCount, tt.lookup, tt.itemCount)
			if got := spansOf(g); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines: got %v, want %v", got, tt.want)
			}
			if g.CellsCount() != tt.itemCount {
				t.Errorf("CellsCount: got %d, want %d", g.CellsCount(), tt.itemCount)
			}
		})
	}
}

func TestBuild_LinesNeverExceedSpanCount(t *testing.T) {
	lookups := []SpanSizes{{1}, {1, 2}, {3, 1, 2, 2}, {2, 3, 1}, {4, 1, 1, 1, 1}}
	for _, lookup := range lookups {
		for spanCount := 2; spanCount <= 4; spanCount++ {
			g := Build(Vertical, ltr, spanCount, capped{lookup, spanCount}, 25)
			for i, l := range g.Lines {
				if l.TotalSpan() > spanCount {
					t.Errorf("lookup=%v spanCount=%d line %d: total span %d > %d", lookup, spanCount, i, l.TotalSpan(), spanCount)
				}
			}
		}
	}
}

func TestBuild_UniformLinesAreFilled(t *testing.T) {
	g := Build(Vertical, ltr, 3, UniformSpans{}, 10)
	for i, l := range g.Lines[:len(g.Lines)-1] {
		if !g.IsFilled(l) {
			t.Errorf("line %d not filled: %v", i, spansOf(g)[i])
		}
	}
	if g.IsFilled(g.Lines[len(g.Lines)-1]) {
		t.Error("partial trailing line reported as filled")
	}
}

func TestSpanSizes_SpanIndex(t *testing.T) {
	s := SpanSizes{1, 2, 3, 1, 1}
	want := []int{0, 1, 0, 0, 1}
	for i, w := range want {
		if got := s.SpanIndex(i, 3); got != w {
			t.Errorf("SpanIndex(%d): got %d, want %d", i, got, w)
		}
	}
}

func TestSpanSizes_Defaults(t *testing.T) {
	var empty SpanSizes
	if empty.SpanSize(5) != 1 {
		t.Errorf("empty SpanSize: got %d, want 1", empty.SpanSize(5))
	}
	if (SpanSizes{0, -2}).SpanSize(1) != 1 {
		t.Error("non-positive sizes should count as 1")
	}
	if (SpanSizes{1, 2}).SpanSize(3) != 2 {
		t.Error("sizes should repeat")
	}
}

// capped clamps a lookup's span sizes to the span count.
type capped struct {
	SpanSizes
	spanCount int
}

func (c capped) SpanSize(index int) int {
	return min(c.SpanSizes.SpanSize(index), c.spanCount)
}

func (c capped) SpanIndex(index, spanCount int) int {
	clamped := make(SpanSizes, index+1)
	for i := range clamped {
		clamped[i] = c.SpanSize(i)
	}
	return clamped.SpanIndex(index, spanCount)
}
