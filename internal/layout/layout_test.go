package layout

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

type customLayout struct{}

func (customLayout) LayoutName() string { return "CustomLayout" }

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		m    Manager
		want Kind
	}{
		{"linear", &LinearLayout{}, Lined},
		{"grid", &GridLayout{SpanCount: 3}, Lined},
		{"staggered", &StaggeredGridLayout{SpanCount: 2}, Staggered},
		{"custom", customLayout{}, Unsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.m); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLinesOf(t *testing.T) {
	l, ok := LinesOf(&LinearLayout{Orientation: grid.Horizontal, Reverse: true})
	if !ok || l.SpanCount != 1 || !l.Reverse || l.Orientation != grid.Horizontal {
		t.Errorf("linear: got %+v, %v", l, ok)
	}
	g, ok := LinesOf(&GridLayout{SpanCount: 0})
	if !ok || g.SpanCount != 1 || g.Spans == nil {
		t.Errorf("grid defaults: got %+v, %v", g, ok)
	}
	if _, ok := LinesOf(&StaggeredGridLayout{}); ok {
		t.Error("staggered layout reported as lined")
	}
}

func TestStaggeredGridLayout_IsFullSpan(t *testing.T) {
	s := &StaggeredGridLayout{SpanCount: 2, FullSpan: func(i int) bool { return i%4 == 0 }}
	if !s.IsFullSpan(0) || s.IsFullSpan(1) {
		t.Error("FullSpan predicate not applied")
	}
	if (&StaggeredGridLayout{}).IsFullSpan(0) {
		t.Error("nil FullSpan should mean no full-span items")
	}
	if (&StaggeredGridLayout{}).Spans() != 1 {
		t.Error("zero span count should default to 1")
	}
}
