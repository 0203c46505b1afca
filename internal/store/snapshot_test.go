package store_test

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/decoration"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/layout"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/listview"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/provider"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/store"

	"github.com/charmbracelet/lipgloss"
)

func capture(t *testing.T, labels ...string) *store.Snapshot {
	t.Helper()
	v := listview.New(listview.NewStringAdapter(labels...), &layout.LinearLayout{Orientation: grid.Vertical})
	v.AddDecoration(decoration.New(decoration.Options{Drawable: provider.FixedDrawable{D: provider.Line(lipgloss.NewStyle())}}))
	c, err := v.Render(3, 0)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return store.Capture("default", "", 3, 0, v, c)
}

func TestCapture(t *testing.T) {
	s := capture(t, "a", "b")
	if s.Layout != "LinearLayout" {
		t.Errorf("layout: got %q", s.Layout)
	}
	want := []store.Item{
		{Position: 0, Offsets: geom.Edges{Bottom: 1}, Bounds: geom.Rect{Width: 3, Height: 1}},
		{Position: 1, Bounds: geom.Rect{Y: 2, Width: 3, Height: 1}},
	}
	if len(s.Items) != len(want) {
		t.Fatalf("items: got %d, want %d", len(s.Items), len(want))
	}
	for i := range want {
		if s.Items[i] != want[i] {
			t.Errorf("item %d: got %+v, want %+v", i, s.Items[i], want[i])
		}
	}
	if got := len(s.Lines); got != 3 {
		t.Errorf("lines: got %d, want 3", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name  string
		got   *store.Snapshot
		diffs int
	}{
		{"same", capture(t, "a", "b"), 0},
		{"different label", capture(t, "a", "c"), 1},
		{"extra item", capture(t, "a", "b", "c"), 3},
	}
	want := capture(t, "a", "b")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.Compare(want, tt.got); len(got) != tt.diffs {
				t.Errorf("got %d differences %q, want %d", len(got), got, tt.diffs)
			}
		})
	}
}
