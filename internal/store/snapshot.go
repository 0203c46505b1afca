package store

import (
	"fmt"
	"time"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/canvas"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/listview"
)

// Capture returns the snapshot of v after it was laid out in a viewport of
// width by height cells and painted on c. cfg is the configuration v was
// built from.
func Capture(name, cfg string, width, height int, v *listview.View, c *canvas.Canvas) *Snapshot {
	s := &Snapshot{
		Name:   name,
		Config: cfg,
		Width:  width,
		Height: height,
		Lines:  c.Lines(),
	}
	if m := v.LayoutManager(); m != nil {
		s.Layout = m.LayoutName()
	}
	for _, ch := range v.Items() {
		s.Items = append(s.Items, Item{Position: ch.Position, Offsets: ch.Offsets, Bounds: ch.Rect})
	}
	return s
}

// Write appends s to w as one start record, one record per item, the canvas
// and an end record.
func Write(w Writer, s *Snapshot) error {
	now := time.Now()
	records := []Record{{
		Kind: RecordStart, Timestamp: now, Snapshot: s.Name,
		Config: s.Config, Layout: s.Layout, Width: s.Width, Height: s.Height,
	}}
	for _, it := range s.Items {
		records = append(records, Record{
			Kind: RecordItem, Timestamp: now, Snapshot: s.Name,
			Position: it.Position, Offsets: &it.Offsets, Bounds: &it.Bounds,
		})
	}
	records = append(records,
		Record{Kind: RecordCanvas, Timestamp: now, Snapshot: s.Name, Lines: s.Lines},
		Record{Kind: RecordEnd, Timestamp: now, Snapshot: s.Name},
	)
	for _, r := range records {
		if err := w.Append(r); err != nil {
			return err
		}
	}
	return nil
}

// Compare lists the differences between a recorded snapshot and a fresh
// one. An empty result means they match.
func Compare(want, got *Snapshot) []string {
	var diffs []string
	if want.Layout != got.Layout {
		diffs = append(diffs, fmt.Sprintf("layout: recorded %s, got %s", want.Layout, got.Layout))
	}
	if len(want.Items) != len(got.Items) {
		diffs = append(diffs, fmt.Sprintf("items: recorded %d, got %d", len(want.Items), len(got.Items)))
	}
	for i := 0; i < min(len(want.Items), len(got.Items)); i++ {
		w, g := want.Items[i], got.Items[i]
		if w.Offsets != g.Offsets {
			diffs = append(diffs, fmt.Sprintf("item %d offsets: recorded %+v, got %+v", w.Position, w.Offsets, g.Offsets))
		}
		if w.Bounds != g.Bounds {
			diffs = append(diffs, fmt.Sprintf("item %d bounds: recorded %+v, got %+v", w.Position, w.Bounds, g.Bounds))
		}
	}
	if len(want.Lines) != len(got.Lines) {
		diffs = append(diffs, fmt.Sprintf("rows: recorded %d, got %d", len(want.Lines), len(got.Lines)))
	}
	for i := 0; i < min(len(want.Lines), len(got.Lines)); i++ {
		if want.Lines[i] != got.Lines[i] {
			diffs = append(diffs, fmt.Sprintf("row %d: recorded %q, got %q", i, want.Lines[i], got.Lines[i]))
		}
	}
	return diffs
}
