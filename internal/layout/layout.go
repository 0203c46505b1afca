// Package layout describes how a list view arranges its items. The set of
// layouts is closed: LinearLayout and GridLayout place items on precomputed
// lines, StaggeredGridLayout lets the view decide placement while laying
// out. Any other Manager is unsupported by the decorations.
package layout

import (
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

// Manager arranges the items of a list view.
type Manager interface {
	// LayoutName names the layout in error messages.
	LayoutName() string
}

// Kind is the family a Manager belongs to.
type Kind int

const (
	// Unsupported is any Manager defined outside this package.
	Unsupported Kind = iota
	// Lined layouts place items on precomputed lines.
	Lined
	// Staggered layouts decide placement while laying out.
	Staggered
)

func (k Kind) String() string {
	switch k {
	case Lined:
		return "lined"
	case Staggered:
		return "staggered"
	}
	return "unsupported"
}

// KindOf classifies m.
func KindOf(m Manager) Kind {
	switch m.(type) {
	case lined:
		return Lined
	case *StaggeredGridLayout:
		return Staggered
	}
	return Unsupported
}

// Lines holds the properties of a lined layout.
type Lines struct {
	Orientation grid.Orientation
	Reverse     bool
	SpanCount   int
	Spans       grid.SpanSizeLookup
}

type lined interface {
	Manager
	lines() Lines
}

// LinesOf returns the properties of a lined layout.
func LinesOf(m Manager) (Lines, bool) {
	l, ok := m.(lined)
	if !ok {
		return Lines{}, false
	}
	return l.lines(), true
}

// LinearLayout places one item per line.
type LinearLayout struct {
	Orientation grid.Orientation
	Reverse     bool
}

// LayoutName implements Manager.
func (*LinearLayout) LayoutName() string { return "LinearLayout" }

func (l *LinearLayout) lines() Lines {
	return Lines{Orientation: l.Orientation, Reverse: l.Reverse, SpanCount: 1, Spans: grid.UniformSpans{}}
}

// GridLayout places items on lines of SpanCount spans. Spans gives the span
// size of each item; nil means every item takes one span.
type GridLayout struct {
	Orientation grid.Orientation
	Reverse     bool
	SpanCount   int
	Spans       grid.SpanSizeLookup
}

// LayoutName implements Manager.
func (*GridLayout) LayoutName() string { return "GridLayout" }

func (l *GridLayout) lines() Lines {
	spans := l.Spans
	if spans == nil {
		spans = grid.UniformSpans{}
	}
	return Lines{Orientation: l.Orientation, Reverse: l.Reverse, SpanCount: max(l.SpanCount, 1), Spans: spans}
}

// StaggeredGridLayout places each item in the shortest of SpanCount spans.
// FullSpan marks the items occupying every span.
type StaggeredGridLayout struct {
	Orientation grid.Orientation
	Reverse     bool
	SpanCount   int
	FullSpan    func(index int) bool
}

// LayoutName implements Manager.
func (*StaggeredGridLayout) LayoutName() string { return "StaggeredGridLayout" }

// IsFullSpan reports whether the item at index occupies every span.
func (l *StaggeredGridLayout) IsFullSpan(index int) bool {
	return l.FullSpan != nil && l.FullSpan(index)
}

// Spans returns the span count, at least 1.
func (l *StaggeredGridLayout) Spans() int { return max(l.SpanCount, 1) }
