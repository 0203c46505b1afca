package grid

// SpanSizeLookup reports how many spans each item occupies and where in its
// line it starts.
type SpanSizeLookup interface {
	// SpanSize returns the number of spans item index occupies (>= 1).
	SpanSize(index int) int
	// SpanIndex returns the position of item index inside its line, in spans.
	SpanIndex(index, spanCount int) int
}

// Build constructs the Grid of a linear or fixed-span layout holding
// itemCount items.
//
// With a single span every item is its own line. Otherwise a new line starts
// whenever the lookup reports span index 0 for an item other than the first.
func Build(o Orientation, dir LayoutDirection, spanCount int, lookup SpanSizeLookup, itemCount int) *Grid {
	if spanCount <= 1 {
		return singleSpan(o, dir, itemCount)
	}
	var lines []Line
	var cells []Cell
	for i := 0; i < itemCount; i++ {
		// Span index is always 0 for the first item, which would add an empty line.
		if i != 0 && lookup.SpanIndex(i, spanCount) == 0 {
			lines = append(lines, Line{Cells: cells})
			cells = nil
		}
		cells = append(cells, Cell{SpanSize: lookup.SpanSize(i)})
	}
	if len(cells) > 0 {
		lines = append(lines, Line{Cells: cells})
	}
	return &Grid{SpanCount: spanCount, Orientation: o, LayoutDirection: dir, Lines: lines}
}

func singleSpan(o Orientation, dir LayoutDirection, itemCount int) *Grid {
	lines := make([]Line, itemCount)
	for i := range lines {
		lines[i] = Line{Cells: []Cell{{SpanSize: 1}}}
	}
	return &Grid{SpanCount: 1, Orientation: o, LayoutDirection: dir, Lines: lines}
}

// UniformSpans is the lookup of a grid where every item occupies one span.
type UniformSpans struct{}

// SpanSize implements SpanSizeLookup.
func (UniformSpans) SpanSize(int) int { return 1 }

// SpanIndex implements SpanSizeLookup.
func (UniformSpans) SpanIndex(index, spanCount int) int {
	if spanCount <= 0 {
		return 0
	}
	return index % spanCount
}

// SpanSizes is a lookup backed by explicit per-item span sizes. The sizes
// repeat when there are more items than entries; an empty SpanSizes behaves
// like UniformSpans. Values below 1 count as 1.
type SpanSizes []int

// SpanSize implements SpanSizeLookup.
func (s SpanSizes) SpanSize(index int) int {
	if len(s) == 0 {
		return 1
	}
	size := s[index%len(s)]
	if size < 1 {
		return 1
	}
	return size
}

// SpanIndex implements SpanSizeLookup. An item that doesn't fit in the spans
// left in the current line wraps to the next one.
func (s SpanSizes) SpanIndex(index, spanCount int) int {
	size := s.SpanSize(index)
	if size >= spanCount {
		return 0
	}
	span := 0
	for i := 0; i < index; i++ {
		prev := s.SpanSize(i)
		span += prev
		if span == spanCount {
			span = 0
		} else if span > spanCount {
			span = prev
		}
	}
	if span+size <= spanCount {
		return span
	}
	return 0
}
