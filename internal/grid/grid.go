package grid

// Cell is a single item's span size. SpanSize is at least 1.
type Cell struct {
	SpanSize int
}

// Line is one row of a vertical grid or one column of a horizontal grid.
type Line struct {
	Cells []Cell
}

// CellsCount returns the number of items in the line.
func (l Line) CellsCount() int { return len(l.Cells) }

// TotalSpan returns the sum of the span sizes of the line's cells.
func (l Line) TotalSpan() int {
	total := 0
	for _, c := range l.Cells {
		total += c.SpanSize
	}
	return total
}

// Grid is the precomputed structure of a linear or fixed-span layout.
type Grid struct {
	SpanCount       int
	Orientation     Orientation
	LayoutDirection LayoutDirection
	Lines           []Line
}

// LinesCount returns the number of rows in a vertical grid, the number of
// columns in a horizontal grid.
func (g *Grid) LinesCount() int { return len(g.Lines) }

// CellsCount returns the number of cells across all lines.
func (g *Grid) CellsCount() int {
	n := 0
	for _, l := range g.Lines {
		n += len(l.Cells)
	}
	return n
}

// IsFilled reports whether the line's cells occupy every span of the grid.
// A partially filled trailing line is not filled.
func (g *Grid) IsFilled(l Line) bool {
	return l.TotalSpan() == g.SpanCount
}
