// Package offset balances divider thickness across the cells of a line so
// every cell keeps the same content size.
package offset

import (
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

// NormalizedFromSize returns the share of a divider of the given size that
// the cell at spanIndex reserves on side. The two shares around an interior
// divider always sum to size.
//
// The share is size*n/spanCount for a numerator n that depends on the side
// and on whether side dividers are drawn. It is computed in integers so the
// exact-half case is detected without rounding error.
func NormalizedFromSize(side grid.Side, size, spanCount, spanIndex int, sideDividersVisible bool) int {
	if spanCount <= 0 {
		return 0
	}
	var n int
	if sideDividersVisible {
		n = numeratorWithSideDividers(side, size, spanCount, spanIndex)
	} else {
		n = numeratorWithoutSideDividers(side, size, spanCount, spanIndex)
	}
	return normalize(side, n, spanCount)
}

// normalize rounds n/d to the nearest integer. An exact half is truncated on
// the leading side and rounded up on the trailing side so the complementary
// offsets don't both lose (or both gain) the half cell.
func normalize(side grid.Side, n, d int) int {
	q, r := n/d, n%d
	if 2*r == d {
		if side.IsLeading() {
			return q
		}
		return q + 1
	}
	return (2*n + d) / (2 * d)
}

func numeratorWithSideDividers(side grid.Side, size, spanCount, spanIndex int) int {
	if side.IsLeading() {
		return size * (spanCount - spanIndex)
	}
	return size * (spanIndex + 1)
}

func numeratorWithoutSideDividers(side grid.Side, size, spanCount, spanIndex int) int {
	if side.IsLeading() {
		return size * spanIndex
	}
	return size * (spanCount - 1 - spanIndex)
}
