// Package canvas provides the paint target of the divider engine: a 2D grid
// of terminal cells, each holding a rune and a style key.
//
// Styles are registered on the canvas and referenced by key, so painting
// never renders escape sequences. Render merges consecutive cells with the
// same key into runs and styles each run once.
package canvas

import (
	"github.com/mattn/go-runewidth"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
)

// StyleKey identifies a style registered on a Canvas. The zero key is the
// unstyled default.
type StyleKey int

// Plain is the key of unstyled cells.
const Plain StyleKey = 0

// continuation marks the trailing cells of a wide rune.
const continuation rune = 0

// Cell is a single terminal cell.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Canvas is a fixed-size grid of cells.
type Canvas struct {
	w, h    int
	cells   [][]Cell // [row][col]
	palette []styleEntry
}

// New returns a canvas of w×h blank cells.
func New(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{w: w, h: h, cells: make([][]Cell, h), palette: []styleEntry{{}}}
	for y := range c.cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{Ch: ' '}
		}
		c.cells[y] = row
	}
	return c
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.w }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.h }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() geom.Rect { return geom.Rect{Width: c.w, Height: c.h} }

// InBounds reports whether (x, y) is inside the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

// At returns the cell at (x, y). Out-of-bounds reads return a blank cell.
func (c *Canvas) At(x, y int) Cell {
	if !c.InBounds(x, y) {
		return Cell{Ch: ' '}
	}
	return c.cells[y][x]
}

// Set writes ch at (x, y) and returns the number of columns it occupies.
// Out-of-bounds writes are ignored. A wide rune that doesn't fit before the
// right edge is replaced by a space.
func (c *Canvas) Set(x, y int, ch rune, key StyleKey) int {
	w := runewidth.RuneWidth(ch)
	if w < 1 {
		w = 1
	}
	if !c.InBounds(x, y) {
		return w
	}
	if x+w > c.w {
		ch, w = ' ', 1
	}
	for i := 0; i < w; i++ {
		c.clearWide(x+i, y)
	}
	c.cells[y][x] = Cell{Ch: ch, Style: key}
	for i := 1; i < w; i++ {
		c.cells[y][x+i] = Cell{Ch: continuation, Style: key}
	}
	return w
}

// clearWide blanks the wide rune (x, y) belongs to, if any, so no half of a
// wide rune is left behind by an overwrite.
func (c *Canvas) clearWide(x, y int) {
	row := c.cells[y]
	if row[x].Ch == continuation {
		for i := x - 1; i >= 0; i-- {
			if row[i].Ch != continuation {
				row[i].Ch = ' '
				break
			}
			row[i].Ch = ' '
		}
	}
	for i := x + 1; i < c.w && row[i].Ch == continuation; i++ {
		row[i].Ch = ' '
	}
}

// WriteString writes s starting at (x, y) and returns the column after the
// last written rune.
func (c *Canvas) WriteString(x, y int, s string, key StyleKey) int {
	for _, ch := range s {
		x += c.Set(x, y, ch, key)
	}
	return x
}

// Fill paints every cell of r with ch. Cells outside the canvas are skipped.
func (c *Canvas) Fill(r geom.Rect, ch rune, key StyleKey) {
	r = r.Intersect(c.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); {
			x += c.Set(x, y, ch, key)
		}
	}
}

// Clear resets every cell to an unstyled space.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Ch: ' '}
		}
	}
}
