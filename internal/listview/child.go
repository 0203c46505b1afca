package listview

import (
	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

// Child is a laid out item.
type Child struct {
	Position int
	Label    string
	// Rect is the content area, excluding the offsets reserved by the
	// decorations.
	Rect    geom.Rect
	Margin  geom.Edges
	DX, DY  int
	Cell    grid.StaggeredCell
	Offsets geom.Edges
}

// AdapterPosition returns the item index.
func (c *Child) AdapterPosition() int { return c.Position }

// Bounds returns the content area.
func (c *Child) Bounds() geom.Rect { return c.Rect }

// Margins returns the margins around the content area.
func (c *Child) Margins() geom.Edges { return c.Margin }

// Translation returns the in-flight offset of the child.
func (c *Child) Translation() (int, int) { return c.DX, c.DY }

// StaggeredCell returns the span placement of the child in a staggered
// layout.
func (c *Child) StaggeredCell() grid.StaggeredCell { return c.Cell }
