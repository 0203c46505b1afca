package grid

// HorizontalDirection is the reading direction of a layout.
type HorizontalDirection int

const (
	// LeftToRight places the first items on the left. The default.
	LeftToRight HorizontalDirection = iota
	// RightToLeft places the first items on the right.
	RightToLeft
)

// VerticalDirection is the flow direction of a layout.
type VerticalDirection int

const (
	// TopToBottom places the first items at the top. The default.
	TopToBottom VerticalDirection = iota
	// BottomToTop places the first items at the bottom.
	BottomToTop
)

// LayoutDirection combines the horizontal and vertical directions. It maps
// logical sides to physical edges at render time.
type LayoutDirection struct {
	Horizontal HorizontalDirection
	Vertical   VerticalDirection
}

// IsRightToLeft reports whether the first items are on the right.
func (d LayoutDirection) IsRightToLeft() bool { return d.Horizontal == RightToLeft }

// IsBottomToTop reports whether the first items are at the bottom.
func (d LayoutDirection) IsBottomToTop() bool { return d.Vertical == BottomToTop }

// ObtainLayoutDirection derives the direction of a layout from its
// orientation, the host's text direction and the layout's reverse flag.
//
// A vertical layout is right-to-left only when the host is, and reversing it
// flips the vertical flow. A horizontal layout is reversed along the x axis,
// so reversing it toggles the horizontal direction instead.
func ObtainLayoutDirection(o Orientation, rtl, reversed bool) LayoutDirection {
	fromRight := rtl
	if o.IsHorizontal() {
		fromRight = rtl != reversed
	}
	d := LayoutDirection{Horizontal: LeftToRight, Vertical: TopToBottom}
	if fromRight {
		d.Horizontal = RightToLeft
	}
	if o.IsVertical() && reversed {
		d.Vertical = BottomToTop
	}
	return d
}
