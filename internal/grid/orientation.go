// Package grid models the logical structure of a line-based layout: the
// span count, the orientation, the layout direction and the ordered lines of
// cells. A Grid is immutable once built.
package grid

import "fmt"

// Orientation identifies the axis along which items flow.
type Orientation int

const (
	// Vertical layouts flow top-to-bottom; rows are lines.
	Vertical Orientation = iota
	// Horizontal layouts flow left-to-right; columns are lines.
	Horizontal
)

// IsVertical reports whether o is Vertical.
func (o Orientation) IsVertical() bool { return o == Vertical }

// IsHorizontal reports whether o is Horizontal.
func (o Orientation) IsHorizontal() bool { return o == Horizontal }

// Perpendicular returns the other orientation.
func (o Orientation) Perpendicular() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// String returns the lowercase name used in config files.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// ParseOrientation parses "vertical" or "horizontal".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("grid: unknown orientation %q (want \"vertical\" or \"horizontal\")", s)
	}
}
