package grid

import "strings"

// Side is a logical, direction-independent side of a cell.
type Side int

const (
	Top Side = iota
	Bottom
	// Start is the left side in LTR, the right side in RTL.
	Start
	// End is the right side in LTR, the left side in RTL.
	End
)

// AllSides lists every Side in declaration order.
var AllSides = [...]Side{Top, Bottom, Start, End}

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "side?"
	}
}

// IsLeading reports whether s is Top or Start, the sides that come before a
// cell along an axis.
func (s Side) IsLeading() bool { return s == Top || s == Start }

// Sides is a set of Side values.
type Sides uint8

// SidesOf returns the set holding the given sides.
func SidesOf(sides ...Side) Sides {
	var s Sides
	for _, side := range sides {
		s = s.With(side)
	}
	return s
}

// With returns the set with side added.
func (s Sides) With(side Side) Sides { return s | 1<<uint(side) }

// Has reports whether side is in the set.
func (s Sides) Has(side Side) bool { return s&(1<<uint(side)) != 0 }

// String lists the sides in declaration order, e.g. "{top,end}".
func (s Sides) String() string {
	var names []string
	for _, side := range AllSides {
		if s.Has(side) {
			names = append(names, side.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
