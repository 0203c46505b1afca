package decoration

import (
	"fmt"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/layout"
)

// IllegalLayoutError is returned when a decoration is driven by a layout it
// can't handle.
type IllegalLayoutError struct {
	// Layout names the offending layout.
	Layout string
	// Suggested names the decoration handling Layout, if any.
	Suggested string
}

func (e *IllegalLayoutError) Error() string {
	if e.Suggested == "" {
		return fmt.Sprintf("the layout manager %s isn't supported", e.Layout)
	}
	return fmt.Sprintf("use %s to handle dividers in a %s", e.Suggested, e.Layout)
}

func illegalLayout(m layout.Manager) *IllegalLayoutError {
	e := &IllegalLayoutError{Layout: m.LayoutName()}
	switch layout.KindOf(m) {
	case layout.Lined:
		e.Suggested = "Dividers"
	case layout.Staggered:
		e.Suggested = "StaggeredDividers"
	}
	return e
}
