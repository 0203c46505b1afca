package tui

// FocusTarget identifies which panel currently holds keyboard focus.
type FocusTarget int

const (
	FocusPreview   FocusTarget = iota // Left: the rendered list
	FocusInspector                    // Right: item insets and config
)

const focusTargets = 2

// Next returns the next focus target in forward tab order.
func (f FocusTarget) Next() FocusTarget {
	return (f + 1) % focusTargets
}

// Prev returns the previous focus target in reverse tab order.
func (f FocusTarget) Prev() FocusTarget {
	return (f + focusTargets - 1) % focusTargets
}

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusPreview:
		return "preview"
	case FocusInspector:
		return "inspector"
	default:
		return "unknown"
	}
}
