package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed panel geometry for a given terminal size.
type Layout struct {
	Header, Footer     Rect
	Preview, Inspector Rect
	TooSmall           bool // true when the terminal is below 40×10
}

// Calculate computes the panel layout for a terminal of the given dimensions.
//
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Inspector: 35% of width clamped to [20, 40], right side of the body
//   - Preview: the remaining width, left side of the body
func Calculate(width, height int) Layout {
	if width < 40 || height < 10 {
		return Layout{TooSmall: true}
	}

	bodyH := height - 2

	inspectorW := width * 35 / 100
	if inspectorW < 20 {
		inspectorW = 20
	}
	if inspectorW > 40 {
		inspectorW = 40
	}
	previewW := width - inspectorW

	return Layout{
		Header:    Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer:    Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		Preview:   Rect{X: 0, Y: 1, Width: previewW, Height: bodyH},
		Inspector: Rect{X: previewW, Y: 1, Width: inspectorW, Height: bodyH},
	}
}

// innerDims returns the content size of a bordered panel.
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	h = r.Height - 2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
