package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Scroller is a scrollable block of pre-rendered lines that wraps
// bubbles/viewport. Replacing the content keeps the scroll position where
// possible.
type Scroller struct {
	vp     viewport.Model
	lines  []string
	width  int
	height int
}

// NewScroller creates a Scroller with the given dimensions.
func NewScroller(w, h int) Scroller {
	return Scroller{
		vp:     viewport.New(w, h),
		width:  w,
		height: h,
	}
}

// SetContent replaces all lines.
func (s Scroller) SetContent(lines []string) Scroller {
	s.lines = make([]string, len(lines))
	copy(s.lines, lines)
	offset := s.vp.YOffset
	s.vp.SetContent(strings.Join(s.lines, "\n"))
	s.vp.SetYOffset(offset)
	return s
}

// Lines returns the current content.
func (s Scroller) Lines() []string {
	return s.lines
}

// SetSize resizes the scroller.
func (s Scroller) SetSize(w, h int) Scroller {
	s.width = w
	s.height = h
	s.vp.Width = w
	s.vp.Height = h
	s.vp.SetYOffset(s.vp.YOffset)
	return s
}

// Offset returns the index of the first visible line.
func (s Scroller) Offset() int {
	return s.vp.YOffset
}

// Update handles bubbletea messages (scroll keys, mouse events).
func (s Scroller) Update(msg tea.Msg) (Scroller, tea.Cmd) {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

// View renders the visible lines.
func (s Scroller) View() string {
	return s.vp.View()
}
