package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styleEntry struct {
	style  lipgloss.Style
	styled bool
}

// Register adds style to the canvas palette and returns its key.
func (c *Canvas) Register(style lipgloss.Style) StyleKey {
	c.palette = append(c.palette, styleEntry{style: style, styled: true})
	return StyleKey(len(c.palette) - 1)
}

// Style returns the style registered under key.
func (c *Canvas) Style(key StyleKey) (lipgloss.Style, bool) {
	if key <= Plain || int(key) >= len(c.palette) {
		return lipgloss.Style{}, false
	}
	e := c.palette[key]
	return e.style, e.styled
}

// Render returns the canvas as styled text, rows joined with "\n".
// Consecutive cells sharing a style key are rendered as one run.
func (c *Canvas) Render() string {
	return c.render(true)
}

// String returns the canvas as plain text, ignoring styles.
func (c *Canvas) String() string {
	return c.render(false)
}

// Lines returns the plain text of every row.
func (c *Canvas) Lines() []string {
	if c.w == 0 || c.h == 0 {
		return nil
	}
	return strings.Split(c.render(false), "\n")
}

func (c *Canvas) render(styled bool) string {
	if c.w == 0 || c.h == 0 {
		return ""
	}
	lines := make([]string, c.h)
	var run strings.Builder
	for y, row := range c.cells {
		var sb strings.Builder
		runStyle := row[0].Style
		flush := func() {
			if style, ok := c.Style(runStyle); ok && styled {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cell := range row {
			if cell.Style != runStyle {
				flush()
				runStyle = cell.Style
			}
			if cell.Ch != continuation {
				run.WriteRune(cell.Ch)
			}
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
