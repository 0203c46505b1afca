package canvas

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
)

func TestNew_Blank(t *testing.T) {
	c := New(3, 2)
	want := []string{"   ", "   "}
	if got := c.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	if New(-1, 4).Render() != "" {
		t.Error("negative width canvas should render empty")
	}
}

func TestFill_ClipsToBounds(t *testing.T) {
	c := New(4, 3)
	c.Fill(geom.Rect{X: 2, Y: -1, Width: 5, Height: 2}, '#', Plain)
	want := []string{"  ##", "    ", "    "}
	if got := c.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteString_WideRunes(t *testing.T) {
	c := New(5, 1)
	next := c.WriteString(0, 0, "a世b", Plain)
	if next != 4 {
		t.Errorf("next column: got %d, want 4", next)
	}
	if got := c.String(); got != "a世b " {
		t.Errorf("got %q, want %q", got, "a世b ")
	}
	// Overwriting the trailing half of the wide rune blanks its leading half.
	c.Set(2, 0, 'x', Plain)
	if got := c.String(); got != "a xb " {
		t.Errorf("after overwrite: got %q, want %q", got, "a xb ")
	}
}

func TestSet_WideRuneAtEdge(t *testing.T) {
	c := New(2, 1)
	c.WriteString(1, 0, "世", Plain)
	if got := c.String(); got != "  " {
		t.Errorf("got %q, want two spaces", got)
	}
}

func TestRender_MergesRuns(t *testing.T) {
	c := New(4, 1)
	key := c.Register(lipgloss.NewStyle().Bold(true))
	c.Fill(geom.Rect{X: 1, Width: 2, Height: 1}, '─', key)
	if got := c.String(); got != " ── " {
		t.Errorf("plain: got %q", got)
	}
	out := c.Render()
	if !strings.Contains(out, "──") {
		t.Errorf("styled output lost the run: %q", out)
	}
	if _, ok := c.Style(key); !ok {
		t.Error("registered style not found")
	}
	if _, ok := c.Style(Plain); ok {
		t.Error("plain key reported as styled")
	}
}

func TestClear(t *testing.T) {
	c := New(2, 2)
	c.Fill(c.Bounds(), '*', Plain)
	c.Clear()
	if got := c.String(); got != "  \n  " {
		t.Errorf("got %q", got)
	}
}
