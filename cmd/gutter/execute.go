package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/canvas"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/config"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/diag"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/listview"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/store"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// terminalSize returns the size of the terminal on stdout, or 80×24 when
// stdout isn't a terminal.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// viewportSize resolves the viewport: flags first, then the [view] section,
// then the terminal.
func viewportSize(cfg *config.Config, width, height int, terminal func() (int, int)) (int, int) {
	if width <= 0 {
		width = cfg.View.Width
	}
	if height <= 0 {
		height = cfg.View.Height
	}
	if width <= 0 || height <= 0 {
		tw, th := terminal()
		if width <= 0 {
			width = tw
		}
		if height <= 0 {
			height = th
		}
	}
	return width, height
}

// rendering is a configuration rendered in a resolved viewport.
type rendering struct {
	cfg           *config.Config
	view          *listview.View
	canvas        *canvas.Canvas
	width, height int
}

// build loads the configuration at path and renders it. The view stays
// laid out in the viewport.
func build(path string, width, height int, log diag.Logger) (*rendering, error) {
	cfg, _, err := config.LoadOrDefaults(path)
	if err != nil {
		return nil, err
	}
	r := &rendering{cfg: cfg}
	r.width, r.height = viewportSize(cfg, width, height, terminalSize)
	if r.view, err = cfg.NewView(log); err != nil {
		return nil, err
	}
	if r.canvas, err = r.view.Render(r.width, r.height); err != nil {
		return nil, err
	}
	return r, nil
}

// newLogger writes warnings to errOut and records them.
func newLogger(errOut io.Writer) (diag.Logger, *diag.Recorder) {
	rec := &diag.Recorder{}
	return diag.Tee(diag.NewWriter(errOut), rec), rec
}

// strictErr fails a strict command that reported warnings.
func strictErr(strict bool, rec *diag.Recorder) error {
	if n := len(rec.Messages()); strict && n > 0 {
		return fmt.Errorf("%d warnings reported (--strict)", n)
	}
	return nil
}

func executeRender(out, errOut io.Writer, path string, width, height int, strict bool) error {
	log, rec := newLogger(errOut)
	r, err := build(path, width, height, log)
	if err != nil {
		return err
	}
	if r.canvas.Height() > 0 {
		if _, err := fmt.Fprintln(out, r.canvas.Render()); err != nil {
			return err
		}
	}
	return strictErr(strict, rec)
}

func executeInsets(out, errOut io.Writer, path string, width, height int) error {
	r, err := build(path, width, height, diag.NewWriter(errOut))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, formatInsets(r.view))
	return err
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// formatInsets renders the offsets and the content bounds of every item of
// a laid out view as a table.
func formatInsets(v *listview.View) string {
	t := newTable("#", "LABEL", "TOP", "RIGHT", "BOTTOM", "LEFT", "BOUNDS")
	for _, c := range v.Items() {
		o, r := c.Offsets, c.Rect
		t.Row(
			strconv.Itoa(c.Position), c.Label,
			strconv.Itoa(o.Top), strconv.Itoa(o.Right), strconv.Itoa(o.Bottom), strconv.Itoa(o.Left),
			fmt.Sprintf("%d,%d %d×%d", r.X, r.Y, r.Width, r.Height),
		)
	}
	return t.String()
}

func executeSnapshot(out, errOut io.Writer, path, output, name string, width, height int) error {
	r, err := build(path, width, height, diag.NewWriter(errOut))
	if err != nil {
		return err
	}
	text, err := r.cfg.Encode()
	if err != nil {
		return err
	}
	s := store.Capture(name, text, r.width, r.height, r.view, r.canvas)

	st, err := store.Open(output)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := store.Write(st, s); err != nil {
		return err
	}
	fmt.Fprintf(out, "Recorded %q (%d items, %d×%d) in %s\n", name, len(s.Items), s.Width, s.Height, output)
	return nil
}

// openExisting opens a snapshot file without creating it.
func openExisting(file string) (*store.JSONL, error) {
	if _, err := os.Stat(file); err != nil {
		return nil, fmt.Errorf("open snapshots: %w", err)
	}
	return store.Open(file)
}

func executeSnapshots(out io.Writer, file string) error {
	st, err := openExisting(file)
	if err != nil {
		return err
	}
	defer st.Close()
	summaries, err := st.Snapshots()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Fprintf(out, "No snapshots in %s\n", file)
		return nil
	}
	t := newTable("NAME", "LAYOUT", "ITEMS", "RECORDED")
	for _, s := range summaries {
		t.Row(s.Name, s.Layout, strconv.Itoa(s.Items), s.EndAt.Format("2006-01-02 15:04:05"))
	}
	_, err = fmt.Fprintln(out, t.String())
	return err
}

// executeCheck renders the configuration embedded in the snapshot name in
// the recorded viewport and compares the result with the recording.
func executeCheck(out, errOut io.Writer, file, name string, strict bool) error {
	st, err := openExisting(file)
	if err != nil {
		return err
	}
	defer st.Close()
	want, err := st.Snapshot(name)
	if err != nil {
		return err
	}
	cfg, err := config.Parse(want.Config)
	if err != nil {
		return fmt.Errorf("snapshot %q: %w", name, err)
	}
	log, rec := newLogger(errOut)
	v, err := cfg.NewView(log)
	if err != nil {
		return err
	}
	c, err := v.Render(want.Width, want.Height)
	if err != nil {
		return err
	}
	got := store.Capture(name, want.Config, want.Width, want.Height, v, c)

	diffs := store.Compare(want, got)
	if len(diffs) == 0 {
		fmt.Fprintf(out, "%s: ok\n", name)
		return strictErr(strict, rec)
	}
	for _, d := range diffs {
		fmt.Fprintf(out, "  %s\n", d)
	}
	return fmt.Errorf("snapshot %q: %d differences", name, len(diffs))
}
