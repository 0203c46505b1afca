// Package config parses gutter.toml and resolves it into a decorated list
// view.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/grid"
)

// FileName is the name of the configuration file.
const FileName = "gutter.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// colorRe matches a 6-digit hex color like "#7D56F4" or an ANSI color index.
var colorRe = regexp.MustCompile(`^(#[0-9A-Fa-f]{6}|[0-9]{1,3})$`)

// Layout kinds.
const (
	KindLinear    = "linear"
	KindGrid      = "grid"
	KindStaggered = "staggered"
)

// Divider styles.
const (
	StyleLine   = "line"
	StyleGlyphs = "glyphs"
	StyleSolid  = "solid"
	StyleNone   = "none"
)

// Config is the top-level gutter.toml configuration.
type Config struct {
	Layout  LayoutConfig  `toml:"layout"`
	Items   ItemsConfig   `toml:"items"`
	Divider DividerConfig `toml:"divider"`
	View    ViewConfig    `toml:"view"`
}

// LayoutConfig selects the layout manager.
type LayoutConfig struct {
	Kind          string `toml:"kind"`
	Orientation   string `toml:"orientation"`
	Reverse       bool   `toml:"reverse"`
	RightToLeft   bool   `toml:"rtl"`
	SpanCount     int    `toml:"span_count"`
	SpanSizes     []int  `toml:"span_sizes"`      // grid only; repeats over the items
	FullSpanEvery int    `toml:"full_span_every"` // staggered only; 0 = none
}

// ItemsConfig describes the items of the list.
type ItemsConfig struct {
	Count   int      `toml:"count"`
	Prefix  string   `toml:"prefix"`
	Labels  []string `toml:"labels"`  // overrides count and prefix
	Extents []int    `toml:"extents"` // size along the scroll axis; repeats over the items
}

// DividerConfig describes the dividers.
type DividerConfig struct {
	AsSpace      bool   `toml:"as_space"`
	Style        string `toml:"style"`
	Horizontal   string `toml:"horizontal"` // glyph of horizontal dividers
	Vertical     string `toml:"vertical"`   // glyph of vertical dividers
	Color        string `toml:"color"`
	Tint         string `toml:"tint"`
	Size         int    `toml:"size"` // 0 = the drawable's own size
	InsetStart   int    `toml:"inset_start"`
	InsetEnd     int    `toml:"inset_end"`
	FirstVisible bool   `toml:"first_visible"`
	LastVisible  bool   `toml:"last_visible"`
	SideVisible  bool   `toml:"side_visible"`
}

// ViewConfig controls the viewport and the terminal UI.
type ViewConfig struct {
	Width       int    `toml:"width"`  // 0 = terminal width
	Height      int    `toml:"height"` // 0 = terminal height
	AccentColor string `toml:"accent_color"`
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	switch c.Layout.Kind {
	case KindLinear, KindGrid, KindStaggered:
	default:
		errs = append(errs, fmt.Errorf("layout.kind must be one of %q, %q or %q", KindLinear, KindGrid, KindStaggered))
	}
	if _, err := grid.ParseOrientation(c.Layout.Orientation); err != nil {
		errs = append(errs, fmt.Errorf("layout.orientation must be \"vertical\" or \"horizontal\""))
	}
	if c.Layout.SpanCount < 1 {
		errs = append(errs, fmt.Errorf("layout.span_count must be >= 1"))
	}
	for _, s := range c.Layout.SpanSizes {
		if s < 1 || s > c.Layout.SpanCount {
			errs = append(errs, fmt.Errorf("layout.span_sizes must be between 1 and layout.span_count, got %d", s))
			break
		}
	}
	if c.Layout.FullSpanEvery < 0 {
		errs = append(errs, fmt.Errorf("layout.full_span_every must be >= 0 (0 = none)"))
	}

	if c.Items.Count < 0 {
		errs = append(errs, fmt.Errorf("items.count must be >= 0"))
	}
	for _, e := range c.Items.Extents {
		if e < 1 {
			errs = append(errs, fmt.Errorf("items.extents must be >= 1, got %d", e))
			break
		}
	}

	switch c.Divider.Style {
	case StyleLine, StyleSolid, StyleNone:
	case StyleGlyphs:
		if utf8.RuneCountInString(c.Divider.Horizontal) != 1 {
			errs = append(errs, fmt.Errorf("divider.horizontal must be a single character"))
		}
		if utf8.RuneCountInString(c.Divider.Vertical) != 1 {
			errs = append(errs, fmt.Errorf("divider.vertical must be a single character"))
		}
	default:
		errs = append(errs, fmt.Errorf("divider.style must be one of %q, %q, %q or %q", StyleLine, StyleGlyphs, StyleSolid, StyleNone))
	}
	if c.Divider.Style == StyleSolid && c.Divider.Color == "" {
		errs = append(errs, fmt.Errorf("divider.color must be set when divider.style is %q", StyleSolid))
	}
	if c.Divider.Color != "" && !colorRe.MatchString(c.Divider.Color) {
		errs = append(errs, fmt.Errorf("divider.color must be a hex color (e.g. \"#7D56F4\") or an ANSI color index"))
	}
	if c.Divider.Tint != "" && !colorRe.MatchString(c.Divider.Tint) {
		errs = append(errs, fmt.Errorf("divider.tint must be a hex color (e.g. \"#7D56F4\") or an ANSI color index"))
	}
	if c.Divider.Size < 0 {
		errs = append(errs, fmt.Errorf("divider.size must be >= 0 (0 = the drawable's own size)"))
	}
	if c.Divider.InsetStart < 0 || c.Divider.InsetEnd < 0 {
		errs = append(errs, fmt.Errorf("divider.inset_start and divider.inset_end must be >= 0"))
	}

	if c.View.Width < 0 {
		errs = append(errs, fmt.Errorf("view.width must be >= 0 (0 = terminal width)"))
	}
	if c.View.Height < 0 {
		errs = append(errs, fmt.Errorf("view.height must be >= 0 (0 = terminal height)"))
	}
	if c.View.AccentColor != "" && !colorRe.MatchString(c.View.AccentColor) {
		errs = append(errs, fmt.Errorf("view.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	return errors.Join(errs...)
}

// Defaults returns a Config describing a vertical list of ten items split by
// box-drawing lines.
func Defaults() Config {
	return Config{
		Layout: LayoutConfig{
			Kind:        KindLinear,
			Orientation: "vertical",
			SpanCount:   1,
		},
		Items: ItemsConfig{
			Count:  10,
			Prefix: "item",
		},
		Divider: DividerConfig{
			Style:      StyleLine,
			Horizontal: "─",
			Vertical:   "│",
		},
		View: ViewConfig{
			AccentColor: DefaultAccentColor,
		},
	}
}

// Load reads gutter.toml from the given path. If path is empty, it walks up
// from the current working directory looking for gutter.toml. Returns an
// error if the file contains unknown keys (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return decode(path, string(data))
}

// Parse decodes a gutter.toml document, as stored in snapshots.
func Parse(data string) (*Config, error) {
	return decode("document", data)
}

// decode reads data over Defaults. Unknown keys are rejected.
func decode(source, data string) (*Config, error) {
	cfg := Defaults()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", source, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", source, strings.Join(keys, ", "))
	}

	return &cfg, nil
}

// Encode returns c as a TOML document.
func (c *Config) Encode() (string, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return "", fmt.Errorf("config: encode: %w", err)
	}
	return sb.String(), nil
}

// LoadOrDefaults is Load, falling back to Defaults when path is empty and no
// gutter.toml is found. The returned path is empty in that case.
func LoadOrDefaults(path string) (*Config, string, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			cfg := Defaults()
			return &cfg, "", nil
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// findConfig walks up from the current directory looking for gutter.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: %s not found (searched up from %s)", FileName, dir)
		}
		dir = parent
	}
}

// InitFile writes a default gutter.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	if err := os.WriteFile(path, []byte(template), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

const template = `# gutter.toml: list layout and divider configuration

[layout]
kind = "linear"          # linear, grid or staggered
orientation = "vertical" # vertical or horizontal
reverse = false
rtl = false
span_count = 1
span_sizes = []          # grid: spans taken by each item, repeated
full_span_every = 0      # staggered: every nth item spans the whole line; 0 = none

[items]
count = 10
prefix = "item"
labels = []              # overrides count and prefix
extents = []             # item size along the scroll axis, repeated; empty = 1

[divider]
as_space = false         # reserve the space without painting
style = "line"           # line, glyphs, solid or none
horizontal = "─"         # glyphs style only
vertical = "│"
color = ""               # hex color or ANSI index; required by the solid style
tint = ""
size = 0                 # 0 = the drawable's own size
inset_start = 0
inset_end = 0
first_visible = false
last_visible = false
side_visible = false

[view]
width = 0                # 0 = terminal width
height = 0               # 0 = terminal height
accent_color = "#7D56F4"
`
