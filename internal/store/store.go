// Package store persists geometry snapshots of a decorated list to a JSONL
// file and reads them back. A snapshot records the configuration it was
// rendered from, the offsets and bounds of every item and the painted
// cells, so a later run can render it again and compare.
package store

import (
	"time"

	"github.com/LISSConsulting/LISSTech.Gutter/internal/geom"
)

// Writer persists snapshot records to durable storage.
type Writer interface {
	Append(r Record) error
	Close() error
}

// Reader retrieves recorded snapshots.
type Reader interface {
	Snapshots() ([]Summary, error)
	Snapshot(name string) (*Snapshot, error)
}

// Store combines Writer and Reader into a single file-scoped handle.
type Store interface {
	Writer
	Reader
}

// RecordKind identifies a JSONL line.
type RecordKind string

const (
	// RecordStart opens a snapshot and carries its configuration.
	RecordStart RecordKind = "start"
	// RecordItem carries the geometry of one item.
	RecordItem RecordKind = "item"
	// RecordCanvas carries the painted rows.
	RecordCanvas RecordKind = "canvas"
	// RecordEnd closes a snapshot.
	RecordEnd RecordKind = "end"
)

// Record is one JSONL line. Fields beyond Kind, Timestamp and Snapshot are
// set according to the kind.
type Record struct {
	Kind      RecordKind `json:"kind"`
	Timestamp time.Time  `json:"ts"`
	Snapshot  string     `json:"snapshot"`

	// RecordStart
	Config string `json:"config,omitempty"` // TOML
	Layout string `json:"layout,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`

	// RecordItem
	Position int         `json:"position,omitempty"`
	Offsets  *geom.Edges `json:"offsets,omitempty"`
	Bounds   *geom.Rect  `json:"bounds,omitempty"`

	// RecordCanvas
	Lines []string `json:"lines,omitempty"`
}

// Item is the recorded geometry of one item.
type Item struct {
	Position int
	Offsets  geom.Edges
	Bounds   geom.Rect
}

// Snapshot is a complete recorded snapshot.
type Snapshot struct {
	Name          string
	Config        string
	Layout        string
	Width, Height int
	Items         []Item
	Lines         []string
	RecordedAt    time.Time
}

// Summary describes a completed snapshot.
type Summary struct {
	Name    string
	Layout  string
	Items   int
	StartAt time.Time
	EndAt   time.Time
}
