package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// JSONL is a Store backed by an append-only JSONL file. Each line is a
// JSON-serialized Record. The file is synced after every Append.
//
// Opening an existing file replays it into the index, so snapshots appended
// by earlier runs stay readable and a snapshot recorded again under the same
// name replaces the earlier one.
type JSONL struct {
	file *os.File
	mu   sync.Mutex
	idx  *fileIndex
	path string
	pos  int64 // current write position in the file
}

// maxLine bounds the length of a replayed line.
const maxLine = 4 << 20

// Open creates or reopens the JSONL file at path. The parent directory is
// created with os.MkdirAll if it does not exist.
func Open(path string) (*JSONL, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("store: mkdir %q: %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	j := &JSONL{file: f, idx: newFileIndex(), path: path}
	if err := j.replay(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return j, nil
}

// replay indexes the lines already in the file and leaves the write
// position at its end.
func (j *JSONL) replay() error {
	if _, err := j.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("store: seek: %w", err)
	}
	sc := bufio.NewScanner(j.file)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var pos int64
	for sc.Scan() {
		line := sc.Bytes()
		lineLen := int64(len(line)) + 1
		if len(bytes.TrimSpace(line)) > 0 {
			var r Record
			if err := json.Unmarshal(line, &r); err != nil {
				log.Printf("store: skipping malformed line at offset %d: %v", pos, err)
			} else {
				j.idx.onAppend(r, pos, lineLen)
			}
		}
		pos += lineLen
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("store: read %q: %w", j.path, err)
	}
	end, err := j.file.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("store: seek: %w", err)
	}
	j.pos = end
	return nil
}

// Path returns the path of the file.
func (j *JSONL) Path() string { return j.path }

// Append serializes r as a JSON line, writes it to the file, and syncs.
// It is safe to call from multiple goroutines.
func (j *JSONL) Append(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	lineOffset := j.pos
	if _, err := j.file.WriteAt(data, lineOffset); err != nil {
		return fmt.Errorf("store: write: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return fmt.Errorf("store: sync: %w", err)
	}
	lineLen := int64(len(data))
	j.pos += lineLen
	j.idx.onAppend(r, lineOffset, lineLen)
	return nil
}

// Close closes the underlying file.
func (j *JSONL) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}

// Snapshots returns summaries of the completed snapshots, latest name
// occurrences only, in completion order. The returned slice is a copy.
func (j *JSONL) Snapshots() ([]Summary, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	result := make([]Summary, 0, len(j.idx.summaries))
	for i, s := range j.idx.summaries {
		if j.latest(i) {
			result = append(result, s)
		}
	}
	return result, nil
}

// latest reports whether summaries[i] is the last one with its name.
func (j *JSONL) latest(i int) bool {
	name := j.idx.summaries[i].Name
	for _, s := range j.idx.summaries[i+1:] {
		if s.Name == name {
			return false
		}
	}
	return true
}

// Snapshot reads the completed snapshot recorded under name. Returns an
// error if no snapshot with that name has completed.
func (j *JSONL) Snapshot(name string) (*Snapshot, error) {
	j.mu.Lock()
	r, ok := j.idx.ranges[name]
	j.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("store: snapshot %q not found", name)
	}
	buf := make([]byte, r.end-r.start)
	if _, err := j.file.ReadAt(buf, r.start); err != nil {
		return nil, fmt.Errorf("store: read snapshot %q: %w", name, err)
	}
	s := &Snapshot{Name: name}
	for _, line := range bytes.Split(buf, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			log.Printf("store: skipping malformed line in snapshot %q: %v", name, err)
			continue
		}
		if rec.Snapshot != name {
			continue
		}
		s.add(rec)
	}
	return s, nil
}

func (s *Snapshot) add(r Record) {
	switch r.Kind {
	case RecordStart:
		s.Config = r.Config
		s.Layout = r.Layout
		s.Width, s.Height = r.Width, r.Height
		s.RecordedAt = r.Timestamp
	case RecordItem:
		it := Item{Position: r.Position}
		if r.Offsets != nil {
			it.Offsets = *r.Offsets
		}
		if r.Bounds != nil {
			it.Bounds = *r.Bounds
		}
		s.Items = append(s.Items, it)
	case RecordCanvas:
		s.Lines = r.Lines
	}
}
