// Package diag carries non-fatal warnings out of the divider engine. The
// engine never logs on its own: it reports to whatever Logger the embedding
// application installed.
package diag

import (
	"fmt"
	"io"
	"sync"
)

// Logger receives warnings.
type Logger interface {
	Warn(msg string)
}

// Discard drops every warning.
var Discard Logger = discard{}

type discard struct{}

func (discard) Warn(string) {}

// Writer writes each warning as one "gutter: warning: ..." line.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Logger writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Warn implements Logger.
func (l *Writer) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "gutter: warning: %s\n", msg)
}

// Recorder keeps every warning in memory.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// Warn implements Logger.
func (r *Recorder) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// Messages returns a copy of the recorded warnings.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// Last returns the most recent warning, or "" if there's none.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

// Tee forwards every warning to all the given loggers.
func Tee(loggers ...Logger) Logger {
	return tee(loggers)
}

type tee []Logger

func (t tee) Warn(msg string) {
	for _, l := range t {
		l.Warn(msg)
	}
}

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l Logger) Logger {
	if l == nil {
		return Discard
	}
	return l
}
