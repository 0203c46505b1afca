// Package listview is a terminal list view: it lays out the items of an
// adapter according to a layout manager, lets the attached decorations
// reserve space around each item and paints everything on a canvas.
package listview

import (
	"fmt"
	"sort"
)

// Adapter is the item source of a View.
type Adapter interface {
	ItemCount() int
	// Label returns the text painted inside the item at index.
	Label(index int) string
	// Observe registers fn to run after any structural change and returns a
	// function removing the registration.
	Observe(fn func()) (cancel func())
}

// StringAdapter is an Adapter over a slice of labels.
type StringAdapter struct {
	items     []string
	observers map[int]func()
	next      int
}

// NewStringAdapter returns an adapter over items.
func NewStringAdapter(items ...string) *StringAdapter {
	return &StringAdapter{items: items}
}

// Numbered returns n labels "prefix 0" ... "prefix n-1".
func Numbered(prefix string, n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("%s %d", prefix, i)
	}
	return items
}

// ItemCount implements Adapter.
func (a *StringAdapter) ItemCount() int { return len(a.items) }

// Label implements Adapter.
func (a *StringAdapter) Label(index int) string {
	if index < 0 || index >= len(a.items) {
		return ""
	}
	return a.items[index]
}

// Observe implements Adapter.
func (a *StringAdapter) Observe(fn func()) func() {
	if a.observers == nil {
		a.observers = make(map[int]func())
	}
	id := a.next
	a.next++
	a.observers[id] = fn
	return func() { delete(a.observers, id) }
}

// Observers returns the number of registered observers.
func (a *StringAdapter) Observers() int { return len(a.observers) }

// SetItems replaces every label.
func (a *StringAdapter) SetItems(items []string) {
	a.items = items
	a.NotifyChanged()
}

// Append adds labels at the end.
func (a *StringAdapter) Append(items ...string) {
	a.items = append(a.items, items...)
	a.NotifyChanged()
}

// Remove drops the label at index.
func (a *StringAdapter) Remove(index int) {
	if index < 0 || index >= len(a.items) {
		return
	}
	a.items = append(a.items[:index], a.items[index+1:]...)
	a.NotifyChanged()
}

// NotifyChanged runs every observer, oldest first.
func (a *StringAdapter) NotifyChanged() {
	ids := make([]int, 0, len(a.observers))
	for id := range a.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := a.observers[id]; ok {
			fn()
		}
	}
}
