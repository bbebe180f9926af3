// Package quicklist holds the legacy shared shopping list: a single
// process-wide list of plain item names with no owner and no persistence.
// It resets on restart. The persisted, per-user shopping list in
// internal/store is a separate feature with different semantics (owner-scoped,
// duplicates allowed) and the two are intentionally not merged.
package quicklist

import (
	"slices"
	"sync"
)

// List is a mutex-guarded, insertion-ordered list of names, deduplicated by
// exact match.
type List struct {
	mu    sync.Mutex
	names []string
}

func New() *List {
	return &List{}
}

// Names returns a copy of the current list in insertion order.
func (l *List) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.names)
}

// Add appends name unless an identical entry already exists.
func (l *List) Add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if slices.Contains(l.names, name) {
		return
	}
	l.names = append(l.names, name)
}

// Remove deletes the first entry exactly matching name, if present.
func (l *List) Remove(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := slices.Index(l.names, name); i >= 0 {
		l.names = slices.Delete(l.names, i, i+1)
	}
}
