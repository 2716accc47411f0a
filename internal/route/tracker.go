// Package route tracks which route path is currently being accessed and
// assigns a correlation id to each burst of accesses to the same path.
package route

import (
	"sync"

	"github.com/google/uuid"
)

// Tracker hands out correlation ids. The id changes only when the accessed
// path differs from the previously recorded one.
type Tracker struct {
	mu       sync.Mutex
	lastPath string
	seen     bool
	id       string
	newID    func() string
}

// NewTracker creates a Tracker with no recorded path.
func NewTracker() *Tracker {
	return &Tracker{newID: func() string { return uuid.New().String() }}
}

// Record notes an access to path and returns the correlation id for it.
func (t *Tracker) Record(path string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.seen || path != t.lastPath {
		t.id = t.newID()
		t.lastPath = path
		t.seen = true
	}
	return t.id
}

// Current returns the most recent correlation id, or "" before any access.
func (t *Tracker) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.id
}

// LastPath returns the most recently recorded path.
func (t *Tracker) LastPath() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastPath
}
