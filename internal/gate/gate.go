// Package gate provides availability gates: signals that start closed, open
// once data exists, and release every blocked waiter at the same time.
package gate

import (
	"context"
	"sync"
)

// Gate is a reusable open/closed signal. Waiters block until Open is called.
// Once open it stays open until Reset.
type Gate struct {
	mu   sync.Mutex
	ch   chan struct{}
	open bool
}

// New creates a closed Gate.
func New() *Gate {
	return &Gate{ch: make(chan struct{})}
}

// Open opens the gate and releases all current waiters. Opening an open gate
// is a no-op.
func (g *Gate) Open() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.open {
		return
	}
	g.open = true
	close(g.ch)
}

// Wait blocks until the gate is open or ctx is done. It returns ctx.Err() if
// the context ends first.
func (g *Gate) Wait(ctx context.Context) error {
	g.mu.Lock()
	ch := g.ch
	g.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reset closes an open gate so future waiters block again. Waiters already
// released are unaffected. Resetting a closed gate keeps the current channel,
// so callers blocked on it are not orphaned.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.open {
		return
	}
	g.open = false
	g.ch = make(chan struct{})
}

// IsOpen reports whether the gate is currently open.
func (g *Gate) IsOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.open
}
