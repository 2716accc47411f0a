package gate

import (
	"context"
	"sync"
)

// KeyedGate holds one Gate per key. Opening one key never wakes waiters of
// another.
//
// A key keeps an entry only while it is open or has waiters, so reads for
// keys that are never published do not accumulate.
type KeyedGate struct {
	mu      sync.Mutex
	entries map[string]*keyedEntry
}

type keyedEntry struct {
	gate    *Gate
	waiters int
}

// NewKeyed creates an empty KeyedGate.
func NewKeyed() *KeyedGate {
	return &KeyedGate{entries: make(map[string]*keyedEntry)}
}

// entry returns the entry for key, creating a closed one if needed.
// Callers hold k.mu.
func (k *KeyedGate) entry(key string) *keyedEntry {
	e, ok := k.entries[key]
	if !ok {
		e = &keyedEntry{gate: New()}
		k.entries[key] = e
	}
	return e
}

// Open opens the gate for key. The open state is kept until Reset so a
// waiter arriving after the publish does not block.
func (k *KeyedGate) Open(key string) {
	k.mu.Lock()
	e := k.entry(key)
	k.mu.Unlock()

	e.gate.Open()
}

// Wait blocks until the gate for key is open or ctx is done.
func (k *KeyedGate) Wait(ctx context.Context, key string) error {
	k.mu.Lock()
	e := k.entry(key)
	e.waiters++
	k.mu.Unlock()

	err := e.gate.Wait(ctx)

	k.mu.Lock()
	e.waiters--
	if e.waiters == 0 && !e.gate.IsOpen() && k.entries[key] == e {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	return err
}

// Reset closes every open key. Keys that still have waiters stay closed
// and keep their waiters.
func (k *KeyedGate) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()

	for key, e := range k.entries {
		if e.gate.IsOpen() {
			delete(k.entries, key)
		}
	}
}
