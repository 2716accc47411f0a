package data

import (
	"sort"
	"sync"
)

// StreamLinkStore maps watch ids to their latest stream-link payload.
// Entries are upserted individually and only removed by Clear.
type StreamLinkStore struct {
	mu    sync.RWMutex
	links map[string]StreamLinks
}

func NewStreamLinkStore() *StreamLinkStore {
	return &StreamLinkStore{links: make(map[string]StreamLinks)}
}

// Publish stores payload for watchID, overwriting any previous value.
func (s *StreamLinkStore) Publish(watchID string, payload StreamLinks) {
	stored := make(StreamLinks, len(payload))
	copy(stored, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.links[watchID] = stored
}

// Read returns the payload for watchID. Absence of one key says nothing
// about any other key.
func (s *StreamLinkStore) Read(watchID string) (StreamLinks, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.links[watchID]
	return payload, ok
}

func (s *StreamLinkStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.links)
}

// Keys returns the stored watch ids in sorted order.
func (s *StreamLinkStore) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.links))
	for k := range s.links {
		keys = append(keys, k)
	}
	s.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Clear removes every entry and returns how many were dropped.
func (s *StreamLinkStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := len(s.links)
	s.links = make(map[string]StreamLinks)
	return count
}
