package data

import "sync"

// MatchStore holds the latest published match snapshot.
// Each publish replaces the whole snapshot; readers never see a partial one.
type MatchStore struct {
	mu        sync.RWMutex
	matches   []Match
	published bool
}

// NewMatchStore creates an empty MatchStore.
func NewMatchStore() *MatchStore {
	return &MatchStore{}
}

// Publish replaces the stored snapshot. A nil or empty slice is a valid
// snapshot and is stored as an empty list.
func (s *MatchStore) Publish(matches []Match) {
	snapshot := make([]Match, len(matches))
	copy(snapshot, matches)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = snapshot
	s.published = true
}

// Read returns the current snapshot. ok is false if nothing has been
// published since the store was created or cleared.
func (s *MatchStore) Read() (matches []Match, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matches, s.published
}

// Len returns the number of matches in the current snapshot.
func (s *MatchStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matches)
}

// Clear drops the snapshot.
func (s *MatchStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = nil
	s.published = false
}
