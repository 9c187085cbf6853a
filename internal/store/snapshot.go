package store

import (
	"sync"

	"github.com/dsmirnov/cryptodiary/models"
)

// Snapshot is the client-side cache of server-provided encrypted entries.
//
// The server is the single source of truth: the snapshot is rebuilt
// wholesale by ReplaceAll after every successful list fetch and is never
// patched incrementally, so it is always a full server-confirmed state,
// never partially stale. Entries are kept in the order the server returned
// them.
type Snapshot struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Entry
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{byID: make(map[string]models.Entry)}
}

// ReplaceAll atomically discards the previous snapshot and installs
// entries as the new one. There is no partial update path. When two list
// fetches race, the later ReplaceAll wins.
func (s *Snapshot) ReplaceAll(entries []models.Entry) {
	order := make([]string, 0, len(entries))
	byID := make(map[string]models.Entry, len(entries))
	for _, e := range entries {
		order = append(order, e.ID)
		byID[e.ID] = e
	}

	s.mu.Lock()
	s.order = order
	s.byID = byID
	s.mu.Unlock()
}

// Clear empties the snapshot. Part of session teardown, not of the sync
// protocol.
func (s *Snapshot) Clear() {
	s.ReplaceAll(nil)
}

// Get implements [SnapshotReader].
func (s *Snapshot) Get(id string) (models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.byID[id]
	if !ok {
		return models.Entry{}, ErrEntryNotFound
	}
	return entry, nil
}

// All implements [SnapshotReader]. The returned slice is a copy; mutating
// it does not affect the snapshot.
func (s *Snapshot) All() []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.Entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.byID[id])
	}
	return entries
}

// Len returns the number of entries in the current snapshot.
func (s *Snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
