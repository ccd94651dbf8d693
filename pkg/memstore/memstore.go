// Package memstore provides a generic in-memory entity store: an ordered
// mapping from string id to record. It backs the in-memory repository
// implementations.
package memstore

import (
	"sort"
	"sync"
)

// Store maps entity ids to records. Safe for concurrent use.
type Store[V any] struct {
	mu      sync.RWMutex
	records map[string]V
}

// New creates an empty Store.
func New[V any]() *Store[V] {
	return &Store[V]{
		records: make(map[string]V),
	}
}

// Put inserts or overwrites the record at id.
func (s *Store[V]) Put(id string, record V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = record
}

// Get returns the record at id and whether it exists.
func (s *Store[V]) Get(id string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	return record, ok
}

// Delete removes the record at id. Deleting an absent id is a no-op.
func (s *Store[V]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
}

// Values returns all records in ascending id order. Each call produces a
// fresh slice, so enumeration is restartable and unaffected by later writes.
func (s *Store[V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	values := make([]V, 0, len(ids))
	for _, id := range ids {
		values = append(values, s.records[id])
	}
	return values
}

// Len returns the number of stored records.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
