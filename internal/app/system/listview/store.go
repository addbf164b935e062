// internal/app/system/listview/store.go
package listview

// Terminology: Record Identifiers
//   - Record id: the "<PREFIX>-NNN" string minted by a Store on Add
//     (e.g. "ADM-002"). Assigned exactly once, never mutated, never
//     reused within a Store's lifetime — not even across Reset.

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNotFound is returned by Update and Delete when no record with the
// target id exists. Get reports absence with a bool instead, because
// stale-id lookups from detail views are a normal condition.
var ErrNotFound = errors.New("record not found")

// Entity is implemented by every record kind managed by a Store.
type Entity interface {
	// EntityID returns the record id ("" until the store assigns one).
	EntityID() string
	// EntityTime returns the creation/event time used for newest-first
	// sorting and date-range filtering.
	EntityTime() time.Time
}

// StampFunc returns a copy of rec carrying the assigned id. When rec's
// entity time is zero it must also be set to createdAt.
type StampFunc[T Entity] func(rec T, id string, createdAt time.Time) T

// Store owns the authoritative in-memory collection for one entity kind.
// CRUD preserves insertion order; only the filter layer sorts.
//
// The mutex makes a Store safe for concurrent HTTP handlers; every read
// method hands out copies, never the backing slice.
type Store[T Entity] struct {
	mu     sync.RWMutex
	prefix string
	seq    int
	recs   []T
	stamp  StampFunc[T]
}

// NewStore creates an empty store minting "<prefix>-NNN" ids.
func NewStore[T Entity](prefix string, stamp StampFunc[T]) *Store[T] {
	return &Store[T]{prefix: prefix, stamp: stamp}
}

// Add assigns a fresh id and creation time to rec, appends it, and
// returns the stored record.
func (s *Store[T]) Add(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(rec)
}

func (s *Store[T]) add(rec T) T {
	s.seq++
	id := fmt.Sprintf("%s-%03d", s.prefix, s.seq)
	rec = s.stamp(rec, id, time.Now())
	s.recs = append(s.recs, rec)
	return rec
}

// Update applies the caller's merge function to the record with the
// given id and stores the result in place. The id is re-pinned after
// apply so it stays immutable no matter what apply returns.
func (s *Store[T]) Update(id string, apply func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.recs {
		if rec.EntityID() == id {
			upd := s.stamp(apply(rec), id, rec.EntityTime())
			s.recs[i] = upd
			return upd, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("update %s: %w", id, ErrNotFound)
}

// Delete removes the record with the given id. The relative order of the
// remaining records is preserved.
func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.recs {
		if rec.EntityID() == id {
			s.recs = append(s.recs[:i], s.recs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete %s: %w", id, ErrNotFound)
}

// Get looks up a record by id. Absence is not an error.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.recs {
		if rec.EntityID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// All returns a copy of the collection in insertion order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.recs...)
}

// Len returns the current collection size.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs)
}

// Reset replaces the collection with the given seed records, assigning
// fresh ids to each. The id counter keeps counting up so ids from the
// previous generation are never reissued.
func (s *Store[T]) Reset(seed []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = make([]T, 0, len(seed))
	for _, rec := range seed {
		s.add(rec)
	}
}
