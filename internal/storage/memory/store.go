// Package memory provides the in-memory ReservationRepository. It stands in
// for a database: a map guarded by a RWMutex plus a per-store id sequence.
// A persistent backend can replace it by implementing the same port.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bookingmx/internal/domain"
)

type Store struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]domain.Reservation
}

func New() *Store {
	return &Store{items: make(map[int64]domain.Reservation)}
}

// FindAll returns every stored reservation, ordered by id so listings are
// stable across calls.
func (s *Store) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Reservation, 0, len(s.items))
	for _, r := range s.items {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.items[id]
	if !ok {
		return domain.Reservation{}, fmt.Errorf("%w: reservation %d", domain.ErrNotFound, id)
	}
	return r, nil
}

// Save stores r, assigning the next id from the store-owned sequence when
// r.ID is zero. Ids start at 1 and are strictly increasing; the sequence
// shares the store mutex, so no package-level state is involved.
func (s *Store) Save(ctx context.Context, r domain.Reservation) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == 0 {
		s.seq++
		r.ID = s.seq
	}
	s.items[r.ID] = r
	return r, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	return nil
}
