package repositories

import (
	"errors"
	"sync"

	"roadbuddy/internal/domain/models"
)

var (
	ErrTripNotFound = errors.New("trip not found")
	ErrNoSeats      = errors.New("no seats available")
)

// TripStore holds trips in insertion order. Callers always get copies.
type TripStore struct {
	mu    sync.RWMutex
	trips []models.Trip
}

func NewTripStore(seed ...models.Trip) *TripStore {
	s := &TripStore{}
	s.Replace(seed)
	return s
}

// Replace drops every trip and loads trips in order.
func (s *TripStore) Replace(trips []models.Trip) {
	cp := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		cp = append(cp, t.Clone())
	}
	s.mu.Lock()
	s.trips = cp
	s.mu.Unlock()
}

func (s *TripStore) List() []models.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, t.Clone())
	}
	return out
}

func (s *TripStore) Append(t models.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = append(s.trips, t.Clone())
}

func (s *TripStore) FindByID(id string) (models.Trip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.trips[i].Clone(), true
	}
	return models.Trip{}, false
}

func (s *TripStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trips)
}

// Reserve takes count seats from trip id in one critical section and returns
// the trip as it was before the decrement.
//
// The only gate is availableSeats > 0, so a request for more seats than remain
// drives availableSeats negative. strict closes that gap by also rejecting
// count > availableSeats.
func (s *TripStore) Reserve(id string, count int, strict bool) (models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Trip{}, ErrTripNotFound
	}
	before := s.trips[i].Clone()
	if before.AvailableSeats <= 0 {
		return before, ErrNoSeats
	}
	if strict && count > before.AvailableSeats {
		return before, ErrNoSeats
	}
	s.trips[i].AvailableSeats -= count
	return before, nil
}

func (s *TripStore) indexOf(id string) int {
	for i := range s.trips {
		if s.trips[i].ID == id {
			return i
		}
	}
	return -1
}
