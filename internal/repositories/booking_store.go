package repositories

import (
	"sync"

	"roadbuddy/internal/domain/models"
)

// BookingStore holds bookings in insertion order. Bookings are never updated
// or deleted.
type BookingStore struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

func (s *BookingStore) Append(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
}

func (s *BookingStore) ListByUser(userID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (s *BookingStore) FindByID(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

func (s *BookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
