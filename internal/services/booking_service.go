package services

import (
	"errors"
	"strings"
	"time"

	"roadbuddy/internal/domain"
	"roadbuddy/internal/domain/models"
	"roadbuddy/internal/repositories"
	"roadbuddy/internal/utils"

	"github.com/google/uuid"
)

const DefaultUserID = "demo-user"

type BookingService struct {
	Trips    *repositories.TripStore
	Bookings *repositories.BookingStore

	// StrictSeats rejects bookings for more passengers than seats remain.
	StrictSeats   bool
	DefaultUserID string

	Now       func() time.Time
	NewID     func() string
	RequestID string
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s BookingService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s BookingService) userID(in string) string {
	if id := strings.TrimSpace(in); id != "" {
		return id
	}
	if s.DefaultUserID != "" {
		return s.DefaultUserID
	}
	return DefaultUserID
}

// BookTrip reserves seats on tripID and records a confirmed booking.
// Input is parsed before any store is touched, so every failure leaves both
// stores unchanged.
func (s BookingService) BookTrip(tripID string, in models.BookingInput) (models.Booking, error) {
	count, err := in.ParsePassengerCount()
	if err != nil {
		return models.Booking{}, err
	}
	userID := s.userID(in.UserID)

	trip, err := s.Trips.Reserve(tripID, count, s.StrictSeats)
	switch {
	case errors.Is(err, repositories.ErrTripNotFound):
		return models.Booking{}, domain.NotFoundError{Resource: "Trip", Err: err}
	case errors.Is(err, repositories.ErrNoSeats):
		utils.LogEvent(s.RequestID, "booking", "rejected", "trip_id", tripID, "available", trip.AvailableSeats, "requested", count)
		return models.Booking{}, domain.NoSeatsError{TripID: tripID, Available: trip.AvailableSeats, Requested: count}
	case err != nil:
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if count > trip.AvailableSeats {
		utils.LogEvent(s.RequestID, "booking", "overbooked", "trip_id", tripID, "available", trip.AvailableSeats, "requested", count)
	}

	booking := models.NewBooking(s.newID(), trip, userID, count, s.now())
	s.Bookings.Append(booking)
	utils.LogEvent(s.RequestID, "booking", "book", "booking_id", booking.ID, "trip_id", tripID, "user_id", userID, "passengers", count)
	return booking, nil
}

// UserBookings lists userID's bookings with their trips embedded. Bookings
// whose trip no longer resolves are left out.
func (s BookingService) UserBookings(userID string) []models.BookingDetail {
	out := []models.BookingDetail{}
	for _, b := range s.Bookings.ListByUser(userID) {
		trip, ok := s.Trips.FindByID(b.TripID)
		if !ok {
			continue
		}
		out = append(out, models.BookingDetail{Booking: b, Trip: trip})
	}
	return out
}

func (s BookingService) GetBooking(id string) (models.BookingDetail, error) {
	b, ok := s.Bookings.FindByID(id)
	if !ok {
		return models.BookingDetail{}, domain.NotFoundError{Resource: "Booking"}
	}
	trip, ok := s.Trips.FindByID(b.TripID)
	if !ok {
		return models.BookingDetail{}, domain.NotFoundError{Resource: "Trip", Err: repositories.ErrTripNotFound}
	}
	return models.BookingDetail{Booking: b, Trip: trip}, nil
}
