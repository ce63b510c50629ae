package models

import (
	"time"

	"roadbuddy/internal/domain"
	"roadbuddy/internal/utils"
)

// BookingStatusConfirmed is the only status a booking can have; there is no
// cancellation flow.
const BookingStatusConfirmed = "confirmed"

// Booking is a passenger's reservation against a trip.
type Booking struct {
	ID             string    `json:"id"`
	TripID         string    `json:"tripId"`
	UserID         string    `json:"userId"`
	PassengerCount int       `json:"passengerCount"`
	Status         string    `json:"status"`
	BookingTime    time.Time `json:"bookingTime"`
	TotalPrice     float64   `json:"totalPrice"`
}

// BookingDetail is a booking with its trip embedded under "trip".
type BookingDetail struct {
	Booking
	Trip Trip `json:"trip"`
}

// BookingInput is the body of a booking request. PassengerCount stays untyped
// so "2" and 2 are both accepted.
type BookingInput struct {
	UserID         string `json:"userId"`
	PassengerCount any    `json:"passengerCount"`
}

// ParsePassengerCount coerces the requested passenger count, defaulting to 1.
func (in BookingInput) ParsePassengerCount() (int, error) {
	if in.PassengerCount == nil {
		return 1, nil
	}
	n, err := utils.ParseInt(in.PassengerCount)
	if err != nil {
		return 0, domain.ValidationError{Field: "passengerCount", Msg: "must be an integer", Err: err}
	}
	if n < 1 {
		return 0, domain.ValidationError{Field: "passengerCount", Msg: "must be at least 1"}
	}
	return n, nil
}

// NewBooking prices a confirmed booking of count passengers on trip.
func NewBooking(id string, trip Trip, userID string, count int, now time.Time) Booking {
	return Booking{
		ID:             id,
		TripID:         trip.ID,
		UserID:         userID,
		PassengerCount: count,
		Status:         BookingStatusConfirmed,
		BookingTime:    now,
		TotalPrice:     trip.PricePerPerson * float64(count),
	}
}
