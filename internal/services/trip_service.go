package services

import (
	"strings"

	"roadbuddy/internal/domain"
	"roadbuddy/internal/domain/models"
	"roadbuddy/internal/repositories"
	"roadbuddy/internal/utils"

	"github.com/google/uuid"
)

// TripQuery holds the three optional search filters. Empty means "no filter".
type TripQuery struct {
	Text string `json:"search"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Normalize lower-cases and trims every filter.
func (q TripQuery) Normalize() TripQuery {
	return TripQuery{
		Text: strings.ToLower(strings.TrimSpace(q.Text)),
		From: strings.ToLower(strings.TrimSpace(q.From)),
		To:   strings.ToLower(strings.TrimSpace(q.To)),
	}
}

type TripService struct {
	Store     *repositories.TripStore
	NewID     func() string
	RequestID string
}

func (s TripService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s TripService) List() []models.Trip {
	return s.Store.List()
}

// Search applies the free-text filter (route, departure or destination city),
// then the from and to city filters. Order is the store's insertion order.
func (s TripService) Search(q TripQuery) []models.Trip {
	return FilterTrips(s.Store.List(), q)
}

// FilterTrips is the pure filter behind Search.
func FilterTrips(trips []models.Trip, q TripQuery) []models.Trip {
	q = q.Normalize()
	out := trips
	if q.Text != "" {
		out = keep(out, func(t models.Trip) bool {
			return utils.ContainsFold(t.Route, q.Text) ||
				utils.ContainsFold(t.DepartureCity, q.Text) ||
				utils.ContainsFold(t.DestinationCity, q.Text)
		})
	}
	if q.From != "" {
		out = keep(out, func(t models.Trip) bool { return utils.ContainsFold(t.DepartureCity, q.From) })
	}
	if q.To != "" {
		out = keep(out, func(t models.Trip) bool { return utils.ContainsFold(t.DestinationCity, q.To) })
	}
	if out == nil {
		out = []models.Trip{}
	}
	return out
}

func keep(trips []models.Trip, pred func(models.Trip) bool) []models.Trip {
	out := []models.Trip{}
	for _, t := range trips {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s TripService) Create(in models.TripInput) (models.Trip, error) {
	trip, err := models.NewTrip(s.newID(), in)
	if err != nil {
		return models.Trip{}, err
	}
	s.Store.Append(trip)
	utils.LogEvent(s.RequestID, "trip", "create", "trip_id", trip.ID, "route", trip.Route, "seats", trip.TotalSeats)
	return trip, nil
}

func (s TripService) Get(id string) (models.Trip, error) {
	trip, ok := s.Store.FindByID(id)
	if !ok {
		return models.Trip{}, domain.NotFoundError{Resource: "Trip", Err: repositories.ErrTripNotFound}
	}
	return trip, nil
}
