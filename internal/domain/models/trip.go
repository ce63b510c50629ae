package models

import (
	"strings"

	"roadbuddy/internal/domain"
	"roadbuddy/internal/utils"
)

const (
	// DefaultDriverRating is given to trips created through the API, which
	// accepts no rating input.
	DefaultDriverRating = 4.5

	defaultDriverName = "Anonymous"
	defaultDuration   = "TBD"
	defaultCarModel   = "Standard Vehicle"
	defaultSeats      = 1
)

// Trip is an offered ride.
type Trip struct {
	ID                string   `json:"id"`
	DriverName        string   `json:"driverName"`
	DriverRating      float64  `json:"driverRating"`
	Route             string   `json:"route"`
	DepartureCity     string   `json:"departureCity"`
	DestinationCity   string   `json:"destinationCity"`
	DepartureTime     string   `json:"departureTime"`
	AvailableSeats    int      `json:"availableSeats"`
	TotalSeats        int      `json:"totalSeats"`
	PricePerPerson    float64  `json:"pricePerPerson"`
	EstimatedDuration string   `json:"estimatedDuration"`
	CarModel          string   `json:"carModel"`
	Amenities         []string `json:"amenities"`
	PickupPoints      []string `json:"pickupPoints"`
	Description       string   `json:"description"`
}

// Clone returns a copy that shares no slices with t.
func (t Trip) Clone() Trip {
	out := t
	out.Amenities = append([]string{}, t.Amenities...)
	out.PickupPoints = append([]string{}, t.PickupPoints...)
	return out
}

// RouteLabel builds the display route, e.g. "New York → Boston".
func RouteLabel(from, to string) string {
	return from + " → " + to
}

// TripInput is the body of a trip creation request. Seats and Price stay
// untyped so numeric strings are accepted as well as JSON numbers.
type TripInput struct {
	From          string   `json:"from"`
	FromCity      string   `json:"fromCity"`
	To            string   `json:"to"`
	ToCity        string   `json:"toCity"`
	DepartureTime string   `json:"departureTime"`
	Seats         any      `json:"seats"`
	Price         any      `json:"price"`
	Duration      string   `json:"duration"`
	CarModel      string   `json:"carModel"`
	Amenities     []string `json:"amenities"`
	PickupPoints  []string `json:"pickupPoints"`
	Description   string   `json:"description"`
	DriverName    string   `json:"driverName"`
}

// NewTrip validates in and builds a trip with the given id.
func NewTrip(id string, in TripInput) (Trip, error) {
	seats := defaultSeats
	if in.Seats != nil {
		n, err := utils.ParseInt(in.Seats)
		if err != nil {
			return Trip{}, domain.ValidationError{Field: "seats", Msg: "must be an integer", Err: err}
		}
		seats = n
	}
	if seats < 0 {
		return Trip{}, domain.ValidationError{Field: "seats", Msg: "must not be negative"}
	}

	var price float64
	if in.Price != nil {
		p, err := utils.ParseFloat(in.Price)
		if err != nil {
			return Trip{}, domain.ValidationError{Field: "price", Msg: "must be a number", Err: err}
		}
		price = p
	}
	if price < 0 {
		return Trip{}, domain.ValidationError{Field: "price", Msg: "must not be negative"}
	}

	from := utils.FirstNonEmpty(in.From, in.FromCity)
	to := utils.FirstNonEmpty(in.To, in.ToCity)

	return Trip{
		ID:                id,
		DriverName:        orDefault(in.DriverName, defaultDriverName),
		DriverRating:      DefaultDriverRating,
		Route:             RouteLabel(from, to),
		DepartureCity:     from,
		DestinationCity:   to,
		DepartureTime:     strings.TrimSpace(in.DepartureTime),
		AvailableSeats:    seats,
		TotalSeats:        seats,
		PricePerPerson:    price,
		EstimatedDuration: orDefault(in.Duration, defaultDuration),
		CarModel:          orDefault(in.CarModel, defaultCarModel),
		Amenities:         cleanList(in.Amenities),
		PickupPoints:      cleanList(in.PickupPoints),
		Description:       strings.TrimSpace(in.Description),
	}, nil
}

func orDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
