package repositories

import "roadbuddy/internal/domain/models"

// SampleTrips is the trip list used when no database source is configured.
func SampleTrips() []models.Trip {
	return []models.Trip{
		{
			ID:                "1",
			DriverName:        "Sarah M.",
			DriverRating:      4.8,
			Route:             models.RouteLabel("New York", "Boston"),
			DepartureCity:     "New York",
			DestinationCity:   "Boston",
			DepartureTime:     "2025-06-15T09:00:00Z",
			AvailableSeats:    3,
			TotalSeats:        4,
			PricePerPerson:    45.0,
			EstimatedDuration: "4h 30m",
			CarModel:          "Honda Accord",
			Amenities:         []string{"WiFi", "AC", "Music"},
			PickupPoints:      []string{"Penn Station", "Times Square"},
			Description:       "Comfortable ride to Boston with stops in Manhattan",
		},
		{
			ID:                "2",
			DriverName:        "John D.",
			DriverRating:      4.6,
			Route:             models.RouteLabel("Boston", "New York"),
			DepartureCity:     "Boston",
			DestinationCity:   "New York",
			DepartureTime:     "2025-06-16T14:00:00Z",
			AvailableSeats:    2,
			TotalSeats:        4,
			PricePerPerson:    50.0,
			EstimatedDuration: "4h 45m",
			CarModel:          "Toyota Camry",
			Amenities:         []string{"AC", "Phone Charging"},
			PickupPoints:      []string{"South Station", "Back Bay"},
			Description:       "Direct route to NYC with comfortable seating",
		},
		{
			ID:                "3",
			DriverName:        "Mike R.",
			DriverRating:      4.9,
			Route:             models.RouteLabel("New York", "Philadelphia"),
			DepartureCity:     "New York",
			DestinationCity:   "Philadelphia",
			DepartureTime:     "2025-06-17T11:00:00Z",
			AvailableSeats:    1,
			TotalSeats:        4,
			PricePerPerson:    35.0,
			EstimatedDuration: "2h 15m",
			CarModel:          "BMW 3 Series",
			Amenities:         []string{"WiFi", "AC", "Music", "Snacks"},
			PickupPoints:      []string{"Penn Station"},
			Description:       "Quick trip to Philly in luxury vehicle",
		},
	}
}
