package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "roadbuddy/internal/db"
	"roadbuddy/internal/domain/models"
	"roadbuddy/internal/utils"
)

const tripSeedTable = "trips"

// TripSeedRepository reads the startup trip list from MySQL. It never writes.
type TripSeedRepository struct {
	DB *sql.DB
}

// LoadTrips returns every row of the trips table ordered by id. A missing
// table yields an empty list, not an error.
func (r TripSeedRepository) LoadTrips(ctx context.Context) ([]models.Trip, error) {
	if r.DB == nil {
		return nil, fmt.Errorf("trip seed: no database")
	}
	if !intdb.HasTable(r.DB, tripSeedTable) {
		return []models.Trip{}, nil
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id,
		       COALESCE(driver_name,''), COALESCE(driver_rating,0),
		       COALESCE(departure_city,''), COALESCE(destination_city,''),
		       COALESCE(departure_time,''),
		       COALESCE(available_seats,0), COALESCE(total_seats,0),
		       COALESCE(price_per_person,0),
		       COALESCE(estimated_duration,''), COALESCE(car_model,''),
		       amenities, pickup_points,
		       COALESCE(description,'')
		FROM trips
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		var (
			t                       models.Trip
			amenities, pickupPoints sql.NullString
		)
		if err := rows.Scan(
			&t.ID,
			&t.DriverName,
			&t.DriverRating,
			&t.DepartureCity,
			&t.DestinationCity,
			&t.DepartureTime,
			&t.AvailableSeats,
			&t.TotalSeats,
			&t.PricePerPerson,
			&t.EstimatedDuration,
			&t.CarModel,
			&amenities,
			&pickupPoints,
			&t.Description,
		); err != nil {
			return out, fmt.Errorf("scan trip: %w", err)
		}
		t.Route = models.RouteLabel(t.DepartureCity, t.DestinationCity)
		t.Amenities = utils.SplitList(intdb.NullString(amenities))
		t.PickupPoints = utils.SplitList(intdb.NullString(pickupPoints))
		out = append(out, t)
	}
	return out, rows.Err()
}
