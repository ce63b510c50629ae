package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var tripSeedColumns = []string{
	"id", "driver_name", "driver_rating", "departure_city", "destination_city",
	"departure_time", "available_seats", "total_seats", "price_per_person",
	"estimated_duration", "car_model", "amenities", "pickup_points", "description",
}

func TestTripSeedRepositoryLoadsRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("trips").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("trips"))
	mock.ExpectQuery("FROM trips").
		WillReturnRows(sqlmock.NewRows(tripSeedColumns).
			AddRow("10", "Ana K.", 4.7, "Seattle", "Portland", "2025-07-01T08:00:00Z", 2, 3, 30.0, "3h", "Subaru Outback", "AC, WiFi", "Pike Place", "Scenic").
			AddRow("11", "Ben L.", 4.2, "Portland", "Seattle", "", 1, 4, 28.5, "3h 10m", "Prius", nil, nil, ""))

	trips, err := TripSeedRepository{DB: db}.LoadTrips(context.Background())
	if err != nil {
		t.Fatalf("LoadTrips: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("got %d trips, want 2", len(trips))
	}
	first := trips[0]
	if first.Route != "Seattle → Portland" {
		t.Fatalf("route = %q", first.Route)
	}
	if len(first.Amenities) != 2 || first.Amenities[1] != "WiFi" {
		t.Fatalf("amenities = %v", first.Amenities)
	}
	if trips[1].Amenities == nil || len(trips[1].Amenities) != 0 {
		t.Fatalf("null amenities should become empty slice, got %#v", trips[1].Amenities)
	}
	if trips[1].PricePerPerson != 28.5 || trips[1].AvailableSeats != 1 {
		t.Fatalf("second trip = %+v", trips[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripSeedRepositoryMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("trips").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	trips, err := TripSeedRepository{DB: db}.LoadTrips(context.Background())
	if err != nil {
		t.Fatalf("LoadTrips: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("expected no trips, got %d", len(trips))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
