package services

import (
	"strings"
	"testing"

	"roadbuddy/internal/domain"
	"roadbuddy/internal/domain/models"
	"roadbuddy/internal/repositories"
)

func newTripService() TripService {
	return TripService{Store: repositories.NewTripStore(repositories.SampleTrips()...)}
}

func ids(trips []models.Trip) []string {
	out := make([]string, 0, len(trips))
	for _, t := range trips {
		out = append(out, t.ID)
	}
	return out
}

func TestSearchEmptyFiltersReturnsEverythingInOrder(t *testing.T) {
	svc := newTripService()
	got := ids(svc.Search(TripQuery{}))
	want := ids(svc.List())
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("search = %v, list = %v", got, want)
	}
}

func TestSearchFreeTextMatchesRouteOrCities(t *testing.T) {
	svc := newTripService()
	svc.Store.Append(models.Trip{ID: "x", Route: "Scenic Loop", DepartureCity: "Albany", DestinationCity: "Troy"})

	for _, q := range []string{"BOSTON", "york", "phil", "scenic", "zzz"} {
		got := svc.Search(TripQuery{Text: q})
		matched := map[string]bool{}
		for _, trip := range got {
			matched[trip.ID] = true
		}
		for _, trip := range svc.List() {
			lq := strings.ToLower(q)
			want := strings.Contains(strings.ToLower(trip.Route), lq) ||
				strings.Contains(strings.ToLower(trip.DepartureCity), lq) ||
				strings.Contains(strings.ToLower(trip.DestinationCity), lq)
			if want != matched[trip.ID] {
				t.Fatalf("query %q: trip %s matched=%v want %v", q, trip.ID, matched[trip.ID], want)
			}
		}
	}
}

func TestSearchCityFiltersCompose(t *testing.T) {
	svc := newTripService()

	got := ids(svc.Search(TripQuery{From: "new york"}))
	if strings.Join(got, ",") != "1,3" {
		t.Fatalf("from=new york -> %v", got)
	}
	got = ids(svc.Search(TripQuery{From: "New York", To: "phil"}))
	if strings.Join(got, ",") != "3" {
		t.Fatalf("from+to -> %v", got)
	}
	got = ids(svc.Search(TripQuery{Text: "boston", To: "new york"}))
	if strings.Join(got, ",") != "2" {
		t.Fatalf("text+to -> %v", got)
	}
	if empty := svc.Search(TripQuery{From: "Chicago"}); empty == nil || len(empty) != 0 {
		t.Fatalf("no match should give empty non-nil slice, got %#v", empty)
	}
}

func TestCreateTripAppendsWithFreshIDs(t *testing.T) {
	svc := newTripService()
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		trip, err := svc.Create(models.TripInput{From: "A", To: "B", Seats: float64(2), Price: float64(20)})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if seen[trip.ID] {
			t.Fatalf("duplicate id %s", trip.ID)
		}
		seen[trip.ID] = true
	}
	if n := svc.Store.Len(); n != 23 {
		t.Fatalf("store len = %d, want 23", n)
	}
}

func TestCreateTripRejectsBadPriceWithoutAppending(t *testing.T) {
	svc := newTripService()
	if _, err := svc.Create(models.TripInput{Price: "twenty"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if n := svc.Store.Len(); n != 3 {
		t.Fatalf("store len = %d, want 3", n)
	}
}

func TestGetTrip(t *testing.T) {
	svc := newTripService()
	if trip, err := svc.Get("2"); err != nil || trip.DriverName != "John D." {
		t.Fatalf("Get(2) = %+v, %v", trip, err)
	}
	if _, err := svc.Get("nope"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
