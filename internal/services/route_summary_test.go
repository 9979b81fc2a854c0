package services

import (
	"errors"
	"fleet-route-service/internal/adapters/refdata"
	"fleet-route-service/internal/costmodel"
	"fleet-route-service/internal/domain"
	"testing"
)

func testRoute() domain.Route {
	return domain.Route{
		ID:   9,
		Name: "Test Loop",
		// Listed out of order on purpose.
		Waypoints: []domain.Waypoint{
			{Name: "B", Order: 3, Coordinates: testLocations["B"]},
			{Name: "HUB", Order: 1, Coordinates: testLocations["HUB"]},
			{Name: "A", Order: 2, Coordinates: testLocations["A"]},
		},
	}
}

func TestSummarizeRoute(t *testing.T) {
	v := domain.Vehicle{ID: 1, Type: domain.VehicleVan, Capacity: 2000, CurrentLoad: 500, FuelType: domain.FuelCNG}

	got, err := SummarizeRoute(testRoute(), v, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	points := []domain.Coordinates{testLocations["HUB"], testLocations["A"], testLocations["B"]}
	dist := costmodel.Distance(points[0], points[1]) + costmodel.Distance(points[1], points[2])
	fuel := dist / 100 * 8 * (1 + 0.25*0.3)

	if !almostEqual(got.Distance, dist) {
		t.Fatalf("distance = %v, want %v", got.Distance, dist)
	}
	if !almostEqual(got.Fuel, fuel) {
		t.Fatalf("fuel = %v, want %v", got.Fuel, fuel)
	}
	if !almostEqual(got.CO2, fuel*1.94) {
		t.Fatalf("co2 = %v, want %v", got.CO2, fuel*1.94)
	}
	if want := costmodel.TravelTime(dist, 2); got.Time != want {
		t.Fatalf("time = %v, want %v", got.Time, want)
	}
	if want := costmodel.AreaCoverage(points); !almostEqual(got.Area, want) {
		t.Fatalf("area = %v, want %v", got.Area, want)
	}
	if got.LoadUtilization != 25 {
		t.Fatalf("utilization = %v, want 25", got.LoadUtilization)
	}
}

func TestSummarizeRouteErrors(t *testing.T) {
	v := domain.Vehicle{ID: 1, Type: domain.VehicleTruck, Capacity: 1000}

	if _, err := SummarizeRoute(domain.Route{ID: 1}, v, nil); !errors.Is(err, domain.ErrEmptyRoute) {
		t.Fatalf("empty route err = %v, want ErrEmptyRoute", err)
	}

	v.Capacity = 0
	if _, err := SummarizeRoute(testRoute(), v, nil); !errors.Is(err, domain.ErrInvalidCapacity) {
		t.Fatalf("zero capacity err = %v, want ErrInvalidCapacity", err)
	}
}

func TestSummarizeFixtureRoutes(t *testing.T) {
	ds, err := refdata.Default()
	if err != nil {
		t.Fatalf("load default dataset: %v", err)
	}
	store := refdata.NewStore(ds)

	v, err := store.Vehicle(1)
	if err != nil {
		t.Fatalf("vehicle 1: %v", err)
	}

	for _, r := range store.Routes() {
		got, err := SummarizeRoute(r, v, store.EmissionFactors())
		if err != nil {
			t.Fatalf("route %d: %v", r.ID, err)
		}
		if got.Distance <= 0 || got.Fuel <= 0 || got.Time <= 0 {
			t.Fatalf("route %d summary = %+v, want positive distance/fuel/time", r.ID, got)
		}
	}
}
