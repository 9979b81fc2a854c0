package costmodel

import (
	"errors"
	"fleet-route-service/internal/domain"
	"math"
	"testing"
)

const tolerance = 1e-9

var (
	warehouse    = domain.Coordinates{Lat: 3.1390, Lon: 101.6869}
	petaling     = domain.Coordinates{Lat: 3.1073, Lon: 101.6670}
	shahAlam     = domain.Coordinates{Lat: 3.0733, Lon: 101.5185}
	klang        = domain.Coordinates{Lat: 3.0333, Lon: 101.4500}
	london       = domain.Coordinates{Lat: 51.5074, Lon: -0.1278}
	paris        = domain.Coordinates{Lat: 48.8566, Lon: 2.3522}
	nullIsland   = domain.Coordinates{}
	oneDegreeLat = domain.Coordinates{Lat: 1}
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestDistanceKnownPairs(t *testing.T) {
	// London -> Paris is about 343.5 km on a 6371 km sphere.
	if d := Distance(london, paris); !almostEqual(d, 343.5, 0.5) {
		t.Fatalf("London->Paris = %.3f km, want ~343.5", d)
	}

	// One degree of latitude is R*pi/180.
	want := EarthRadiusKm * math.Pi / 180
	if d := Distance(nullIsland, oneDegreeLat); !almostEqual(d, want, 1e-9) {
		t.Fatalf("1 degree = %.9f km, want %.9f", d, want)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]domain.Coordinates{
		{warehouse, klang},
		{london, paris},
		{nullIsland, shahAlam},
		{{Lat: -33.9, Lon: 151.2}, {Lat: 40.7, Lon: -74.0}},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		if !almostEqual(ab, ba, tolerance) {
			t.Fatalf("Distance(%v,%v)=%v but reverse=%v", p[0], p[1], ab, ba)
		}
	}
}

func TestDistanceZeroOnlyForIdenticalPoints(t *testing.T) {
	for _, c := range []domain.Coordinates{warehouse, london, nullIsland} {
		if d := Distance(c, c); d != 0 {
			t.Fatalf("Distance(%v, itself) = %v, want 0", c, d)
		}
	}

	if d := Distance(warehouse, petaling); d <= 0 {
		t.Fatalf("distinct points gave non-positive distance %v", d)
	}
}

func TestDistanceNaNPropagates(t *testing.T) {
	bad := domain.Coordinates{Lat: math.NaN(), Lon: 0}
	if d := Distance(bad, warehouse); !math.IsNaN(d) {
		t.Fatalf("expected NaN, got %v", d)
	}
}

func TestRouteDistance(t *testing.T) {
	if d := RouteDistance(nil); d != 0 {
		t.Fatalf("empty route = %v, want 0", d)
	}
	if d := RouteDistance([]domain.Coordinates{warehouse}); d != 0 {
		t.Fatalf("single waypoint = %v, want 0", d)
	}

	got := RouteDistance([]domain.Coordinates{warehouse, petaling, shahAlam})
	want := Distance(warehouse, petaling) + Distance(petaling, shahAlam)
	if !almostEqual(got, want, tolerance) {
		t.Fatalf("RouteDistance = %v, want %v", got, want)
	}
}

func TestFuel(t *testing.T) {
	// Reference scenario: 160.8 km, 3500/5000 kg truck.
	got, err := Fuel(160.8, 3500, 5000, domain.VehicleTruck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 1.608 * 12 * 1.21
	if !almostEqual(got, want, tolerance) {
		t.Fatalf("Fuel = %v, want %v", got, want)
	}

	empty, _ := Fuel(100, 0, 2000, domain.VehicleVan)
	if !almostEqual(empty, 8, tolerance) {
		t.Fatalf("empty van over 100km = %v, want 8", empty)
	}

	full, _ := Fuel(100, 2000, 2000, domain.VehicleVan)
	if !almostEqual(full, 8*1.3, tolerance) {
		t.Fatalf("full van over 100km = %v, want %v", full, 8*1.3)
	}

	// Unknown vehicle types are rated as vans.
	other, _ := Fuel(100, 0, 2000, domain.VehicleType("scooter"))
	if !almostEqual(other, empty, tolerance) {
		t.Fatalf("unknown vehicle = %v, want %v", other, empty)
	}
}

func TestFuelMonotonicInLoad(t *testing.T) {
	prev := -1.0
	for load := 0.0; load <= 5000; load += 250 {
		f, err := Fuel(120, load, 5000, domain.VehicleTruck)
		if err != nil {
			t.Fatalf("load %v: %v", load, err)
		}
		if f < prev {
			t.Fatalf("fuel decreased at load %v: %v < %v", load, f, prev)
		}
		prev = f
	}
}

func TestFuelInvalidInput(t *testing.T) {
	if _, err := Fuel(100, 10, 0, domain.VehicleTruck); !errors.Is(err, domain.ErrInvalidCapacity) {
		t.Fatalf("zero capacity: err = %v, want ErrInvalidCapacity", err)
	}
	if _, err := Fuel(100, 10, -5, domain.VehicleTruck); !errors.Is(err, domain.ErrInvalidCapacity) {
		t.Fatalf("negative capacity: err = %v, want ErrInvalidCapacity", err)
	}
	if _, err := Fuel(100, -1, 100, domain.VehicleTruck); !errors.Is(err, domain.ErrInvalidLoad) {
		t.Fatalf("negative load: err = %v, want ErrInvalidLoad", err)
	}
}

func TestCO2(t *testing.T) {
	tests := []struct {
		fuel domain.FuelType
		want float64
	}{
		{domain.FuelDiesel, 2.68},
		{domain.FuelGasoline, 2.31},
		{domain.FuelCNG, 1.94},
		{domain.FuelElectric, 0.5},
		{domain.FuelType("hydrogen"), 2.68},
		{domain.FuelType(""), 2.68},
	}

	for _, tt := range tests {
		if got := CO2(1, tt.fuel); !almostEqual(got, tt.want, tolerance) {
			t.Fatalf("CO2(1, %q) = %v, want %v", tt.fuel, got, tt.want)
		}
	}
}

func TestCO2Linear(t *testing.T) {
	for _, ft := range []domain.FuelType{domain.FuelDiesel, domain.FuelGasoline, domain.FuelCNG, domain.FuelElectric} {
		for _, x := range []float64{0, 1.5, 23.64, 1000} {
			if got, want := CO2(2*x, ft), 2*CO2(x, ft); !almostEqual(got, want, 1e-9) {
				t.Fatalf("CO2(2*%v, %s) = %v, want %v", x, ft, got, want)
			}
		}
	}
}

func TestEmissionFactorsCustomTable(t *testing.T) {
	f := EmissionFactors{domain.FuelDiesel: 3, domain.FuelCNG: 1}
	if got := f.Factor(domain.FuelGasoline); got != 3 {
		t.Fatalf("missing entry should fall back to table diesel, got %v", got)
	}

	// A table without diesel still falls back to the published diesel factor.
	g := EmissionFactors{domain.FuelCNG: 1}
	if got := g.Factor(domain.FuelGasoline); got != 2.68 {
		t.Fatalf("fallback factor = %v, want 2.68", got)
	}
}

func TestTravelTime(t *testing.T) {
	if got := TravelTime(160.8, 4); got != 274 {
		t.Fatalf("TravelTime(160.8, 4) = %v, want 274", got)
	}
	if got := TravelTime(45, 0); got != 60 {
		t.Fatalf("TravelTime(45, 0) = %v, want 60", got)
	}

	// Each additional stop adds exactly 15 minutes.
	for stops := 0; stops < 10; stops++ {
		a := TravelTime(72.3, stops)
		b := TravelTime(72.3, stops+1)
		if b-a != 15 {
			t.Fatalf("stops %d->%d added %v minutes, want 15", stops, stops+1, b-a)
		}
	}
}

func TestAreaCoverage(t *testing.T) {
	if got := AreaCoverage(nil); got != 0 {
		t.Fatalf("nil = %v, want 0", got)
	}
	if got := AreaCoverage([]domain.Coordinates{warehouse, klang}); got != 0 {
		t.Fatalf("two points = %v, want 0", got)
	}

	pts := []domain.Coordinates{warehouse, petaling, shahAlam, klang}
	corner := domain.Coordinates{Lat: klang.Lat, Lon: klang.Lon}
	ns := Distance(corner, domain.Coordinates{Lat: warehouse.Lat, Lon: klang.Lon})
	ew := Distance(corner, domain.Coordinates{Lat: klang.Lat, Lon: warehouse.Lon})

	if got := AreaCoverage(pts); !almostEqual(got, ns*ew, 1e-9) {
		t.Fatalf("AreaCoverage = %v, want %v", got, ns*ew)
	}

	// Collinear points along a meridian have no east-west extent.
	line := []domain.Coordinates{{Lat: 0}, {Lat: 1}, {Lat: 2}}
	if got := AreaCoverage(line); got != 0 {
		t.Fatalf("collinear = %v, want 0", got)
	}
}

func TestLoadUtilization(t *testing.T) {
	if got, _ := LoadUtilization(3500, 5000); !almostEqual(got, 70, tolerance) {
		t.Fatalf("utilization = %v, want 70", got)
	}
	if got, _ := LoadUtilization(6000, 5000); !almostEqual(got, 120, tolerance) {
		t.Fatalf("overload utilization = %v, want 120", got)
	}
	if _, err := LoadUtilization(1, 0); !errors.Is(err, domain.ErrInvalidCapacity) {
		t.Fatalf("err = %v, want ErrInvalidCapacity", err)
	}
}
