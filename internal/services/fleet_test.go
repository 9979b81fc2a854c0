package services

import (
	"context"
	"errors"
	"fleet-route-service/internal/domain"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestEstimateFleetRanking(t *testing.T) {
	vehicles := []domain.Vehicle{
		{ID: 2, Name: "Van", Type: domain.VehicleVan, Capacity: 2000, CurrentLoad: 1000, Status: domain.StatusActive, FuelType: domain.FuelGasoline},
		{ID: 7, Name: "Truck B", Type: domain.VehicleTruck, Capacity: 5000, CurrentLoad: 3500, Status: domain.StatusActive, FuelType: domain.FuelDiesel},
		{ID: 3, Name: "Parked", Type: domain.VehicleTruck, Capacity: 5000, CurrentLoad: 0, Status: domain.StatusMaintenance, FuelType: domain.FuelDiesel},
		{ID: 4, Name: "Truck A", Type: domain.VehicleTruck, Capacity: 5000, CurrentLoad: 3500, Status: domain.StatusActive, FuelType: domain.FuelDiesel},
	}

	base := referenceParams()
	base.LoadCapacity = 0

	sum, err := EstimateFleet(context.Background(), NewRouteEstimator(), vehicles, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ids []int
	for _, r := range sum.Ranking {
		ids = append(ids, r.Vehicle.ID)
	}
	want := []int{4, 7, 2}
	if len(ids) != len(want) {
		t.Fatalf("ranking = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ranking = %v, want %v", ids, want)
		}
	}

	if len(sum.SkippedVehicleIDs) != 1 || sum.SkippedVehicleIDs[0] != 3 {
		t.Fatalf("skipped = %v, want [3]", sum.SkippedVehicleIDs)
	}

	truckFuel := 1.608 * 12 * 1.21 * 0.15
	vanFuel := 1.608 * 8 * 1.15 * 0.15
	if !almostEqual(sum.TotalFuelSaved, 2*truckFuel+vanFuel) {
		t.Fatalf("total fuel saved = %v, want %v", sum.TotalFuelSaved, 2*truckFuel+vanFuel)
	}
	if !almostEqual(sum.TotalCostSaved, sum.TotalFuelSaved*DefaultFuelPricePerLiter) {
		t.Fatalf("total cost saved = %v", sum.TotalCostSaved)
	}
	if !almostEqual(sum.TotalDistanceSaved, 3*160.8*0.12) {
		t.Fatalf("total distance saved = %v", sum.TotalDistanceSaved)
	}
}

func TestEstimateFleetPropagatesErrors(t *testing.T) {
	vehicles := []domain.Vehicle{
		{ID: 1, Type: domain.VehicleTruck, Capacity: 5000, Status: domain.StatusActive},
		{ID: 2, Type: domain.VehicleTruck, Capacity: 0, Status: domain.StatusActive},
	}

	_, err := EstimateFleet(context.Background(), NewRouteEstimator(), vehicles, referenceParams())
	if !errors.Is(err, domain.ErrInvalidCapacity) {
		t.Fatalf("err = %v, want ErrInvalidCapacity", err)
	}

	if _, err := EstimateFleet(context.Background(), nil, vehicles, referenceParams()); err == nil {
		t.Fatal("expected error for nil estimator")
	}
}

func TestEstimateFleetEmpty(t *testing.T) {
	sum, err := EstimateFleet(context.Background(), NewRouteEstimator(), nil, referenceParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sum.Ranking) != 0 || sum.TotalCostSaved != 0 {
		t.Fatalf("summary = %+v, want empty", sum)
	}
}

type slowEstimator struct {
	inFlight atomic.Int32
	maxSeen  atomic.Int32
	mu       sync.Mutex
	loads    []float64
}

func (s *slowEstimator) Estimate(ctx context.Context, params domain.OptimizationParameters) (*domain.OptimizationResult, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		m := s.maxSeen.Load()
		if n <= m || s.maxSeen.CompareAndSwap(m, n) {
			break
		}
	}

	s.mu.Lock()
	s.loads = append(s.loads, params.CurrentLoad)
	s.mu.Unlock()

	time.Sleep(5 * time.Millisecond)
	return &domain.OptimizationResult{}, nil
}

func TestEstimateFleetBoundsConcurrency(t *testing.T) {
	vehicles := make([]domain.Vehicle, 20)
	for i := range vehicles {
		vehicles[i] = domain.Vehicle{ID: i + 1, Capacity: 100, CurrentLoad: float64(i), Status: domain.StatusActive}
	}

	est := &slowEstimator{}
	sum, err := EstimateFleet(context.Background(), est, vehicles, referenceParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := est.maxSeen.Load(); got > fleetConcurrency {
		t.Fatalf("max in flight = %d, want <= %d", got, fleetConcurrency)
	}
	if len(est.loads) != 20 || len(sum.Ranking) != 20 {
		t.Fatalf("estimates = %d, ranking = %d, want 20", len(est.loads), len(sum.Ranking))
	}
	// All savings tie at zero, so the ranking falls back to vehicle id.
	for i, r := range sum.Ranking {
		if r.Vehicle.ID != i+1 {
			t.Fatalf("ranking[%d] = vehicle %d, want %d", i, r.Vehicle.ID, i+1)
		}
	}
}
