package app

import (
	"context"
	"fleet-route-service/internal/config"
	"fleet-route-service/internal/services"
	"testing"

	"go.uber.org/zap"
)

func TestNewEstimatorFixed(t *testing.T) {
	store, err := LoadStore("")
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	cfg := config.EstimatorConfig{
		Baseline:           config.BaselineFixed,
		BaselineDistanceKm: 160.8,
		BaselineAreaKm2:    450,
		FuelPricePerLiter:  3,
		Currency:           "SGD",
	}
	est, err := NewEstimator(cfg, store, zap.NewNop(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := est.Estimate(context.Background(), store.DefaultParameters())
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if res.Current.Distance != 160.8 || est.Currency() != "SGD" {
		t.Fatalf("distance %v currency %s", res.Current.Distance, est.Currency())
	}
	if d := res.Savings.Cost - res.Savings.Fuel*3; d > 1e-9 || d < -1e-9 {
		t.Fatalf("cost = %v, want fuel saved x 3", res.Savings.Cost)
	}
}

func TestNewEstimatorWaypoints(t *testing.T) {
	store, err := LoadStore("")
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	b, err := NewBaseline(config.EstimatorConfig{Baseline: config.BaselineWaypoints}, store, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := b.(*services.WaypointBaseline); !ok {
		t.Fatalf("baseline = %T, want *services.WaypointBaseline", b)
	}

	got, err := b.Baseline(context.Background(), store.DefaultParameters())
	if err != nil {
		t.Fatalf("baseline: %v", err)
	}
	if got.DistanceKm <= 0 || got.AreaKm2 <= 0 {
		t.Fatalf("baseline = %+v, want positive distance and area", got)
	}
}

func TestNewBaselineUnknown(t *testing.T) {
	store, _ := LoadStore("")
	if _, err := NewBaseline(config.EstimatorConfig{Baseline: "magic"}, store, nil); err == nil {
		t.Fatal("expected error for unknown baseline")
	}
	if _, err := LoadStore("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing dataset")
	}
}
