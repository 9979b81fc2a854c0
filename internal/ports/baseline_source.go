package ports

import (
	"context"
	"fleet-route-service/internal/domain"
)

// Distance and area of the current (unoptimized) route.
type Baseline struct {
	DistanceKm float64
	AreaKm2    float64
}

// Port: supplies the baseline route geometry the estimator compares against.
// Implementations decide whether it is a reference constant or derived from
// the parameters' locations.
type BaselineSource interface {
	Baseline(ctx context.Context, params domain.OptimizationParameters) (Baseline, error)
}
