// Package app assembles the estimator and its collaborators from configuration.
// Both binaries share it so they compute identical figures.
package app

import (
	"fleet-route-service/internal/adapters/cache"
	"fleet-route-service/internal/adapters/distance"
	"fleet-route-service/internal/adapters/refdata"
	"fleet-route-service/internal/config"
	"fleet-route-service/internal/platform/metrics"
	"fleet-route-service/internal/ports"
	"fleet-route-service/internal/services"
	"fmt"

	"go.uber.org/zap"
)

// LoadStore reads the dataset at path, or the embedded one when path is empty.
func LoadStore(path string) (*refdata.Store, error) {
	var (
		ds  *refdata.Dataset
		err error
	)
	if path == "" {
		ds, err = refdata.Default()
	} else {
		ds, err = refdata.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	return refdata.NewStore(ds), nil
}

// NewBaseline builds the configured baseline source. The waypoint source
// measures great-circle legs between dataset locations.
func NewBaseline(cfg config.EstimatorConfig, store *refdata.Store, logger *zap.Logger) (ports.BaselineSource, error) {
	switch cfg.Baseline {
	case "", config.BaselineFixed:
		return services.FixedBaseline{DistanceKm: cfg.BaselineDistanceKm, AreaKm2: cfg.BaselineAreaKm2}, nil
	case config.BaselineWaypoints:
		provider, err := distance.NewGreatCircleProvider(store, cache.NewDistanceCache(), logger)
		if err != nil {
			return nil, fmt.Errorf("new baseline: %w", err)
		}
		b, err := services.NewWaypointBaseline(store, provider)
		if err != nil {
			return nil, fmt.Errorf("new baseline: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("new baseline: unknown baseline %q", cfg.Baseline)
	}
}

// NewEstimator wires a RouteEstimator with the dataset's emission factors.
// m may be nil.
func NewEstimator(cfg config.EstimatorConfig, store *refdata.Store, logger *zap.Logger, m *metrics.Metrics) (*services.RouteEstimator, error) {
	baseline, err := NewBaseline(cfg, store, logger)
	if err != nil {
		return nil, err
	}

	return services.NewRouteEstimator(
		services.WithBaseline(baseline),
		services.WithEmissionFactors(store.EmissionFactors()),
		services.WithFuelPrice(cfg.FuelPricePerLiter, cfg.Currency),
		services.WithLogger(logger),
		services.WithMetrics(m),
	), nil
}
