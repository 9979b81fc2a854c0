package services

import (
	"cmp"
	"context"
	"errors"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/obs"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Estimates fanned out concurrently by EstimateFleet.
const fleetConcurrency = 5

// Estimator is the subset of RouteEstimator the fleet run needs.
type Estimator interface {
	Estimate(ctx context.Context, params domain.OptimizationParameters) (*domain.OptimizationResult, error)
}

type VehicleEstimate struct {
	Vehicle domain.Vehicle             `json:"vehicle"`
	Result  *domain.OptimizationResult `json:"result"`
}

// FleetSummary ranks vehicles by projected cost saving, highest first.
type FleetSummary struct {
	Ranking            []VehicleEstimate `json:"ranking"`
	SkippedVehicleIDs  []int             `json:"skippedVehicleIds"`
	TotalDistanceSaved float64           `json:"totalDistanceSaved"`
	TotalFuelSaved     float64           `json:"totalFuelSaved"`
	TotalCO2Saved      float64           `json:"totalCo2Saved"`
	TotalCostSaved     float64           `json:"totalCostSaved"`
}

// EstimateFleet runs the estimator once per active vehicle, substituting the
// vehicle's capacity, load, type and fuel into base. Vehicles that are not
// active are listed as skipped. The first failing estimate aborts the run.
func EstimateFleet(
	ctx context.Context,
	est Estimator,
	vehicles []domain.Vehicle,
	base domain.OptimizationParameters,
) (summary *FleetSummary, err error) {
	defer obs.Time(ctx, "estimate fleet")(&err)

	if est == nil {
		return nil, errors.New("estimate fleet: estimator must be non-nil")
	}

	active := make([]domain.Vehicle, 0, len(vehicles))
	skipped := []int{}
	for _, v := range vehicles {
		if !v.IsActive() {
			skipped = append(skipped, v.ID)
			continue
		}
		active = append(active, v)
	}

	// Each goroutine writes only its own slot.
	results := make([]VehicleEstimate, len(active))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fleetConcurrency)

	for i, v := range active {
		g.Go(func() error {
			params := base
			params.LoadCapacity = v.Capacity
			params.CurrentLoad = v.CurrentLoad
			params.VehicleType = v.Type
			params.FuelType = v.FuelType

			res, err := est.Estimate(gctx, params)
			if err != nil {
				return fmt.Errorf("estimate fleet: vehicle %d: %w", v.ID, err)
			}
			results[i] = VehicleEstimate{Vehicle: v, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b VehicleEstimate) int {
		if c := cmp.Compare(b.Result.Savings.Cost, a.Result.Savings.Cost); c != 0 {
			return c
		}
		return cmp.Compare(a.Vehicle.ID, b.Vehicle.ID)
	})

	summary = &FleetSummary{Ranking: results, SkippedVehicleIDs: skipped}
	for _, r := range results {
		summary.TotalDistanceSaved += r.Result.Savings.Distance
		summary.TotalFuelSaved += r.Result.Savings.Fuel
		summary.TotalCO2Saved += r.Result.Savings.CO2
		summary.TotalCostSaved += r.Result.Savings.Cost
	}
	return summary, nil
}
