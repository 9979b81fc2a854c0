package services

import (
	"context"
	"errors"
	"fleet-route-service/internal/costmodel"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/metrics"
	"fleet-route-service/internal/platform/obs"
	"fleet-route-service/internal/ports"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultFuelPricePerLiter = 2.50
	DefaultCurrency          = "MYR"

	// Optimized area is the baseline area grown by this fraction.
	areaCoverageGain = 0.15
)

// RouteEstimator produces before/after cost comparisons.
// It holds no mutable state and is safe for concurrent use.
type RouteEstimator struct {
	baseline  ports.BaselineSource
	profiles  Profiles
	factors   costmodel.EmissionFactors
	fuelPrice float64
	currency  string
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

type Option func(*RouteEstimator)

func WithBaseline(b ports.BaselineSource) Option {
	return func(e *RouteEstimator) {
		if b != nil {
			e.baseline = b
		}
	}
}

func WithProfiles(p Profiles) Option {
	return func(e *RouteEstimator) {
		if len(p) > 0 {
			e.profiles = p
		}
	}
}

func WithEmissionFactors(f costmodel.EmissionFactors) Option {
	return func(e *RouteEstimator) {
		if len(f) > 0 {
			e.factors = f
		}
	}
}

// WithFuelPrice sets the price per liter used for the cost saving.
// An empty currency keeps the current one.
func WithFuelPrice(perLiter float64, currency string) Option {
	return func(e *RouteEstimator) {
		e.fuelPrice = perLiter
		if currency != "" {
			e.currency = currency
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(e *RouteEstimator) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *RouteEstimator) { e.metrics = m }
}

func NewRouteEstimator(opts ...Option) *RouteEstimator {
	e := &RouteEstimator{
		baseline:  DefaultBaseline,
		profiles:  DefaultProfiles,
		factors:   costmodel.DefaultEmissionFactors,
		fuelPrice: DefaultFuelPricePerLiter,
		currency:  DefaultCurrency,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *RouteEstimator) Currency() string { return e.currency }

func (e *RouteEstimator) FuelPrice() float64 { return e.fuelPrice }

// Estimate computes the current cost of the route described by params,
// the projected cost under the selected priority, and the savings between them.
func (e *RouteEstimator) Estimate(ctx context.Context, params domain.OptimizationParameters) (res *domain.OptimizationResult, err error) {
	defer obs.Time(ctx, "estimate route")(&err)

	start := time.Now()
	defer func() {
		outcome := "ok"
		fuelSaved := 0.0
		switch {
		case err != nil && isInvalidInput(err):
			outcome = "invalid"
		case err != nil:
			outcome = "error"
		default:
			fuelSaved = res.Savings.Fuel
		}
		e.metrics.ObserveEstimate(string(params.Priority), outcome, time.Since(start), fuelSaved)
	}()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("estimate route: %w", err)
	}
	if err := validate(params); err != nil {
		return nil, fmt.Errorf("estimate route: %w", err)
	}

	base, err := e.baseline.Baseline(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("estimate route: baseline: %w", err)
	}

	current, err := e.cost(base.DistanceKm, base.AreaKm2, len(params.Destinations), params)
	if err != nil {
		return nil, fmt.Errorf("estimate route: %w", err)
	}

	prof := e.profiles.Lookup(params.Priority)

	optFuel := current.Fuel * (1 - prof.Fuel)
	optimized := domain.RouteCostEstimate{
		Distance:        current.Distance * (1 - prof.Distance),
		Fuel:            optFuel,
		CO2:             e.factors.CO2(optFuel, params.FuelType),
		Time:            current.Time * (1 - prof.Time),
		Area:            current.Area * (1 + areaCoverageGain),
		LoadUtilization: current.LoadUtilization,
	}

	res = &domain.OptimizationResult{
		Current:   current,
		Optimized: optimized,
		Savings:   e.savings(current, optimized),
	}

	e.logger.Debug("route estimated",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.String("priority", string(params.Priority)),
		zap.Int("stops", len(params.Destinations)),
		zap.Float64("distance_km", current.Distance),
		zap.Float64("fuel_saved_l", res.Savings.Fuel),
	)

	return res, nil
}

func validate(params domain.OptimizationParameters) error {
	if params.LoadCapacity <= 0 {
		return domain.ErrInvalidCapacity
	}
	if params.CurrentLoad < 0 {
		return domain.ErrInvalidLoad
	}
	if len(params.Destinations) == 0 {
		return domain.ErrEmptyRoute
	}
	return nil
}

func isInvalidInput(err error) bool {
	return errors.Is(err, domain.ErrInvalidCapacity) ||
		errors.Is(err, domain.ErrInvalidLoad) ||
		errors.Is(err, domain.ErrEmptyRoute) ||
		errors.Is(err, domain.ErrUnknownLocation)
}

func (e *RouteEstimator) cost(distanceKm, areaKm2 float64, stops int, params domain.OptimizationParameters) (domain.RouteCostEstimate, error) {
	fuel, err := costmodel.Fuel(distanceKm, params.CurrentLoad, params.LoadCapacity, params.VehicleType)
	if err != nil {
		return domain.RouteCostEstimate{}, err
	}
	util, err := costmodel.LoadUtilization(params.CurrentLoad, params.LoadCapacity)
	if err != nil {
		return domain.RouteCostEstimate{}, err
	}

	return domain.RouteCostEstimate{
		Distance:        distanceKm,
		Fuel:            fuel,
		CO2:             e.factors.CO2(fuel, params.FuelType),
		Time:            costmodel.TravelTime(distanceKm, stops),
		Area:            areaKm2,
		LoadUtilization: util,
	}, nil
}

func (e *RouteEstimator) savings(cur, opt domain.RouteCostEstimate) domain.SavingsBreakdown {
	s := domain.SavingsBreakdown{
		Distance: cur.Distance - opt.Distance,
		Fuel:     cur.Fuel - opt.Fuel,
		CO2:      cur.CO2 - opt.CO2,
		Time:     cur.Time - opt.Time,
	}
	s.Cost = s.Fuel * e.fuelPrice
	s.DistancePercent = percentOf(s.Distance, cur.Distance)
	s.FuelPercent = percentOf(s.Fuel, cur.Fuel)
	s.CO2Percent = percentOf(s.CO2, cur.CO2)
	s.TimePercent = percentOf(s.Time, cur.Time)
	return s
}

// percentOf returns part as a percentage of whole, or 0 when whole is 0.
func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
