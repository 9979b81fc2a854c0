package services

import (
	"context"
	"errors"
	"fleet-route-service/internal/costmodel"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/ports"
	"fmt"
	"strings"
)

const (
	ReferenceDistanceKm = 160.8
	ReferenceAreaKm2    = 450.0
)

// FixedBaseline reports the same geometry for every request.
type FixedBaseline struct {
	DistanceKm float64
	AreaKm2    float64
}

// DefaultBaseline reproduces the dashboard's reference route.
var DefaultBaseline = FixedBaseline{DistanceKm: ReferenceDistanceKm, AreaKm2: ReferenceAreaKm2}

func (b FixedBaseline) Baseline(ctx context.Context, params domain.OptimizationParameters) (ports.Baseline, error) {
	return ports.Baseline{DistanceKm: b.DistanceKm, AreaKm2: b.AreaKm2}, nil
}

// WaypointBaseline derives the baseline from the named stops: start, then
// each destination in the given order. Legs come from the distance provider
// and the area from the bounding box of the resolved stops.
type WaypointBaseline struct {
	locations ports.LocationResolver
	distances ports.DistanceProvider
}

func NewWaypointBaseline(locations ports.LocationResolver, distances ports.DistanceProvider) (*WaypointBaseline, error) {
	if locations == nil {
		return nil, errors.New("waypoint baseline: location resolver must be non-nil")
	}
	if distances == nil {
		return nil, errors.New("waypoint baseline: distance provider must be non-nil")
	}
	return &WaypointBaseline{locations: locations, distances: distances}, nil
}

func (b *WaypointBaseline) Baseline(ctx context.Context, params domain.OptimizationParameters) (ports.Baseline, error) {
	start := strings.Join(strings.Fields(params.StartLocation), " ")
	if start == "" {
		return ports.Baseline{}, errors.New("waypoint baseline: startLocation must be non-empty")
	}
	if len(params.Destinations) == 0 {
		return ports.Baseline{}, fmt.Errorf("waypoint baseline: %w", domain.ErrEmptyRoute)
	}

	stops := make([]string, 0, len(params.Destinations)+1)
	stops = append(stops, start)
	for _, d := range params.Destinations {
		stops = append(stops, strings.Join(strings.Fields(d), " "))
	}

	points := make([]domain.Coordinates, 0, len(stops))
	for _, s := range stops {
		loc, err := b.locations.Locate(s)
		if err != nil {
			return ports.Baseline{}, fmt.Errorf("waypoint baseline: %w", err)
		}
		points = append(points, loc.Coordinates)
	}

	legs, err := b.legDistances(ctx, stops)
	if err != nil {
		return ports.Baseline{}, fmt.Errorf("waypoint baseline: %w", err)
	}

	total := 0.0
	for _, km := range legs {
		total += km
	}

	return ports.Baseline{DistanceKm: total, AreaKm2: costmodel.AreaCoverage(points)}, nil
}

// legDistances returns the distance of each consecutive leg of stops.
// A provider that supports batched lookups gets one call per distinct origin;
// a leg from a stop to itself is zero without a lookup.
func (b *WaypointBaseline) legDistances(ctx context.Context, stops []string) ([]float64, error) {
	legs := make([]float64, len(stops)-1)

	matrix, ok := b.distances.(ports.DistanceMatrixProvider)
	if !ok {
		for i := 1; i < len(stops); i++ {
			if stops[i-1] == stops[i] {
				continue
			}
			r, err := b.distances.GetDistance(ctx, stops[i-1], stops[i])
			if err != nil {
				return nil, fmt.Errorf("leg %q -> %q: %w", stops[i-1], stops[i], err)
			}
			legs[i-1] = r.DistanceKm
		}
		return legs, nil
	}

	var origins []string
	byOrigin := make(map[string][]string)
	for i := 1; i < len(stops); i++ {
		from := stops[i-1]
		if from == stops[i] {
			continue
		}
		if _, seen := byOrigin[from]; !seen {
			origins = append(origins, from)
		}
		byOrigin[from] = append(byOrigin[from], stops[i])
	}

	results := make(map[string]map[string]ports.DistanceResult, len(origins))
	for _, from := range origins {
		r, err := matrix.GetDistances(ctx, from, byOrigin[from])
		if err != nil {
			return nil, fmt.Errorf("legs from %q: %w", from, err)
		}
		results[from] = r
	}

	for i := 1; i < len(stops); i++ {
		if stops[i-1] == stops[i] {
			continue
		}
		r, ok := results[stops[i-1]][stops[i]]
		if !ok {
			return nil, fmt.Errorf("leg %q -> %q: no distance returned", stops[i-1], stops[i])
		}
		legs[i-1] = r.DistanceKm
	}
	return legs, nil
}
