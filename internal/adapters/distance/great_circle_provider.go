package distance

import (
	"context"
	"errors"
	"fleet-route-service/internal/adapters/cache"
	"fleet-route-service/internal/costmodel"
	"fleet-route-service/internal/platform/obs"
	"fleet-route-service/internal/ports"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// GreatCircleProvider implements DistanceMatrixProvider over known locations.
//
// It coordinates:
//   - Name normalization
//   - Location lookup through a LocationResolver
//   - Haversine distance and average-speed duration from the cost model
//   - An optional in-memory distance cache
//
// The provider is safe for concurrent use.
type GreatCircleProvider struct {
	locations ports.LocationResolver
	cache     *cache.DistanceCache
	logger    *zap.Logger
}

var _ ports.DistanceMatrixProvider = (*GreatCircleProvider)(nil)

func NewGreatCircleProvider(
	locations ports.LocationResolver,
	distanceCache *cache.DistanceCache,
	logger *zap.Logger,
) (*GreatCircleProvider, error) {
	if locations == nil {
		return nil, errors.New("great circle provider: location resolver is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &GreatCircleProvider{
		locations: locations,
		cache:     distanceCache,
		logger:    logger,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *GreatCircleProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Delegate to batched path to reuse caching.
func (g *GreatCircleProvider) GetDistance(
	ctx context.Context,
	origin string,
	destination string,
) (ports.DistanceResult, error) {
	normOrigin := g.normalize(origin)
	if normOrigin == "" {
		return ports.DistanceResult{}, errors.New("get great circle distance: origin must be non-empty")
	}

	normDestination := g.normalize(destination)
	if normDestination == "" {
		return ports.DistanceResult{}, errors.New("get great circle distance: destination must be non-empty")
	}

	if normOrigin == normDestination {
		return ports.DistanceResult{}, nil
	}

	results, err := g.GetDistances(ctx, normOrigin, []string{normDestination})
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf(
			"get distances %q -> %q: %w",
			normOrigin, normDestination, err,
		)
	}

	result, ok := results[normDestination]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("no distance result for %q -> %q", origin, destination)
	}

	return result, nil
}

// Compute distances from a single origin to many destinations.
// Destinations equal to the origin are skipped.
func (g *GreatCircleProvider) GetDistances(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "greatcircle.GetDistances")(&err)

	normOrigin := g.normalize(origin)
	if normOrigin == "" {
		return nil, errors.New("origin must be non-empty")
	}

	seen := make(map[string]struct{}, len(destinations))
	destList := make([]string, 0, len(destinations))
	for _, d := range destinations {
		nd := g.normalize(d)
		if nd == "" || nd == normOrigin {
			continue
		}
		if _, ok := seen[nd]; ok {
			continue
		}
		seen[nd] = struct{}{}
		destList = append(destList, nd)
	}

	if len(destList) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	hits := make(map[string]ports.DistanceResult)
	// Check the cache before resolving coordinates.
	if g.cache != nil {
		hits, err = g.cache.GetMany(ctx, normOrigin, destList)
		if err != nil {
			return nil, fmt.Errorf("great circle get distance cache: %w", err)
		}
	}

	misses := make([]string, 0, len(destList))
	for _, d := range destList {
		if _, ok := hits[d]; !ok {
			misses = append(misses, d)
		}
	}

	if len(misses) == 0 {
		return hits, nil
	}

	from, err := g.locations.Locate(normOrigin)
	if err != nil {
		return nil, fmt.Errorf("resolve origin %q: %w", normOrigin, err)
	}

	fresh := make(map[string]ports.DistanceResult, len(misses))
	for _, d := range misses {
		to, err := g.locations.Locate(d)
		if err != nil {
			return nil, fmt.Errorf("resolve destination %q: %w", d, err)
		}

		km := costmodel.Distance(from.Coordinates, to.Coordinates)
		fresh[d] = ports.DistanceResult{
			DistanceKm:      km,
			DurationSeconds: int(math.Round(km / costmodel.AverageSpeedKmh * 3600)),
		}
	}

	if g.cache != nil {
		if err := g.cache.PutMany(ctx, normOrigin, fresh); err != nil {
			g.logger.Warn("distance cache write failed", zap.Error(err))
		}
	}

	out := make(map[string]ports.DistanceResult, len(hits)+len(fresh))
	for k, v := range hits {
		out[k] = v
	}
	for k, v := range fresh {
		out[k] = v
	}

	return out, nil
}
