package ports

import "context"

// DistanceMatrixProvider is a DistanceProvider that can answer one origin to
// many destinations in a single call. Consumers type-assert for it and fall
// back to per-pair GetDistance lookups when it is absent.
type DistanceMatrixProvider interface {
	DistanceProvider
	// GetDistances returns results keyed by destination. Destinations equal
	// to the origin may be omitted.
	GetDistances(ctx context.Context, origin string, destinations []string) (map[string]DistanceResult, error)
}
