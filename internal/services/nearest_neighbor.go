package services

import (
	"fleet-route-service/internal/costmodel"
	"fleet-route-service/internal/domain"
	"math"
)

// NearestNeighborOrder suggests a visit order using a greedy nearest-neighbor walk.
//
// The walk starts at the waypoint with the lowest Order and repeatedly moves to
// the closest unvisited waypoint by great-circle distance. Equal distances are
// broken by name. The result is renumbered from 0, the start, matching the
// fixture numbering; the input is not modified.
// It is a heuristic for display and makes no optimality claim.
func NearestNeighborOrder(wps []domain.Waypoint) []domain.Waypoint {
	if len(wps) == 0 {
		return []domain.Waypoint{}
	}

	sorted := domain.SortWaypoints(wps)
	remaining := sorted[1:]

	out := make([]domain.Waypoint, 0, len(sorted))
	current := sorted[0]
	out = append(out, current)

	for len(remaining) > 0 {
		best := -1
		minDist := math.Inf(1)

		for i, wp := range remaining {
			d := costmodel.Distance(current.Coordinates, wp.Coordinates)
			// Tie-breaker keeps the order deterministic for coincident stops.
			if best == -1 || d < minDist || (d == minDist && wp.Name < remaining[best].Name) {
				minDist = d
				best = i
			}
		}

		current = remaining[best]
		out = append(out, current)
		remaining = append(remaining[:best:best], remaining[best+1:]...)
	}

	for i := range out {
		out[i].Order = i
	}
	return out
}
