// Package costmodel holds the pure route cost formulas: great-circle
// distance, fuel burn, CO2, travel time and bounding-box area.
//
// Every function is deterministic and free of side effects.
package costmodel

import (
	"fleet-route-service/internal/domain"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between a and b in kilometers.
// Malformed input (NaN) propagates to the result.
func Distance(a, b domain.Coordinates) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// RouteDistance sums the legs between consecutive points in the given order.
// It does not look for a shorter ordering.
func RouteDistance(points []domain.Coordinates) float64 {
	total := 0.0
	for i := 0; i+1 < len(points); i++ {
		total += Distance(points[i], points[i+1])
	}
	return total
}

// AreaCoverage approximates the covered area in km² as the product of the
// bounding box's north-south and east-west extents.
//
// Fewer than 3 points cover no area.
func AreaCoverage(points []domain.Coordinates) float64 {
	if len(points) < 3 {
		return 0
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLon, maxLon := points[0].Lon, points[0].Lon
	for _, p := range points[1:] {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLon = math.Min(minLon, p.Lon)
		maxLon = math.Max(maxLon, p.Lon)
	}

	corner := domain.Coordinates{Lat: minLat, Lon: minLon}
	northSouth := Distance(corner, domain.Coordinates{Lat: maxLat, Lon: minLon})
	eastWest := Distance(corner, domain.Coordinates{Lat: minLat, Lon: maxLon})

	return northSouth * eastWest
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
