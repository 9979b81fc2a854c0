package services

import (
	"fleet-route-service/internal/costmodel"
	"fleet-route-service/internal/domain"
	"fmt"
)

// SummarizeRoute applies the cost model to a fixture route as driven by v.
// Waypoints are visited in Order; every waypoint after the first is a stop.
func SummarizeRoute(route domain.Route, v domain.Vehicle, factors costmodel.EmissionFactors) (domain.RouteCostEstimate, error) {
	if len(route.Waypoints) == 0 {
		return domain.RouteCostEstimate{}, fmt.Errorf("summarize route %d: %w", route.ID, domain.ErrEmptyRoute)
	}
	if factors == nil {
		factors = costmodel.DefaultEmissionFactors
	}

	points := route.Coordinates()
	dist := costmodel.RouteDistance(points)

	fuel, err := costmodel.Fuel(dist, v.CurrentLoad, v.Capacity, v.Type)
	if err != nil {
		return domain.RouteCostEstimate{}, fmt.Errorf("summarize route %d: vehicle %d: %w", route.ID, v.ID, err)
	}
	util, err := costmodel.LoadUtilization(v.CurrentLoad, v.Capacity)
	if err != nil {
		return domain.RouteCostEstimate{}, fmt.Errorf("summarize route %d: vehicle %d: %w", route.ID, v.ID, err)
	}

	return domain.RouteCostEstimate{
		Distance:        dist,
		Fuel:            fuel,
		CO2:             factors.CO2(fuel, v.FuelType),
		Time:            costmodel.TravelTime(dist, len(points)-1),
		Area:            costmodel.AreaCoverage(points),
		LoadUtilization: util,
	}, nil
}
