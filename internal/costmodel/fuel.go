package costmodel

import (
	"fleet-route-service/internal/domain"
	"fmt"
	"math"
)

const (
	truckLitersPer100Km = 12.0
	vanLitersPer100Km   = 8.0

	// Fuel burn grows linearly up to this fraction at full load.
	maxLoadPenalty = 0.3

	AverageSpeedKmh = 45.0
	StopDwellMin    = 15.0
)

// BaseFuelRate returns liters per 100 km for an empty vehicle.
// Anything that is not a truck is rated as a van.
func BaseFuelRate(vt domain.VehicleType) float64 {
	switch vt {
	case domain.VehicleTruck:
		return truckLitersPer100Km
	case domain.VehicleVan:
		return vanLitersPer100Km
	default:
		return vanLitersPer100Km
	}
}

// LoadFactor scales the base rate from 1.0 (empty) to 1.3 (full).
func LoadFactor(load, capacity float64) (float64, error) {
	if capacity <= 0 {
		return 0, fmt.Errorf("load factor: capacity=%v: %w", capacity, domain.ErrInvalidCapacity)
	}
	if load < 0 {
		return 0, fmt.Errorf("load factor: load=%v: %w", load, domain.ErrInvalidLoad)
	}
	return 1 + (load/capacity)*maxLoadPenalty, nil
}

// Fuel returns liters burned over distanceKm for the given load and vehicle type.
func Fuel(distanceKm, load, capacity float64, vt domain.VehicleType) (float64, error) {
	lf, err := LoadFactor(load, capacity)
	if err != nil {
		return 0, fmt.Errorf("fuel: %w", err)
	}
	return (distanceKm / 100) * BaseFuelRate(vt) * lf, nil
}

// LoadUtilization returns load as a percentage of capacity.
// Loads above capacity are reported as-is (above 100).
func LoadUtilization(load, capacity float64) (float64, error) {
	if capacity <= 0 {
		return 0, fmt.Errorf("load utilization: capacity=%v: %w", capacity, domain.ErrInvalidCapacity)
	}
	return load / capacity * 100, nil
}

// TravelTime returns minutes for distanceKm at the average city speed plus a
// fixed dwell per stop, rounded to the nearest minute.
func TravelTime(distanceKm float64, stops int) float64 {
	driving := distanceKm / AverageSpeedKmh * 60
	return math.Round(driving + float64(stops)*StopDwellMin)
}
