package ports

import (
	"fleet-route-service/internal/domain"
	"time"
)

// Resolves free-text location names to coordinates.
type LocationResolver interface {
	Locate(name string) (domain.Location, error)
}

// Criteria for listing vehicles. Zero values match everything.
type VehicleFilter struct {
	Status domain.VehicleStatus
	Query  string
}

// Criteria for listing drivers. Query matches the name or employee id.
type DriverFilter struct {
	Status domain.DriverStatus
	Query  string
}

// Port: read-only access to the fleet reference data injected at startup.
type ReferenceData interface {
	LocationResolver
	Vehicles(filter VehicleFilter) []domain.Vehicle
	Vehicle(id int) (domain.Vehicle, error)
	Routes() []domain.Route
	Route(id int) (domain.Route, error)
	PriorityOptions() []domain.PriorityOption
	DefaultParameters() domain.OptimizationParameters
	LiveVehicles() []domain.LiveVehicle
	FleetStats() domain.FleetStats
	Drivers(filter DriverFilter) []domain.Driver
	Driver(id int) (domain.Driver, error)
	// DriverStats evaluates licence expiry against now.
	DriverStats(now time.Time) domain.DriverStats
	SafetyThresholds() domain.SafetyThresholds
}
