package dto

import "fleet-route-service/internal/domain"

type VehicleResponse struct {
	domain.Vehicle
	Utilization float64 `json:"utilization"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

type RouteListItem struct {
	ID        int                   `json:"id"`
	Name      string                `json:"name"`
	Stops     int                   `json:"stops"`
	Reference domain.RouteReference `json:"reference"`
}

type ListRoutesResponse struct {
	Routes []RouteListItem `json:"routes"`
}

// RouteResponse is a route with its cost-model summary for one vehicle.
type RouteResponse struct {
	domain.Route
	VehicleID      int                      `json:"vehicleId"`
	Summary        domain.RouteCostEstimate `json:"summary"`
	Path           [][]float64              `json:"path"`
	SuggestedOrder []domain.Waypoint        `json:"suggestedOrder,omitempty"`
}

type PriorityResponse struct {
	domain.PriorityOption
	DistancePercent float64 `json:"distancePercent"`
	FuelPercent     float64 `json:"fuelPercent"`
	TimePercent     float64 `json:"timePercent"`
}

type ListPrioritiesResponse struct {
	Priorities []PriorityResponse `json:"priorities"`
}

type MarkersMessage struct {
	At       int64                `json:"at"`
	Vehicles []domain.LiveVehicle `json:"vehicles"`
}

// DriverResponse is a driver profile with its derived safety figures.
type DriverResponse struct {
	domain.Driver
	SafetyBand          domain.SafetyBand `json:"safetyBand"`
	LicenseExpiringSoon bool              `json:"licenseExpiringSoon"`
	CriticalAlert       bool              `json:"criticalAlert"`
}

type ListDriversResponse struct {
	Drivers    []DriverResponse        `json:"drivers"`
	Thresholds domain.SafetyThresholds `json:"thresholds"`
}
