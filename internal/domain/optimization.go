package domain

// Optimization objective selected by the caller.
type Priority string

const (
	PriorityBalanced Priority = "balanced"
	PriorityFuel     Priority = "fuel"
	PriorityDistance Priority = "distance"
	PriorityTime     Priority = "time"
	PriorityCarbon   Priority = "carbon"
)

// Selectable priority with its display label.
type PriorityOption struct {
	Value Priority `json:"value" yaml:"value"`
	Label string   `json:"label" yaml:"label"`
}

// Input of a route estimate.
//
// StartLocation and Destinations are free text. Only len(Destinations) reaches
// the cost model unless a waypoint-backed baseline resolves the names.
// CurrentLoad above LoadCapacity is accepted and yields utilization above 100%.
type OptimizationParameters struct {
	StartLocation string      `json:"startLocation" yaml:"startLocation"`
	Destinations  []string    `json:"destinations" yaml:"destinations"`
	LoadCapacity  float64     `json:"loadCapacity" yaml:"loadCapacity"`
	CurrentLoad   float64     `json:"currentLoad" yaml:"currentLoad"`
	AreaCoverage  float64     `json:"areaCoverage" yaml:"areaCoverage"`
	Priority      Priority    `json:"priority" yaml:"priority"`
	VehicleType   VehicleType `json:"vehicleType" yaml:"vehicleType"`
	FuelType      FuelType    `json:"fuelType" yaml:"fuelType"`
}

// Cost-model output for one route. Derived, never persisted.
type RouteCostEstimate struct {
	Distance        float64 `json:"distance"`
	Fuel            float64 `json:"fuel"`
	CO2             float64 `json:"co2"`
	Time            float64 `json:"time"`
	Area            float64 `json:"area"`
	LoadUtilization float64 `json:"loadUtilization"`
}

// Differences of optimized relative to current.
// Absolute values are current minus optimized; percentages are of current.
type SavingsBreakdown struct {
	Distance        float64 `json:"distance"`
	Fuel            float64 `json:"fuel"`
	CO2             float64 `json:"co2"`
	Time            float64 `json:"time"`
	Cost            float64 `json:"cost"`
	DistancePercent float64 `json:"distancePercent"`
	FuelPercent     float64 `json:"fuelPercent"`
	CO2Percent      float64 `json:"co2Percent"`
	TimePercent     float64 `json:"timePercent"`
}

// Before/after comparison returned by the estimator.
type OptimizationResult struct {
	Current   RouteCostEstimate `json:"current"`
	Optimized RouteCostEstimate `json:"optimized"`
	Savings   SavingsBreakdown  `json:"savings"`
}
