package domain

type VehicleType string

const (
	VehicleTruck VehicleType = "truck"
	VehicleVan   VehicleType = "van"
)

type FuelType string

const (
	FuelDiesel   FuelType = "diesel"
	FuelGasoline FuelType = "gasoline"
	FuelCNG      FuelType = "cng"
	FuelElectric FuelType = "electric"
)

type VehicleStatus string

const (
	StatusActive      VehicleStatus = "active"
	StatusMaintenance VehicleStatus = "maintenance"
)

// Fleet vehicle as provided by reference data.
// Capacity and CurrentLoad are kilograms.
type Vehicle struct {
	ID          int           `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Type        VehicleType   `json:"type" yaml:"type"`
	Capacity    float64       `json:"capacity" yaml:"capacity"`
	CurrentLoad float64       `json:"currentLoad" yaml:"currentLoad"`
	Status      VehicleStatus `json:"status" yaml:"status"`
	FuelType    FuelType      `json:"fuelType" yaml:"fuelType"`
}

// Utilization returns the load as a percentage of capacity.
// Zero capacity yields 0 rather than Inf.
func (v Vehicle) Utilization() float64 {
	if v.Capacity <= 0 {
		return 0
	}
	return v.CurrentLoad / v.Capacity * 100
}

func (v Vehicle) IsActive() bool { return v.Status == StatusActive }

func (v Vehicle) IsElectric() bool { return v.FuelType == FuelElectric }

// Position of a vehicle marker on the live map.
type LiveVehicle struct {
	Coordinates `yaml:",inline"`
	ID          int           `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Status      VehicleStatus `json:"status" yaml:"status"`
	SpeedKmh    float64       `json:"speed" yaml:"speed"`
}

// Fleet composition counts shown on the fleet page.
type FleetStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Maintenance int `json:"maintenance"`
	Electric    int `json:"electric"`
	// Mean utilization over every vehicle, in service or not, percent.
	AverageUtilization float64 `json:"averageUtilization"`
}
