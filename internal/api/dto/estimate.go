package dto

import (
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/services"
	"strings"
)

// EstimateRequest carries optional overrides of the default parameters.
// Omitted fields keep the dataset default. VehicleID, when set, supplies
// capacity, load, vehicle type and fuel type from that vehicle.
type EstimateRequest struct {
	StartLocation *string  `json:"startLocation"`
	Destinations  []string `json:"destinations"`
	LoadCapacity  *float64 `json:"loadCapacity"`
	CurrentLoad   *float64 `json:"currentLoad"`
	AreaCoverage  *float64 `json:"areaCoverage"`
	Priority      *string  `json:"priority"`
	VehicleType   *string  `json:"vehicleType"`
	FuelType      *string  `json:"fuelType"`
	VehicleID     *int     `json:"vehicleId"`
}

// Apply overlays the request on base. Vehicle values are applied first so
// explicit fields in the request still win.
func (req EstimateRequest) Apply(base domain.OptimizationParameters, v *domain.Vehicle) domain.OptimizationParameters {
	p := base
	p.Destinations = append([]string(nil), base.Destinations...)

	if v != nil {
		p.LoadCapacity = v.Capacity
		p.CurrentLoad = v.CurrentLoad
		p.VehicleType = v.Type
		p.FuelType = v.FuelType
	}

	if req.StartLocation != nil {
		p.StartLocation = strings.TrimSpace(*req.StartLocation)
	}
	if req.Destinations != nil {
		p.Destinations = make([]string, 0, len(req.Destinations))
		for _, d := range req.Destinations {
			if d = strings.TrimSpace(d); d != "" {
				p.Destinations = append(p.Destinations, d)
			}
		}
	}
	if req.LoadCapacity != nil {
		p.LoadCapacity = *req.LoadCapacity
	}
	if req.CurrentLoad != nil {
		p.CurrentLoad = *req.CurrentLoad
	}
	if req.AreaCoverage != nil {
		p.AreaCoverage = *req.AreaCoverage
	}
	if req.Priority != nil {
		p.Priority = domain.Priority(strings.ToLower(strings.TrimSpace(*req.Priority)))
	}
	if req.VehicleType != nil {
		p.VehicleType = domain.VehicleType(strings.ToLower(strings.TrimSpace(*req.VehicleType)))
	}
	if req.FuelType != nil {
		p.FuelType = domain.FuelType(strings.ToLower(strings.TrimSpace(*req.FuelType)))
	}
	return p
}

// Human-readable figures in the dashboard's formatting.
type EstimateDisplay struct {
	CurrentDistance   string `json:"currentDistance"`
	OptimizedDistance string `json:"optimizedDistance"`
	CurrentTime       string `json:"currentTime"`
	OptimizedTime     string `json:"optimizedTime"`
	CostSaved         string `json:"costSaved"`
	Summary           string `json:"summary"`
}

type EstimateResponse struct {
	Parameters domain.OptimizationParameters `json:"parameters"`
	domain.OptimizationResult
	Currency          string          `json:"currency"`
	FuelPricePerLiter float64         `json:"fuelPricePerLiter"`
	Display           EstimateDisplay `json:"display"`
}

type FleetEstimateResponse struct {
	Parameters domain.OptimizationParameters `json:"parameters"`
	services.FleetSummary
	Currency string `json:"currency"`
}
