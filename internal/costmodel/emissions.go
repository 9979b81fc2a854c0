package costmodel

import "fleet-route-service/internal/domain"

// EmissionFactors maps a fuel type to kg CO2 per liter.
type EmissionFactors map[domain.FuelType]float64

// DefaultEmissionFactors are the dashboard's published factors.
//
// The electric entry is kg CO2 per kWh of grid power and is applied per liter
// equivalent. It is a known simplification and is kept as published.
var DefaultEmissionFactors = EmissionFactors{
	domain.FuelDiesel:   2.68,
	domain.FuelGasoline: 2.31,
	domain.FuelCNG:      1.94,
	domain.FuelElectric: 0.5,
}

// Factor returns the factor for ft, or the diesel factor when ft is unknown.
func (f EmissionFactors) Factor(ft domain.FuelType) float64 {
	if v, ok := f[ft]; ok {
		return v
	}
	if v, ok := f[domain.FuelDiesel]; ok {
		return v
	}
	return DefaultEmissionFactors[domain.FuelDiesel]
}

// CO2 returns kg CO2 emitted by burning fuelLiters of ft.
func (f EmissionFactors) CO2(fuelLiters float64, ft domain.FuelType) float64 {
	return fuelLiters * f.Factor(ft)
}

// CO2 applies DefaultEmissionFactors.
func CO2(fuelLiters float64, ft domain.FuelType) float64 {
	return DefaultEmissionFactors.CO2(fuelLiters, ft)
}
