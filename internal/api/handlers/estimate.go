package handlers

import (
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/format"
	"fleet-route-service/internal/ports"
	"fleet-route-service/internal/services"
	"fmt"
	"net/http"
)

// EstimateHandler runs the route estimator over dataset defaults
// overlaid with the request body.
type EstimateHandler struct {
	Data      ports.ReferenceData
	Estimator *services.RouteEstimator
}

func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	params, ok := h.parameters(w, r)
	if !ok {
		return
	}

	res, err := h.Estimator.Estimate(r.Context(), params)
	if err != nil {
		writeDomainError(w, r, "estimate", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.EstimateResponse{
		Parameters:         params,
		OptimizationResult: *res,
		Currency:           h.Estimator.Currency(),
		FuelPricePerLiter:  h.Estimator.FuelPrice(),
		Display:            display(res, h.Estimator.Currency()),
	})
}

// Fleet estimates every active vehicle against the same route and ranks them.
func (h *EstimateHandler) Fleet(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	params, ok := h.parameters(w, r)
	if !ok {
		return
	}

	vehicles := h.Data.Vehicles(ports.VehicleFilter{})
	sum, err := services.EstimateFleet(r.Context(), h.Estimator, vehicles, params)
	if err != nil {
		writeDomainError(w, r, "estimate fleet", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FleetEstimateResponse{
		Parameters:   params,
		FleetSummary: *sum,
		Currency:     h.Estimator.Currency(),
	})
}

func (h *EstimateHandler) parameters(w http.ResponseWriter, r *http.Request) (domain.OptimizationParameters, bool) {
	var req dto.EstimateRequest
	if !decodeBody(w, r, &req) {
		return domain.OptimizationParameters{}, false
	}

	var vehicle *domain.Vehicle
	if req.VehicleID != nil {
		v, err := h.Data.Vehicle(*req.VehicleID)
		if err != nil {
			writeDomainError(w, r, "estimate", err)
			return domain.OptimizationParameters{}, false
		}
		vehicle = &v
	}

	return req.Apply(h.Data.DefaultParameters(), vehicle), true
}

func display(res *domain.OptimizationResult, currency string) dto.EstimateDisplay {
	s := res.Savings
	return dto.EstimateDisplay{
		CurrentDistance:   format.Number(res.Current.Distance, 1) + " km",
		OptimizedDistance: format.Number(res.Optimized.Distance, 1) + " km",
		CurrentTime:       format.Duration(res.Current.Time),
		OptimizedTime:     format.Duration(res.Optimized.Time),
		CostSaved:         format.Money(s.Cost, currency),
		Summary: fmt.Sprintf("%s km · %s L · %s min saved",
			format.Number(s.Distance, 1), format.Number(s.Fuel, 1), format.Number(s.Time, 0)),
	}
}
