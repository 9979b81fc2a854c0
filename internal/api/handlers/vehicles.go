package handlers

import (
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/ports"
	"net/http"
	"strings"
)

// VehicleHandler exposes the fleet list and its composition counts.
type VehicleHandler struct {
	Data ports.ReferenceData
}

// List filters by ?status= (active, maintenance) and ?q= (name substring).
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	filter := ports.VehicleFilter{
		Status: domain.VehicleStatus(strings.ToLower(strings.TrimSpace(q.Get("status")))),
		Query:  q.Get("q"),
	}
	switch filter.Status {
	case "", "all":
		filter.Status = ""
	case domain.StatusActive, domain.StatusMaintenance:
	default:
		writeError(w, r, http.StatusBadRequest, "status must be active, maintenance or all")
		return
	}

	vehicles := h.Data.Vehicles(filter)
	res := dto.ListVehiclesResponse{Vehicles: make([]dto.VehicleResponse, 0, len(vehicles))}
	for _, v := range vehicles {
		res.Vehicles = append(res.Vehicles, dto.VehicleResponse{Vehicle: v, Utilization: v.Utilization()})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *VehicleHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.Data.FleetStats())
}
