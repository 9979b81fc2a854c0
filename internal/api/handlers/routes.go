package handlers

import (
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/costmodel"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/ports"
	"fleet-route-service/internal/services"
	"fmt"
	"net/http"
	"strconv"
)

type RouteHandler struct {
	Data    ports.ReferenceData
	Factors costmodel.EmissionFactors
}

func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	routes := h.Data.Routes()
	res := dto.ListRoutesResponse{Routes: make([]dto.RouteListItem, 0, len(routes))}
	for _, rt := range routes {
		res.Routes = append(res.Routes, dto.RouteListItem{
			ID:        rt.ID,
			Name:      rt.Name,
			Stops:     len(rt.Waypoints),
			Reference: rt.Reference,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get summarizes one route for ?vehicle_id= (default: first active vehicle).
// ?order=nearest adds a suggested nearest-neighbor visit order.
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "route id must be an integer")
		return
	}

	route, err := h.Data.Route(id)
	if err != nil {
		writeDomainError(w, r, "get route", err)
		return
	}

	q := r.URL.Query()
	vehicleID := 0
	if raw := q.Get("vehicle_id"); raw != "" {
		if vehicleID, err = strconv.Atoi(raw); err != nil {
			writeError(w, r, http.StatusBadRequest, "vehicle_id must be an integer")
			return
		}
	}

	vehicle, err := h.vehicle(vehicleID)
	if err != nil {
		writeDomainError(w, r, "get route", err)
		return
	}

	summary, err := services.SummarizeRoute(route, vehicle, h.Factors)
	if err != nil {
		writeDomainError(w, r, "get route", err)
		return
	}

	res := dto.RouteResponse{
		Route:     route,
		VehicleID: vehicle.ID,
		Summary:   summary,
		Path:      make([][]float64, 0, len(route.Waypoints)),
	}
	for _, c := range route.Coordinates() {
		res.Path = append(res.Path, c.CoordsToList())
	}

	switch q.Get("order") {
	case "", "given":
	case "nearest":
		res.SuggestedOrder = services.NearestNeighborOrder(route.Waypoints)
	default:
		writeError(w, r, http.StatusBadRequest, "order must be given or nearest")
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

// vehicle returns vehicle id, or the first active vehicle when id is 0.
func (h *RouteHandler) vehicle(id int) (domain.Vehicle, error) {
	if id == 0 {
		active := h.Data.Vehicles(ports.VehicleFilter{Status: domain.StatusActive})
		if len(active) == 0 {
			return domain.Vehicle{}, fmt.Errorf("no active vehicle: %w", domain.ErrNotFound)
		}
		return active[0], nil
	}
	return h.Data.Vehicle(id)
}
