package handlers

import (
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/ports"
	"fleet-route-service/internal/services"
	"net/http"
)

// PriorityHandler lists selectable priorities with their improvement profile.
type PriorityHandler struct {
	Data     ports.ReferenceData
	Profiles services.Profiles
}

func (h *PriorityHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	opts := h.Data.PriorityOptions()
	res := dto.ListPrioritiesResponse{Priorities: make([]dto.PriorityResponse, 0, len(opts))}
	for _, o := range opts {
		p := h.Profiles.Lookup(o.Value)
		res.Priorities = append(res.Priorities, dto.PriorityResponse{
			PriorityOption:  o,
			DistancePercent: p.Distance * 100,
			FuelPercent:     p.Fuel * 100,
			TimePercent:     p.Time * 100,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
