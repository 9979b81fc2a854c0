package handlers

import (
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/ports"
	"net/http"
	"strings"
	"time"
)

// DriverHandler serves driver profiles and fleet-wide safety figures.
// Licence checks are evaluated against Now.
type DriverHandler struct {
	Data ports.ReferenceData
	Now  func() time.Time
}

func (h *DriverHandler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

// List filters by ?status= (active, suspended) and ?q= (name or employee id).
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	filter := ports.DriverFilter{
		Status: domain.DriverStatus(strings.ToLower(strings.TrimSpace(q.Get("status")))),
		Query:  q.Get("q"),
	}
	switch filter.Status {
	case "", "all":
		filter.Status = ""
	case domain.DriverActive, domain.DriverSuspended:
	default:
		writeError(w, r, http.StatusBadRequest, "status must be active, suspended or all")
		return
	}

	now := h.now()
	thresholds := h.Data.SafetyThresholds()
	drivers := h.Data.Drivers(filter)

	res := dto.ListDriversResponse{
		Drivers:    make([]dto.DriverResponse, 0, len(drivers)),
		Thresholds: thresholds,
	}
	for _, d := range drivers {
		res.Drivers = append(res.Drivers, dto.DriverResponse{
			Driver:              d,
			SafetyBand:          thresholds.Band(d.SafetyScore),
			LicenseExpiringSoon: d.LicenseExpiringSoon(now),
			CriticalAlert:       d.CriticalAlert(now),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *DriverHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.Data.DriverStats(h.now()))
}
