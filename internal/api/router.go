package api

import (
	"fleet-route-service/internal/api/handlers"
	"fleet-route-service/internal/costmodel"
	"fleet-route-service/internal/platform/metrics"
	"fleet-route-service/internal/ports"
	"fleet-route-service/internal/services"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Deps are the collaborators the HTTP layer needs. Logger, Metrics and
// Limiter may be nil.
type Deps struct {
	Data      ports.ReferenceData
	Estimator *services.RouteEstimator
	Profiles  services.Profiles
	Factors   costmodel.EmissionFactors

	MarkerInterval  time.Duration
	MarkerAmplitude float64

	// Clock for licence expiry checks; time.Now when nil.
	Now func() time.Time

	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Limiter *rate.Limiter
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Profiles == nil {
		d.Profiles = services.DefaultProfiles
	}
	if d.Factors == nil {
		d.Factors = costmodel.DefaultEmissionFactors
	}

	mux := http.NewServeMux()

	vehicleHandler := &handlers.VehicleHandler{Data: d.Data}
	driverHandler := &handlers.DriverHandler{Data: d.Data, Now: d.Now}
	routeHandler := &handlers.RouteHandler{Data: d.Data, Factors: d.Factors}
	priorityHandler := &handlers.PriorityHandler{Data: d.Data, Profiles: d.Profiles}
	estimateHandler := &handlers.EstimateHandler{Data: d.Data, Estimator: d.Estimator}
	markerHandler := &handlers.MarkerHandler{
		Data:      d.Data,
		Interval:  d.MarkerInterval,
		Amplitude: d.MarkerAmplitude,
		Metrics:   d.Metrics,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/vehicles", vehicleHandler.List)
	mux.HandleFunc("/vehicles/stats", vehicleHandler.Stats)
	mux.HandleFunc("/drivers", driverHandler.List)
	mux.HandleFunc("/drivers/stats", driverHandler.Stats)
	mux.HandleFunc("/routes", routeHandler.List)
	mux.HandleFunc("/routes/{id}", routeHandler.Get)
	mux.HandleFunc("/priorities", priorityHandler.List)
	mux.HandleFunc("/estimate", estimateHandler.Estimate)
	mux.HandleFunc("/estimate/fleet", estimateHandler.Fleet)
	mux.HandleFunc("/markers/ws", markerHandler.Stream)
	mux.Handle("/metrics", d.Metrics.Handler())

	return requestIDMiddleware(loggingMiddleware(d.Logger, d.Metrics, rateLimitMiddleware(d.Limiter, mux)))
}
