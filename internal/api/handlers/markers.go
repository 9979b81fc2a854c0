package handlers

import (
	"context"
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/metrics"
	"fleet-route-service/internal/platform/obs"
	"fleet-route-service/internal/ports"
	"fleet-route-service/internal/simulate"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	markerWriteWait = 10 * time.Second
	markerPongWait  = 60 * time.Second
)

var upgrader = websocket.Upgrader{CheckOrigin: func(_ *http.Request) bool { return true }}

// MarkerHandler streams jittered live vehicle positions over a websocket.
// Each connection drifts its own copy of the markers.
type MarkerHandler struct {
	Data      ports.ReferenceData
	Interval  time.Duration
	Amplitude float64
	Metrics   *metrics.Metrics
}

func (h *MarkerHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		return
	}
	defer func() { _ = conn.Close() }()

	h.Metrics.MarkerFeedOpened()
	defer h.Metrics.MarkerFeedClosed()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The client never sends data; reading only detects disconnects and
	// services control frames.
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(markerPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(markerPongWait))
	})
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	feed := simulate.NewFeed(h.Data.LiveVehicles(), simulate.NewJitter(h.Amplitude, nil))
	err = feed.Run(ctx, h.Interval, func(m []domain.LiveVehicle) error {
		_ = conn.SetWriteDeadline(time.Now().Add(markerWriteWait))
		if err := conn.WriteJSON(dto.MarkersMessage{At: time.Now().UnixMilli(), Vehicles: m}); err != nil {
			return err
		}
		return conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(markerWriteWait))
	})

	zap.L().Debug("marker feed closed",
		zap.String("req_id", obs.RequestID(r.Context())),
		zap.Error(err),
	)
}
