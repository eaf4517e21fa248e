package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, now: time.Now}
}

// HealthResponse is the JSON response for /health, /live and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Health reports that the process is serving. It does not touch the
// database; use /ready for that.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Timestamp: h.now().UTC(),
	})
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
	})
}

// Ready is the readiness probe. Pings DB with latency measurement:
// 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:     "down",
			Components: map[string]CompStatus{"database": {Status: "down"}},
			Timestamp:  h.now().UTC(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Components: map[string]CompStatus{
			"database": {Status: "ok", Latency: latency.String()},
		},
		Timestamp: h.now().UTC(),
	})
}
