package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db      dbPinger
	version string
}

func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready reports 503 while the inspection store is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	store := h.pingStore(r.Context())
	writeJSON(w, statusCode(store), HealthResponse{Status: store.Status, Timestamp: time.Now()})
}

// Health is Ready plus the build version and store latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	store := h.pingStore(r.Context())
	writeJSON(w, statusCode(store), HealthResponse{
		Status:     store.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"postgres": store},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingStore(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(c CompStatus) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
