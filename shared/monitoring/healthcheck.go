package monitoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
)

type HealthServer struct {
	monitor *Monitor
	port    string
	logger  zerolog.Logger
}

func NewHealthServer(monitor *Monitor, port string) *HealthServer {
	if port == "" {
		port = "8080"
	}
	return &HealthServer{
		monitor: monitor,
		port:    port,
		logger:  logging.WithComponent("health"),
	}
}

// Routes mounts /health and /status on r.
func (h *HealthServer) Routes(r chi.Router) {
	r.Get("/health", h.healthHandler)
	r.Get("/status", h.statusHandler)
}

func (h *HealthServer) Handler() http.Handler {
	r := chi.NewRouter()
	h.Routes(r)
	return r
}

// Start serves the health endpoints in the background.
func (h *HealthServer) Start() {
	h.logger.Info().Str("port", h.port).Msg("health check server starting")
	go func() {
		if err := http.ListenAndServe(":"+h.port, h.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error().Err(err).Msg("health server error")
		}
	}()
}

func (h *HealthServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	if h.monitor.IsHealthy() {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK - %s", h.monitor.GetStatusSummary())
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, "Service unhealthy - %s", h.monitor.GetStatusSummary())
	}
}

func (h *HealthServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.monitor.Status()); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode status")
	}
}
