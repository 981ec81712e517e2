package api

import (
	"encoding/json"
	"net/http"

	"weather-entities/internal/stats"
)

// StatsHandler serves collected process statistics
type StatsHandler struct {
	collector *stats.Collector
}

// NewStatsHandler creates a new stats handler instance
func NewStatsHandler(collector *stats.Collector) *StatsHandler {
	return &StatsHandler{collector: collector}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.collector.Collect(r.Context())
	if err != nil {
		http.Error(w, "failed to collect stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(s); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
