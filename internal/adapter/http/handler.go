package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"

	"adrecon/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: the batch trigger, the progress/audit polling endpoints read by
// monitoring, and the review reads backing the dashboard views. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	batch   port.BatchUseCase
	reviews port.ReviewRepository
	logs    port.BatchRepository
	loc     *time.Location
	logger  *slog.Logger
	router  chi.Router
	now     func() time.Time
}

// NewHandler creates a handler with all routes configured. loc is the civil
// timezone the reconciliation core dates its snapshots in; review date
// defaults are computed in the same zone.
func NewHandler(batch port.BatchUseCase, reviews port.ReviewRepository, logs port.BatchRepository, loc *time.Location, logger *slog.Logger) *Handler {
	h := &Handler{batch: batch, reviews: reviews, logs: logs, loc: loc, logger: logger, now: time.Now}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/batch/run", h.handleBatchRun)
		r.Get("/batch/progress", h.handleBatchProgress)
		r.Get("/batch/log", h.handleBatchLog)
		r.Get("/reviews/current", h.handleCurrentReviews)
		r.Get("/reviews/{clientID}", h.handleClientReviews)
	})
	r.Handle("/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v with the given status. Encoding failures are logged;
// the status line has already been sent at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
