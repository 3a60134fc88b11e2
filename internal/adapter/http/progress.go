package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"adrecon/internal/core/domain"
)

// batchLogResponse is the wire shape of one audit/progress record.
type batchLogResponse struct {
	LogID          string `json:"logId"`
	IsAutomatic    bool   `json:"isAutomatic"`
	Status         string `json:"status"`
	TotalUnits     int    `json:"totalUnits"`
	ProcessedUnits int    `json:"processedUnits"`
	SuccessCount   int    `json:"successCount"`
	ErrorCount     int    `json:"errorCount"`
	SkippedCount   int    `json:"skippedCount"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
	StartedAt      string `json:"startedAt"`
	LastUpdatedAt  string `json:"lastUpdatedAt"`
}

func toBatchLogResponse(log domain.BatchLog) batchLogResponse {
	return batchLogResponse{
		LogID:          log.ID.String(),
		IsAutomatic:    log.IsAutomatic,
		Status:         string(log.Status),
		TotalUnits:     log.TotalUnits,
		ProcessedUnits: log.ProcessedUnits,
		SuccessCount:   log.SuccessCount,
		ErrorCount:     log.ErrorCount,
		SkippedCount:   log.SkippedCount,
		ErrorMessage:   log.ErrorMessage,
		StartedAt:      log.StartedAt.UTC().Format(time.RFC3339),
		LastUpdatedAt:  log.LastUpdatedAt.UTC().Format(time.RFC3339),
	}
}

// handleBatchProgress returns the most recent run's progress record, polled
// by the monitoring view. 404 when no run has ever happened.
func (h *Handler) handleBatchProgress(w http.ResponseWriter, r *http.Request) {
	log, err := h.logs.LatestLog(r.Context())
	if err != nil {
		h.logger.Error("batch progress error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if log == nil {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, http.StatusOK, toBatchLogResponse(*log))
}

// handleBatchLog returns recent runs, newest first. The optional `limit`
// query parameter defaults to 20 and is capped at 100.
func (h *Handler) handleBatchLog(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(v, 100)
	}

	logs, err := h.logs.ListLogs(r.Context(), limit)
	if err != nil {
		h.logger.Error("batch log error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]batchLogResponse, 0, len(logs))
	for _, log := range logs {
		out = append(out, toBatchLogResponse(log))
	}
	h.writeJSON(w, http.StatusOK, out)
}
