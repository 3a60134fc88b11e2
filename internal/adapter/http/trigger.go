package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"adrecon/internal/core/domain"
)

// batchRunRequest is the trigger payload. ExecuteReview defaults to true
// when omitted; Test short-circuits with no side effects.
type batchRunRequest struct {
	Scheduled     bool  `json:"scheduled"`
	Test          bool  `json:"test"`
	ExecuteReview *bool `json:"executeReview"`
}

type batchRunResponse struct {
	LogID        string `json:"logId"`
	TotalClients int    `json:"totalClients"`
}

// handleBatchRun starts a batch reconciliation run. The response is sent
// once enumeration completes, not once processing completes: 202 Accepted
// with the run's log id and unit count, while the batch continues detached.
// Failures after that point surface through the audit log, never here.
func (h *Handler) handleBatchRun(w http.ResponseWriter, r *http.Request) {
	var req batchRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Test {
		h.writeJSON(w, http.StatusOK, map[string]bool{"test": true})
		return
	}

	origin := domain.OriginManual
	if req.Scheduled {
		origin = domain.OriginScheduled
	}
	executeReview := req.ExecuteReview == nil || *req.ExecuteReview

	log, err := h.batch.StartBatch(r.Context(), origin, executeReview)
	if err != nil {
		h.logger.Error("batch start error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusAccepted, batchRunResponse{
		LogID:        log.ID.String(),
		TotalClients: log.TotalUnits,
	})
}
