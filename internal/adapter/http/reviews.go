package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

// reviewResponse is the wire shape shared by dated reviews and the current
// state; ReviewDate distinguishes which day the numbers belong to.
type reviewResponse struct {
	ClientID            int64   `json:"clientId"`
	AccountID           *string `json:"accountId"`
	AccountName         string  `json:"accountName"`
	Platform            string  `json:"platform"`
	ReviewDate          string  `json:"reviewDate"`
	DailyBudgetCurrent  int64   `json:"dailyBudgetCurrent"`
	TotalSpent          int64   `json:"totalSpent"`
	ActiveCampaignCount int     `json:"activeCampaignCount"`
	TotalImpressions    int64   `json:"totalImpressions"`
	UsingCustomBudget   bool    `json:"usingCustomBudget"`
	CustomBudgetID      *int64  `json:"customBudgetId,omitempty"`
	CustomBudgetAmount  *int64  `json:"customBudgetAmount,omitempty"`
}

// handleCurrentReviews returns the denormalized "today" state for every
// reconciled (client, account), backing the dashboard's budget view.
func (h *Handler) handleCurrentReviews(w http.ResponseWriter, r *http.Request) {
	states, err := h.reviews.ListCurrentStates(r.Context())
	if err != nil {
		h.logger.Error("current reviews error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]reviewResponse, 0, len(states))
	for _, s := range states {
		out = append(out, reviewResponse{
			ClientID:            s.ClientID,
			AccountID:           s.AccountID,
			AccountName:         s.AccountName,
			Platform:            string(s.Platform),
			ReviewDate:          s.ReviewDate.Format(dateLayout),
			DailyBudgetCurrent:  s.DailyBudgetCurrent,
			TotalSpent:          s.TotalSpent,
			ActiveCampaignCount: s.ActiveCampaignCount,
			TotalImpressions:    s.TotalImpressions,
			UsingCustomBudget:   s.UsingCustomBudget,
			CustomBudgetID:      s.CustomBudgetID,
			CustomBudgetAmount:  s.CustomBudgetAmount,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleClientReviews returns one client's dated reviews. Optional `from`
// and `to` query parameters (YYYY-MM-DD) bound the range; the default is the
// last 30 days.
func (h *Handler) handleClientReviews(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	// Defaults follow the civil timezone snapshots are dated in; near local
	// midnight the UTC day is already the next one.
	q := r.URL.Query()
	y, m, d := h.now().In(h.loc).Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -30)
	if raw := q.Get("from"); raw != "" {
		if from, err = time.Parse(dateLayout, raw); err != nil {
			http.Error(w, "invalid 'from' date", http.StatusBadRequest)
			return
		}
	}
	if raw := q.Get("to"); raw != "" {
		if to, err = time.Parse(dateLayout, raw); err != nil {
			http.Error(w, "invalid 'to' date", http.StatusBadRequest)
			return
		}
	}

	reviews, err := h.reviews.ListReviews(r.Context(), clientID, from, to)
	if err != nil {
		h.logger.Error("client reviews error", slog.Int64("client_id", clientID), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]reviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		out = append(out, reviewResponse{
			ClientID:            rev.ClientID,
			AccountID:           rev.AccountID,
			AccountName:         rev.AccountName,
			Platform:            string(rev.Platform),
			ReviewDate:          rev.ReviewDate.Format(dateLayout),
			DailyBudgetCurrent:  rev.DailyBudgetCurrent,
			TotalSpent:          rev.TotalSpent,
			ActiveCampaignCount: rev.ActiveCampaignCount,
			TotalImpressions:    rev.TotalImpressions,
			UsingCustomBudget:   rev.UsingCustomBudget,
			CustomBudgetID:      rev.CustomBudgetID,
			CustomBudgetAmount:  rev.CustomBudgetAmount,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}
