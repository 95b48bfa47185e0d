package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"budget-planner/internal/core/port"
)

// spendRequest is the ingestion payload. Amount is in integer currency
// units (e.g. cents) and must be positive.
type spendRequest struct {
	CampaignID  uuid.UUID `json:"campaign_id"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
}

type spendResponse struct {
	SpendID uuid.UUID `json:"spend_id"`
	Status  string    `json:"status"`
}

// handleRecordSpend ingests one spend transaction. On success it
// returns the stored transaction id and the campaign's resulting
// status. Unknown campaigns produce HTTP 404, non-positive amounts
// HTTP 400, anything else HTTP 500.
func (h *Handler) handleRecordSpend(w http.ResponseWriter, r *http.Request) {
	var req spendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	spend, status, err := h.svc.RecordSpend(r.Context(), req.CampaignID, req.Amount, req.Description)
	switch {
	case errors.Is(err, port.ErrInvalidAmount):
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("record spend error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, spendResponse{SpendID: spend.ID, Status: string(status)})
}

// writeJSON encodes v with the given status code. Encoding failures are
// logged; the status line has already been sent at that point.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response error", slog.Any("error", err))
	}
}
