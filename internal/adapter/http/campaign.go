package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"budget-planner/internal/core/domain"
	"budget-planner/internal/core/port"
)

type statusResponse struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	Status     string    `json:"status"`
}

// handleCampaignStatus returns the campaign's current stored status.
func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	h.campaignStatusOp(w, r, h.svc.CampaignStatus)
}

// handlePauseCampaign sets the sticky manual pause on a campaign. The
// periodic jobs never clear it.
func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	h.campaignStatusOp(w, r, h.svc.PauseCampaign)
}

// handleUnpauseCampaign clears a manual pause. The returned status is
// recomputed, so it may be any derived state, not necessarily active.
func (h *Handler) handleUnpauseCampaign(w http.ResponseWriter, r *http.Request) {
	h.campaignStatusOp(w, r, h.svc.UnpauseCampaign)
}

func (h *Handler) campaignStatusOp(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (domain.Status, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	status, err := op(r.Context(), id)
	switch {
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("campaign status error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, statusResponse{CampaignID: id, Status: string(status)})
}

// handleBudgetOverview returns the roll-up of budget posture across
// all brands.
func (h *Handler) handleBudgetOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.BudgetOverview(r.Context())
	if err != nil {
		h.logger.Error("budget overview error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, ov)
}
