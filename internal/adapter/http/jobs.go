package httpadapter

import (
	"log/slog"
	"net/http"
)

// Job trigger endpoints. They take no parameters and return the run's
// structured summary, matching what the in-process scheduler logs.
// Jobs are idempotent, so an external scheduler double-firing one is
// harmless.

func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Reconcile(r.Context())
	if err != nil {
		h.logger.Error("reconcile error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, sum)
}

func (h *Handler) handleResetDaily(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.ResetDaily(r.Context())
	if err != nil {
		h.logger.Error("daily reset error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, sum)
}

func (h *Handler) handleResetMonthly(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.ResetMonthly(r.Context())
	if err != nil {
		h.logger.Error("monthly reset error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, sum)
}

func (h *Handler) handleAlertScan(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.MonitorBudgets(r.Context())
	if err != nil {
		h.logger.Error("alert scan error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, sum)
}
