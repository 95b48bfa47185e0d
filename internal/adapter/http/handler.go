package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"budget-planner/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the budget engine to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.BudgetUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// BudgetUseCase implementation and a logger. The job trigger endpoints
// exist for external schedulers and operators; each returns the run's
// structured summary.
func NewHandler(svc port.BudgetUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/spend", h.handleRecordSpend)
		r.Get("/campaigns/{id}/status", h.handleCampaignStatus)
		r.Post("/campaigns/{id}/pause", h.handlePauseCampaign)
		r.Post("/campaigns/{id}/unpause", h.handleUnpauseCampaign)
		r.Get("/budgets/overview", h.handleBudgetOverview)

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/reconcile", h.handleReconcile)
			r.Post("/reset-daily", h.handleResetDaily)
			r.Post("/reset-monthly", h.handleResetMonthly)
			r.Post("/alert-scan", h.handleAlertScan)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
