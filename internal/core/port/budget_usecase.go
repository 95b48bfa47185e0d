package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"budget-planner/internal/core/domain"
)

// BudgetUseCase is the primary port into the budget engine: spend
// ingestion, manual pause control, the periodic jobs and the reporting
// reads. Each job method takes no arguments beyond the context and
// returns a structured summary for observability; per-entity failures
// are folded into the summary, never returned as errors.
type BudgetUseCase interface {
	// RecordSpend appends a transaction to the ledger, re-derives the
	// affected campaign's and brand's counters from the ledger, and
	// recomputes the campaign's status. The incremental update is a
	// latency optimization; reconciliation remains authoritative.
	RecordSpend(ctx context.Context, campaignID uuid.UUID, amount int64, description string) (*domain.AdSpend, domain.Status, error)

	// CampaignStatus returns the campaign's current stored status.
	CampaignStatus(ctx context.Context, id uuid.UUID) (domain.Status, error)

	// PauseCampaign sets the sticky manual pause.
	PauseCampaign(ctx context.Context, id uuid.UUID) (domain.Status, error)
	// UnpauseCampaign clears a manual pause and recomputes the status,
	// so the campaign may land in any derived state, not necessarily
	// active.
	UnpauseCampaign(ctx context.Context, id uuid.UUID) (domain.Status, error)

	// Reconcile overwrites every campaign's and brand's counters from
	// the ledger and re-derives every campaign's status.
	Reconcile(ctx context.Context) (*ReconcileSummary, error)
	// ResetDaily zeroes daily counters at the day boundary and
	// re-derives statuses.
	ResetDaily(ctx context.Context) (*ResetSummary, error)
	// ResetMonthly zeroes monthly counters at the month boundary and
	// re-derives statuses.
	ResetMonthly(ctx context.Context) (*ResetSummary, error)
	// MonitorBudgets scans active brands against the warning threshold
	// and emits alerts.
	MonitorBudgets(ctx context.Context) (*AlertSummary, error)

	// BudgetOverview aggregates budget posture across all brands.
	BudgetOverview(ctx context.Context) (*BudgetOverview, error)
}

// ReconcileSummary reports one reconciliation run. Transitions counts
// status changes by destination status. LedgerFailures and
// SaveFailures count entities whose update was skipped this run; their
// stale values are corrected by a later run.
type ReconcileSummary struct {
	StartedAt           time.Time             `json:"started_at"`
	CampaignsReconciled int                   `json:"campaigns_reconciled"`
	BrandsReconciled    int                   `json:"brands_reconciled"`
	Transitions         map[domain.Status]int `json:"transitions"`
	Missing             int                   `json:"missing"`
	LedgerFailures      int                   `json:"ledger_failures"`
	SaveFailures        int                   `json:"save_failures"`
}

// ResetSummary reports one budget reset run. Reactivated counts
// campaigns relieved from budget_exceeded back to active, a meaningful
// operational signal at period boundaries.
type ResetSummary struct {
	StartedAt      time.Time `json:"started_at"`
	Period         string    `json:"period"`
	BrandsReset    int       `json:"brands_reset"`
	CampaignsReset int       `json:"campaigns_reset"`
	Reactivated    int       `json:"reactivated"`
	Failures       int       `json:"failures"`
}

// AlertSummary reports one alert scan.
type AlertSummary struct {
	StartedAt     time.Time `json:"started_at"`
	BrandsChecked int       `json:"brands_checked"`
	Alerts        []Alert   `json:"alerts"`
	EmitFailures  int       `json:"emit_failures"`
}

// BudgetOverview is a point-in-time roll-up across all brands.
type BudgetOverview struct {
	TotalBrands           int   `json:"total_brands"`
	ActiveBrands          int   `json:"active_brands"`
	DailyBudgetExceeded   int   `json:"daily_budget_exceeded"`
	MonthlyBudgetExceeded int   `json:"monthly_budget_exceeded"`
	TotalDailySpend       int64 `json:"total_daily_spend"`
	TotalMonthlySpend     int64 `json:"total_monthly_spend"`
	TotalDailyBudget      int64 `json:"total_daily_budget"`
	TotalMonthlyBudget    int64 `json:"total_monthly_budget"`
}
