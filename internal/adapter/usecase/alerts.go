package usecase

import (
	"context"

	"budget-planner/internal/core/domain"
	"budget-planner/internal/core/port"
)

// MonitorBudgets scans every active brand against the warning
// threshold and emits alert events. Daily and monthly checks are
// independent; a brand can produce both in one run. The monitor keeps
// no memory of past alerts, so a brand over threshold re-alerts each
// run; deduplication belongs to the delivery channel.
func (u *BudgetUseCase) MonitorBudgets(ctx context.Context) (*port.AlertSummary, error) {
	now := u.clock.Now()
	sum := &port.AlertSummary{StartedAt: now, Alerts: []port.Alert{}}

	brands, err := u.repo.ListBrands(ctx, true)
	if err != nil {
		return nil, err
	}
	sum.BrandsChecked = len(brands)

	for i := range brands {
		b := &brands[i]
		if a, ok := u.thresholdAlert(b, port.AlertDailyBudgetWarning, b.DailySpend, b.DailyBudget); ok {
			u.emit(ctx, sum, a)
		}
		if a, ok := u.thresholdAlert(b, port.AlertMonthlyBudgetWarning, b.MonthlySpend, b.MonthlyBudget); ok {
			u.emit(ctx, sum, a)
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// thresholdAlert applies the warning rule to one spend/budget pair.
// The comparison is integer-only so an exact 90% never falls victim to
// float rounding. A zero budget never divides: spend over a zero
// budget counts as over threshold with percent 0, and zero spend over
// a zero budget is skipped entirely.
func (u *BudgetUseCase) thresholdAlert(b *domain.Brand, kind port.AlertKind, spend, budget int64) (port.Alert, bool) {
	a := port.Alert{Kind: kind, BrandID: b.ID, BrandName: b.Name, Spend: spend, Budget: budget}
	if budget <= 0 {
		return a, spend > 0
	}
	if spend*100 < budget*u.cfg.AlertThresholdPercent {
		return a, false
	}
	a.PercentUsed = float64(spend) / float64(budget) * 100
	return a, true
}

func (u *BudgetUseCase) emit(ctx context.Context, sum *port.AlertSummary, a port.Alert) {
	sum.Alerts = append(sum.Alerts, a)
	if err := u.alerts.Emit(ctx, a); err != nil {
		sum.EmitFailures++
	}
}
