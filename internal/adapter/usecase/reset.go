package usecase

import (
	"context"

	"budget-planner/internal/core/domain"
	"budget-planner/internal/core/port"
)

const (
	periodDaily   = "daily"
	periodMonthly = "monthly"
)

// ResetDaily zeroes daily spend for every brand and campaign at the
// day boundary and re-derives statuses. The new period has no
// transactions yet, so counters are set to zero unconditionally rather
// than re-summed from the ledger. Running it twice for the same
// boundary only re-zeroes already-zero counters.
func (u *BudgetUseCase) ResetDaily(ctx context.Context) (*port.ResetSummary, error) {
	return u.resetPeriod(ctx, periodDaily)
}

// ResetMonthly zeroes monthly spend for every brand and campaign at
// the month boundary and re-derives statuses.
func (u *BudgetUseCase) ResetMonthly(ctx context.Context) (*port.ResetSummary, error) {
	return u.resetPeriod(ctx, periodMonthly)
}

func (u *BudgetUseCase) resetPeriod(ctx context.Context, period string) (*port.ResetSummary, error) {
	now := u.clock.Now()
	sum := &port.ResetSummary{StartedAt: now, Period: period}

	brands, err := u.repo.ListBrands(ctx, false)
	if err != nil {
		return nil, err
	}
	campaigns, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	// Brands first: campaign statuses below must see the zeroed brand
	// counters.
	byBrand := make(map[string]*domain.Brand, len(brands))
	for i := range brands {
		b := &brands[i]
		if period == periodDaily {
			b.DailySpend = 0
		} else {
			b.MonthlySpend = 0
		}
		byBrand[b.ID.String()] = b
		if err := u.repo.SaveBrand(ctx, b); err != nil {
			sum.Failures++
		} else {
			sum.BrandsReset++
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}
	}

	for i := range campaigns {
		c := &campaigns[i]
		if period == periodDaily {
			c.DailySpend = 0
		} else {
			c.MonthlySpend = 0
		}
		prev := c.Status
		if b, ok := byBrand[c.BrandID.String()]; ok {
			c.Status = domain.ComputeStatus(c, b, now)
		}
		if err := u.repo.SaveCampaign(ctx, c); err != nil {
			sum.Failures++
			continue
		}
		sum.CampaignsReset++
		if prev == domain.StatusBudgetExceeded && c.Status == domain.StatusActive {
			sum.Reactivated++
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}
	}
	return sum, nil
}
