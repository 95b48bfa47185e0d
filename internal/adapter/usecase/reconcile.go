package usecase

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"budget-planner/internal/core/domain"
	"budget-planner/internal/core/port"
)

// Reconcile eliminates drift between the ledger and the aggregate
// store, then re-derives every campaign's status. Counters are fully
// overwritten from a ledger scan, so any increment lost before the scan
// point is healed. The run is idempotent: with no intervening ledger
// writes a second run produces identical aggregates and statuses.
//
// Per-entity failures are isolated: a failed ledger read or save skips
// that entity (stale value retained until the next run) and is counted
// in the summary. Only a failed entity listing aborts the run.
func (u *BudgetUseCase) Reconcile(ctx context.Context) (*port.ReconcileSummary, error) {
	now := u.clock.Now()
	today, monthStart := periodStarts(now)
	sum := &port.ReconcileSummary{
		StartedAt:   now,
		Transitions: make(map[domain.Status]int),
	}

	campaigns, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := u.repo.ListBrands(ctx, false)
	if err != nil {
		return nil, err
	}

	// Campaign counters. Entities are independent, so fan out; each
	// row is written by a single UPDATE, keeping per-entity writes
	// serialized.
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.cfg.Workers)
	for i := range campaigns {
		c := &campaigns[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			daily, err := u.ledger.SumCampaignSpend(gctx, c.ID, today, today)
			if err != nil {
				mu.Lock()
				sum.LedgerFailures++
				mu.Unlock()
				return nil
			}
			monthly, err := u.ledger.SumCampaignSpend(gctx, c.ID, monthStart, today)
			if err != nil {
				mu.Lock()
				sum.LedgerFailures++
				mu.Unlock()
				return nil
			}
			c.DailySpend, c.MonthlySpend = daily, monthly
			switch err := u.repo.SaveCampaign(gctx, c); {
			case errors.Is(err, port.ErrNotFound):
				mu.Lock()
				sum.Missing++
				mu.Unlock()
			case err != nil:
				mu.Lock()
				sum.SaveFailures++
				mu.Unlock()
			default:
				mu.Lock()
				sum.CampaignsReconciled++
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}

	// Brand counters, from the same windows.
	byBrand := make(map[string]*domain.Brand, len(brands))
	for i := range brands {
		b := &brands[i]
		byBrand[b.ID.String()] = b
		daily, err := u.ledger.SumBrandSpend(ctx, b.ID, today, today)
		if err != nil {
			sum.LedgerFailures++
			continue
		}
		monthly, err := u.ledger.SumBrandSpend(ctx, b.ID, monthStart, today)
		if err != nil {
			sum.LedgerFailures++
			continue
		}
		b.DailySpend, b.MonthlySpend = daily, monthly
		switch err := u.repo.SaveBrand(ctx, b); {
		case errors.Is(err, port.ErrNotFound):
			sum.Missing++
		case err != nil:
			sum.SaveFailures++
		default:
			sum.BrandsReconciled++
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}
	}

	// Statuses, against the freshly derived brand counters.
	for i := range campaigns {
		c := &campaigns[i]
		b, ok := byBrand[c.BrandID.String()]
		if !ok {
			sum.Missing++
			continue
		}
		next := domain.ComputeStatus(c, b, now)
		if next == c.Status {
			continue
		}
		c.Status = next
		switch err := u.repo.SaveCampaign(ctx, c); {
		case errors.Is(err, port.ErrNotFound):
			sum.Missing++
		case err != nil:
			sum.SaveFailures++
		default:
			sum.Transitions[next]++
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}
	}
	return sum, nil
}
