package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"budget-planner/internal/core/domain"
	"budget-planner/internal/core/port"
)

// Config tunes the budget engine. Zero values fall back to defaults.
type Config struct {
	// AlertThresholdPercent is the spend/budget percentage at which the
	// monitor starts warning. Default 90.
	AlertThresholdPercent int64
	// Workers bounds per-entity fan-out inside a job run. Default 8.
	Workers int
}

func (c Config) withDefaults() Config {
	if c.AlertThresholdPercent <= 0 {
		c.AlertThresholdPercent = 90
	}
	if c.Workers <= 0 {
		c.Workers = 8
	}
	return c
}

// BudgetUseCase implements port.BudgetUseCase: spend ingestion, manual
// pause control and the periodic jobs that keep aggregates and statuses
// convergent with the ledger.
type BudgetUseCase struct {
	repo   port.BudgetRepository
	ledger port.SpendLedger
	alerts port.AlertSink
	clock  port.Clock
	cfg    Config
}

// NewBudgetUseCase wires the engine to its collaborators.
func NewBudgetUseCase(repo port.BudgetRepository, ledger port.SpendLedger, alerts port.AlertSink, clock port.Clock, cfg Config) *BudgetUseCase {
	return &BudgetUseCase{
		repo:   repo,
		ledger: ledger,
		alerts: alerts,
		clock:  clock,
		cfg:    cfg.withDefaults(),
	}
}

// RecordSpend appends a transaction to the ledger, re-derives the
// affected campaign's and brand's counters from the ledger and
// recomputes the campaign's status. The counter update here is a
// latency optimization; a concurrent reconciliation run may briefly
// overwrite it with an older snapshot, which the next run corrects.
func (u *BudgetUseCase) RecordSpend(ctx context.Context, campaignID uuid.UUID, amount int64, description string) (*domain.AdSpend, domain.Status, error) {
	if amount <= 0 {
		return nil, "", port.ErrInvalidAmount
	}
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, "", err
	}

	now := u.clock.Now()
	spend := &domain.AdSpend{
		ID:          uuid.New(),
		CampaignID:  campaignID,
		Amount:      amount,
		Description: description,
		OccurredAt:  now,
	}
	if err = u.ledger.CreateSpend(ctx, spend); err != nil {
		return nil, "", fmt.Errorf("create spend: %w", err)
	}

	today, monthStart := periodStarts(now)
	if c.DailySpend, err = u.ledger.SumCampaignSpend(ctx, c.ID, today, today); err != nil {
		return nil, "", fmt.Errorf("sum campaign daily spend: %w", err)
	}
	if c.MonthlySpend, err = u.ledger.SumCampaignSpend(ctx, c.ID, monthStart, today); err != nil {
		return nil, "", fmt.Errorf("sum campaign monthly spend: %w", err)
	}

	b, err := u.repo.GetBrand(ctx, c.BrandID)
	if err != nil {
		return nil, "", err
	}
	if b.DailySpend, err = u.ledger.SumBrandSpend(ctx, b.ID, today, today); err != nil {
		return nil, "", fmt.Errorf("sum brand daily spend: %w", err)
	}
	if b.MonthlySpend, err = u.ledger.SumBrandSpend(ctx, b.ID, monthStart, today); err != nil {
		return nil, "", fmt.Errorf("sum brand monthly spend: %w", err)
	}
	if err = u.repo.SaveBrand(ctx, b); err != nil {
		return nil, "", fmt.Errorf("save brand: %w", err)
	}

	c.Status = domain.ComputeStatus(c, b, now)
	if err = u.repo.SaveCampaign(ctx, c); err != nil {
		return nil, "", fmt.Errorf("save campaign: %w", err)
	}
	return spend, c.Status, nil
}

// CampaignStatus returns the campaign's current stored status. It
// reads what the jobs last persisted rather than recomputing, so the
// answer matches what enforcement downstream sees.
func (u *BudgetUseCase) CampaignStatus(ctx context.Context, id uuid.UUID) (domain.Status, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return "", err
	}
	return c.Status, nil
}

// PauseCampaign sets the sticky manual pause. The engine never clears
// it; only UnpauseCampaign does.
func (u *BudgetUseCase) PauseCampaign(ctx context.Context, id uuid.UUID) (domain.Status, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return "", err
	}
	if c.Status == domain.StatusPaused {
		return c.Status, nil
	}
	c.Status = domain.StatusPaused
	if err = u.repo.SaveCampaign(ctx, c); err != nil {
		return "", err
	}
	return c.Status, nil
}

// UnpauseCampaign clears a manual pause and immediately recomputes the
// status, so a campaign unpaused outside its dayparting window lands in
// dayparting_paused rather than active.
func (u *BudgetUseCase) UnpauseCampaign(ctx context.Context, id uuid.UUID) (domain.Status, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return "", err
	}
	if c.Status != domain.StatusPaused {
		return c.Status, nil
	}
	b, err := u.repo.GetBrand(ctx, c.BrandID)
	if err != nil {
		return "", err
	}
	c.Status = domain.StatusActive
	c.Status = domain.ComputeStatus(c, b, u.clock.Now())
	if err = u.repo.SaveCampaign(ctx, c); err != nil {
		return "", err
	}
	return c.Status, nil
}

// BudgetOverview rolls up budget posture across all brands.
func (u *BudgetUseCase) BudgetOverview(ctx context.Context) (*port.BudgetOverview, error) {
	brands, err := u.repo.ListBrands(ctx, false)
	if err != nil {
		return nil, err
	}
	ov := &port.BudgetOverview{TotalBrands: len(brands)}
	for i := range brands {
		b := &brands[i]
		if b.Active {
			ov.ActiveBrands++
		}
		if b.DailyBudgetExceeded() {
			ov.DailyBudgetExceeded++
		}
		if b.MonthlyBudgetExceeded() {
			ov.MonthlyBudgetExceeded++
		}
		ov.TotalDailySpend += b.DailySpend
		ov.TotalMonthlySpend += b.MonthlySpend
		ov.TotalDailyBudget += b.DailyBudget
		ov.TotalMonthlyBudget += b.MonthlyBudget
	}
	return ov, nil
}

// periodStarts returns the start of now's day and of now's month, the
// two ledger windows every counter is derived over.
func periodStarts(now time.Time) (day, month time.Time) {
	y, m, d := now.Date()
	day = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	month = time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	return day, month
}
