package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"budget-planner/internal/core/domain"
	"budget-planner/internal/core/port"
)

// BudgetRepository implements port.BudgetRepository using pgxpool.
// Save methods touch only the fields the core owns (spend counters,
// status, updated_at) in one UPDATE per entity, so they cannot
// interleave with each other or with admin edits to the other columns.
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository returns a new repository instance.
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

// GetBrand returns a brand by id.
func (r *BudgetRepository) GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	var b domain.Brand
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, active, daily_budget, monthly_budget, daily_spend, monthly_spend, created_at, updated_at
		 FROM brands WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.Active, &b.DailyBudget, &b.MonthlyBudget, &b.DailySpend, &b.MonthlySpend, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// SaveBrand persists the brand's spend counters.
func (r *BudgetRepository) SaveBrand(ctx context.Context, b *domain.Brand) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE brands SET daily_spend = $2, monthly_spend = $3, updated_at = now() WHERE id = $1`,
		b.ID, b.DailySpend, b.MonthlySpend)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// ListBrands returns all brands ordered by name, optionally only the
// active ones.
func (r *BudgetRepository) ListBrands(ctx context.Context, activeOnly bool) ([]domain.Brand, error) {
	query := `SELECT id, name, active, daily_budget, monthly_budget, daily_spend, monthly_spend, created_at, updated_at
	          FROM brands`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Brand, error) {
		var b domain.Brand
		err := row.Scan(&b.ID, &b.Name, &b.Active, &b.DailyBudget, &b.MonthlyBudget, &b.DailySpend, &b.MonthlySpend, &b.CreatedAt, &b.UpdatedAt)
		return b, err
	})
}

// GetCampaign returns a campaign by id.
func (r *BudgetRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var (
		c           domain.Campaign
		scheduleRaw []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, brand_id, name, status, daily_spend, monthly_spend, dayparting_enabled, dayparting_schedule, created_at, updated_at
		 FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.BrandID, &c.Name, &c.Status, &c.DailySpend, &c.MonthlySpend, &c.DaypartingEnabled, &scheduleRaw, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// A malformed schedule blob must never take the campaign down; it
	// just means no dayparting restriction.
	c.DaypartingSchedule, _ = domain.ParseSchedule(scheduleRaw)
	return &c, nil
}

// SaveCampaign persists the campaign's spend counters and status.
func (r *BudgetRepository) SaveCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET daily_spend = $2, monthly_spend = $3, status = $4, updated_at = now() WHERE id = $1`,
		c.ID, c.DailySpend, c.MonthlySpend, c.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// ListCampaigns returns all campaigns ordered by name.
func (r *BudgetRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, brand_id, name, status, daily_spend, monthly_spend, dayparting_enabled, dayparting_schedule, created_at, updated_at
		 FROM campaigns ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var (
			c           domain.Campaign
			scheduleRaw []byte
		)
		err := row.Scan(&c.ID, &c.BrandID, &c.Name, &c.Status, &c.DailySpend, &c.MonthlySpend, &c.DaypartingEnabled, &scheduleRaw, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return c, err
		}
		c.DaypartingSchedule, _ = domain.ParseSchedule(scheduleRaw)
		return c, nil
	})
}
