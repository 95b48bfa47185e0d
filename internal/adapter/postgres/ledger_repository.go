package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"budget-planner/internal/core/domain"
)

// LedgerRepository implements port.SpendLedger over the ad_spends
// table. Rows are append-only.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new ledger instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// CreateSpend appends a transaction to the ledger.
func (r *LedgerRepository) CreateSpend(ctx context.Context, s *domain.AdSpend) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO ad_spends (id, campaign_id, amount, description, occurred_at) VALUES ($1,$2,$3,$4,$5)`,
		s.ID, s.CampaignID, s.Amount, s.Description, s.OccurredAt)
	return err
}

// SumCampaignSpend sums amounts for one campaign over the inclusive
// day window [from, to].
func (r *LedgerRepository) SumCampaignSpend(ctx context.Context, campaignID uuid.UUID, from, to time.Time) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM ad_spends
		 WHERE campaign_id = $1 AND occurred_at >= $2 AND occurred_at < $3`,
		campaignID, from, endOfDay(to)).Scan(&total)
	return total, err
}

// SumBrandSpend sums amounts across all campaigns of one brand over
// the inclusive day window [from, to].
func (r *LedgerRepository) SumBrandSpend(ctx context.Context, brandID uuid.UUID, from, to time.Time) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(s.amount), 0) FROM ad_spends s
		 JOIN campaigns c ON c.id = s.campaign_id
		 WHERE c.brand_id = $1 AND s.occurred_at >= $2 AND s.occurred_at < $3`,
		brandID, from, endOfDay(to)).Scan(&total)
	return total, err
}

// endOfDay is the exclusive upper bound for an inclusive to-date.
func endOfDay(to time.Time) time.Time {
	y, m, d := to.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)
}
