package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"budget-planner/internal/core/domain"
)

// SpendLedger is the transaction log of spend records. Rows are
// immutable once created; the sum queries are the source of truth the
// reconciliation job derives all aggregate counters from.
//
// The sum queries take a date window: from is the first day included
// and to the last (both interpreted as whole calendar days on the
// reference clock). Absence of matching rows yields 0, not an error.
type SpendLedger interface {
	// CreateSpend appends a transaction to the ledger.
	CreateSpend(ctx context.Context, s *domain.AdSpend) error
	// SumCampaignSpend sums amounts for one campaign over [from, to].
	SumCampaignSpend(ctx context.Context, campaignID uuid.UUID, from, to time.Time) (int64, error)
	// SumBrandSpend sums amounts across all campaigns of one brand over
	// [from, to].
	SumBrandSpend(ctx context.Context, brandID uuid.UUID, from, to time.Time) (int64, error)
}
