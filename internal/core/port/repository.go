package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"budget-planner/internal/core/domain"
)

// ErrNotFound is returned when a brand or campaign does not exist, or
// disappeared between a read and a write. Jobs skip such entities and
// continue with the rest of the batch.
var ErrNotFound = errors.New("not found")

// ErrInvalidAmount is returned when a spend transaction carries a
// non-positive amount.
var ErrInvalidAmount = errors.New("amount must be positive")

// BudgetRepository is the aggregate store: current spend counters and
// status per brand and campaign. It is an outbound port. Save methods
// write only the fields the core owns (spend counters, status,
// updated_at) in a single atomic statement per entity, so concurrent
// writers to the same row cannot interleave partial updates.
type BudgetRepository interface {
	GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error)
	// SaveBrand persists the brand's spend counters.
	SaveBrand(ctx context.Context, b *domain.Brand) error
	// ListBrands returns all brands, or only active ones.
	ListBrands(ctx context.Context, activeOnly bool) ([]domain.Brand, error)

	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// SaveCampaign persists the campaign's spend counters and status.
	SaveCampaign(ctx context.Context, c *domain.Campaign) error
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
}
