package port

import (
	"context"

	"github.com/google/uuid"
)

// AlertKind identifies which budget window a warning refers to.
type AlertKind string

const (
	AlertDailyBudgetWarning   AlertKind = "daily_budget_warning"
	AlertMonthlyBudgetWarning AlertKind = "monthly_budget_warning"
)

// Alert is a threshold warning for one brand. PercentUsed is
// spend/budget*100, or 0 when the budget itself is 0. The monitor has
// no memory: the same alert is re-emitted on every run while the brand
// stays over threshold. Deduplication belongs to the delivery channel.
type Alert struct {
	Kind        AlertKind `json:"kind"`
	BrandID     uuid.UUID `json:"brand_id"`
	BrandName   string    `json:"brand_name"`
	PercentUsed float64   `json:"percent_used"`
	Spend       int64     `json:"spend"`
	Budget      int64     `json:"budget"`
}

// AlertSink receives threshold warnings. Delivery is at-least-once;
// implementations must tolerate repeats.
type AlertSink interface {
	Emit(ctx context.Context, a Alert) error
}
