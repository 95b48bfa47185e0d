package domain

import (
	"time"

	"github.com/google/uuid"
)

// Campaign is a schedulable advertising unit under a brand. Spend is
// stored in integer units (e.g. cents). The dayparting schedule limits
// the hours during which the campaign may run; when DaypartingEnabled
// is false the schedule is ignored.
type Campaign struct {
	ID                 uuid.UUID
	BrandID            uuid.UUID
	Name               string
	Status             Status
	DailySpend         int64
	MonthlySpend       int64
	DaypartingEnabled  bool
	DaypartingSchedule DaypartingSchedule
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
