package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdSpend is an immutable record of money spent on a campaign at a
// point in time. Amount is in integer units (e.g. cents) and must be
// positive. The transaction log of AdSpend rows is the source of truth
// for all aggregate counters.
type AdSpend struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	Amount      int64
	Description string
	OccurredAt  time.Time
}
