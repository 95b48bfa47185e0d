package domain

import (
	"time"

	"github.com/google/uuid"
)

// Brand is an advertising client owning a shared budget pool.
// Budgets and spend are stored in integer units (e.g. cents).
type Brand struct {
	ID            uuid.UUID
	Name          string
	Active        bool
	DailyBudget   int64
	MonthlyBudget int64
	DailySpend    int64
	MonthlySpend  int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DailyBudgetExceeded reports whether the daily spend has reached the
// daily budget. Reaching the limit, not just exceeding it, counts.
func (b *Brand) DailyBudgetExceeded() bool {
	return b.DailySpend >= b.DailyBudget
}

// MonthlyBudgetExceeded reports whether the monthly spend has reached
// the monthly budget.
func (b *Brand) MonthlyBudgetExceeded() bool {
	return b.MonthlySpend >= b.MonthlyBudget
}

// DailyBudgetRemaining returns the unspent part of the daily budget,
// never negative.
func (b *Brand) DailyBudgetRemaining() int64 {
	return max(0, b.DailyBudget-b.DailySpend)
}

// MonthlyBudgetRemaining returns the unspent part of the monthly
// budget, never negative.
func (b *Brand) MonthlyBudgetRemaining() int64 {
	return max(0, b.MonthlyBudget-b.MonthlySpend)
}
