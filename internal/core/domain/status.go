package domain

import "time"

// Status describes whether a campaign may run right now and, if not,
// why. All values except StatusPaused are derived by ComputeStatus;
// StatusPaused is set by an operator and only cleared by an operator.
type Status string

const (
	StatusActive           Status = "active"
	StatusPaused           Status = "paused"
	StatusBudgetExceeded   Status = "budget_exceeded"
	StatusDaypartingPaused Status = "dayparting_paused"
	StatusInactive         Status = "inactive"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusBudgetExceeded, StatusDaypartingPaused, StatusInactive:
		return true
	}
	return false
}

// Manual reports whether the status was set by an operator rather than
// derived. Manual statuses are sticky: ComputeStatus never overrides
// them.
func (s Status) Manual() bool {
	return s == StatusPaused
}

// ComputeStatus derives the status a campaign should have at the given
// instant. It is pure: no I/O, no side effects, same inputs always give
// the same answer. Rules are checked in order and the first match wins:
//
//  1. a manual pause stays paused;
//  2. an inactive brand forces the campaign inactive;
//  3. a brand whose daily or monthly spend has reached the
//     corresponding budget forces budget_exceeded;
//  4. a campaign outside every dayparting window for now's weekday is
//     dayparting_paused;
//  5. otherwise the campaign is active.
//
// Budget enforcement is at brand granularity only; campaign-level spend
// is tracked but never consulted here.
func ComputeStatus(c *Campaign, b *Brand, now time.Time) Status {
	if c.Status.Manual() {
		return StatusPaused
	}
	if !b.Active {
		return StatusInactive
	}
	if b.DailyBudgetExceeded() || b.MonthlyBudgetExceeded() {
		return StatusBudgetExceeded
	}
	if c.DaypartingEnabled && c.DaypartingSchedule != nil && !c.DaypartingSchedule.Allows(now) {
		return StatusDaypartingPaused
	}
	return StatusActive
}
