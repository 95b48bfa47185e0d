package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// mondayAt returns a Monday in June 2025 at the given wall time.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, time.June, 2, hour, minute, 0, 0, time.UTC)
}

func businessHoursSchedule() DaypartingSchedule {
	return DaypartingSchedule{
		"monday": {{Start: "09:00", End: "17:00"}},
	}
}

func testBrand() *Brand {
	return &Brand{
		ID:            uuid.New(),
		Name:          "Acme",
		Active:        true,
		DailyBudget:   1000,
		MonthlyBudget: 10000,
	}
}

func testCampaign(b *Brand) *Campaign {
	return &Campaign{
		ID:      uuid.New(),
		BrandID: b.ID,
		Name:    "Summer",
		Status:  StatusActive,
	}
}

func TestComputeStatusManualPauseWins(t *testing.T) {
	b := testBrand()
	c := testCampaign(b)
	c.Status = StatusPaused

	// manual pause beats every other condition
	b.Active = false
	b.DailySpend = b.DailyBudget
	c.DaypartingEnabled = true
	c.DaypartingSchedule = businessHoursSchedule()

	assert.Equal(t, StatusPaused, ComputeStatus(c, b, mondayAt(3, 0)))
}

func TestComputeStatusInactiveBrand(t *testing.T) {
	b := testBrand()
	b.Active = false
	c := testCampaign(b)

	assert.Equal(t, StatusInactive, ComputeStatus(c, b, mondayAt(10, 0)))
}

func TestComputeStatusBudgetExceeded(t *testing.T) {
	cases := []struct {
		name           string
		daily, monthly int64
		want           Status
	}{
		{"daily at limit", 1000, 0, StatusBudgetExceeded},
		{"daily over limit", 1500, 0, StatusBudgetExceeded},
		{"monthly at limit", 0, 10000, StatusBudgetExceeded},
		{"both fine", 999, 9999, StatusActive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := testBrand()
			b.DailySpend = tc.daily
			b.MonthlySpend = tc.monthly
			c := testCampaign(b)
			assert.Equal(t, tc.want, ComputeStatus(c, b, mondayAt(10, 0)))
		})
	}
}

// Budget exhaustion must win over dayparting: a campaign outside its
// window under an exhausted brand reports budget_exceeded.
func TestComputeStatusBudgetBeforeDayparting(t *testing.T) {
	b := testBrand()
	b.DailySpend = b.DailyBudget
	c := testCampaign(b)
	c.DaypartingEnabled = true
	c.DaypartingSchedule = businessHoursSchedule()

	assert.Equal(t, StatusBudgetExceeded, ComputeStatus(c, b, mondayAt(3, 0)))
}

func TestComputeStatusDaypartingBoundaries(t *testing.T) {
	b := testBrand()
	c := testCampaign(b)
	c.DaypartingEnabled = true
	c.DaypartingSchedule = businessHoursSchedule()

	cases := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"at window start", mondayAt(9, 0), StatusActive},
		{"one minute before start", mondayAt(8, 59), StatusDaypartingPaused},
		{"inside window", mondayAt(10, 0), StatusActive},
		{"last minute inside", mondayAt(16, 59), StatusActive},
		{"at window end", mondayAt(17, 0), StatusDaypartingPaused},
		{"weekday without windows", mondayAt(10, 0).AddDate(0, 0, 1), StatusDaypartingPaused},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeStatus(c, b, tc.now))
		})
	}
}

func TestComputeStatusDaypartingDisabled(t *testing.T) {
	b := testBrand()
	c := testCampaign(b)
	c.DaypartingEnabled = false
	c.DaypartingSchedule = businessHoursSchedule()

	// disabled schedule never restricts, even outside the windows
	assert.Equal(t, StatusActive, ComputeStatus(c, b, mondayAt(3, 0)))
}

func TestComputeStatusNilScheduleUnrestricted(t *testing.T) {
	b := testBrand()
	c := testCampaign(b)
	c.DaypartingEnabled = true
	c.DaypartingSchedule = nil

	// a schedule that failed to parse arrives here as nil
	assert.Equal(t, StatusActive, ComputeStatus(c, b, mondayAt(3, 0)))
}

// The scenario from the reference deployment: in-window campaign goes
// budget_exceeded when the brand's daily budget fills up and returns to
// active after the daily reset.
func TestComputeStatusBudgetLifecycle(t *testing.T) {
	b := testBrand()
	c := testCampaign(b)
	c.DaypartingEnabled = true
	c.DaypartingSchedule = businessHoursSchedule()
	now := mondayAt(10, 0)

	assert.Equal(t, StatusActive, ComputeStatus(c, b, now))

	b.DailySpend = 1000
	assert.Equal(t, StatusBudgetExceeded, ComputeStatus(c, b, now))

	b.DailySpend = 0
	assert.Equal(t, StatusActive, ComputeStatus(c, b, now))
}

func TestStatusManual(t *testing.T) {
	assert.True(t, StatusPaused.Manual())
	for _, s := range []Status{StatusActive, StatusBudgetExceeded, StatusDaypartingPaused, StatusInactive} {
		assert.False(t, s.Manual(), string(s))
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusActive.Valid())
	assert.False(t, Status("ended").Valid())
}
