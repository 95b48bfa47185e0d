package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budget-planner/internal/core/domain"
)

func exhaustDaily(f *fixture, b *domain.Brand, c *domain.Campaign) {
	brand := f.repo.brands[b.ID]
	brand.DailySpend = brand.DailyBudget
	f.repo.brands[b.ID] = brand
	campaign := f.repo.campaigns[c.ID]
	campaign.DailySpend = brand.DailyBudget
	campaign.Status = domain.StatusBudgetExceeded
	f.repo.campaigns[c.ID] = campaign
}

func TestResetDailyZeroesCountersAndReactivates(t *testing.T) {
	f := newFixture(t)
	b := f.addBrand("Acme", 1000, 10000)
	c := f.addCampaign(b, "One")
	exhaustDaily(f, b, c)

	sum, err := f.uc.ResetDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "daily", sum.Period)
	assert.Equal(t, 1, sum.BrandsReset)
	assert.Equal(t, 1, sum.CampaignsReset)
	assert.Equal(t, 1, sum.Reactivated)

	assert.Equal(t, int64(0), f.repo.brand(b.ID).DailySpend)
	assert.Equal(t, int64(0), f.repo.campaign(c.ID).DailySpend)
	assert.Equal(t, domain.StatusActive, f.repo.campaign(c.ID).Status)
}

// Monthly spend is untouched by the daily reset; a campaign blocked on
// the monthly budget stays blocked.
func TestResetDailyKeepsMonthlyExhaustion(t *testing.T) {
	f := newFixture(t)
	b := f.addBrand("Acme", 1000, 10000)
	c := f.addCampaign(b, "One")
	exhaustDaily(f, b, c)
	brand := f.repo.brands[b.ID]
	brand.MonthlySpend = brand.MonthlyBudget
	f.repo.brands[b.ID] = brand

	sum, err := f.uc.ResetDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Reactivated)
	assert.Equal(t, domain.StatusBudgetExceeded, f.repo.campaign(c.ID).Status)
	assert.Equal(t, b.MonthlyBudget, f.repo.brand(b.ID).MonthlySpend)
}

func TestResetMonthlyZeroesMonthlyOnly(t *testing.T) {
	f := newFixture(t)
	b := f.addBrand("Acme", 1000, 10000)
	f.addCampaign(b, "One")
	brand := f.repo.brands[b.ID]
	brand.DailySpend = 600
	brand.MonthlySpend = 9000
	f.repo.brands[b.ID] = brand

	sum, err := f.uc.ResetMonthly(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "monthly", sum.Period)
	assert.Equal(t, int64(0), f.repo.brand(b.ID).MonthlySpend)
	assert.Equal(t, int64(600), f.repo.brand(b.ID).DailySpend)
}

func TestResetDailyIdempotent(t *testing.T) {
	f := newFixture(t)
	b := f.addBrand("Acme", 1000, 10000)
	c := f.addCampaign(b, "One")
	exhaustDaily(f, b, c)

	_, err := f.uc.ResetDaily(context.Background())
	require.NoError(t, err)
	brandAfterFirst := f.repo.brand(b.ID)
	campaignAfterFirst := f.repo.campaign(c.ID)

	second, err := f.uc.ResetDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Reactivated, "second run has nothing to relieve")
	assert.Equal(t, brandAfterFirst, f.repo.brand(b.ID))
	assert.Equal(t, campaignAfterFirst, f.repo.campaign(c.ID))
}

// A dayparted campaign relieved from budget exhaustion outside its
// window lands in dayparting_paused, not active, and does not count as
// reactivated.
func TestResetDailyRespectsDayparting(t *testing.T) {
	f := newFixture(t)
	f.clock.Set(mondayAt(3, 0))
	b := f.addBrand("Acme", 1000, 10000)
	c := f.addCampaign(b, "Night")
	campaign := f.repo.campaigns[c.ID]
	campaign.DaypartingEnabled = true
	campaign.DaypartingSchedule = domain.DaypartingSchedule{"monday": {{Start: "09:00", End: "17:00"}}}
	f.repo.campaigns[c.ID] = campaign
	exhaustDaily(f, b, c)

	sum, err := f.uc.ResetDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Reactivated)
	assert.Equal(t, domain.StatusDaypartingPaused, f.repo.campaign(c.ID).Status)
}

func TestResetDailyIsolatesSaveFailures(t *testing.T) {
	f := newFixture(t)
	b := f.addBrand("Acme", 1000, 10000)
	broken := f.addCampaign(b, "Broken")
	ok := f.addCampaign(b, "Works")
	f.repo.saveCampaignErr[broken.ID] = context.DeadlineExceeded

	campaign := f.repo.campaigns[ok.ID]
	campaign.DailySpend = 123
	f.repo.campaigns[ok.ID] = campaign

	sum, err := f.uc.ResetDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.CampaignsReset)
	assert.Equal(t, 1, sum.Failures)
	assert.Equal(t, int64(0), f.repo.campaign(ok.ID).DailySpend)
}
