package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo brands, campaigns and spend transactions into the
// budget-planner database.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	businessHours, _ := json.Marshal(map[string][]map[string]string{
		"monday":    {{"start": "09:00", "end": "17:00"}},
		"tuesday":   {{"start": "09:00", "end": "17:00"}},
		"wednesday": {{"start": "09:00", "end": "17:00"}},
		"thursday":  {{"start": "09:00", "end": "17:00"}},
		"friday":    {{"start": "09:00", "end": "17:00"}},
	})

	for i := 1; i <= 3; i++ {
		brandID := uuid.New()
		name := fmt.Sprintf("Brand %d", i)
		dailyBudget := int64(100000)    // 1000.00 units
		monthlyBudget := int64(2000000) // 20000.00 units
		_, err := db.Exec(ctx, `INSERT INTO brands
    (id, name, active, daily_budget, monthly_budget, daily_spend, monthly_spend, created_at, updated_at)
VALUES ($1,$2,true,$3,$4,0,0,now(),now()) ON CONFLICT (name) DO NOTHING`,
			brandID, name, dailyBudget, monthlyBudget)
		if err != nil {
			return err
		}

		for j := 1; j <= 4; j++ {
			campaignID := uuid.New()
			campaignName := fmt.Sprintf("Campaign %d-%d", i, j)
			// every other campaign runs business hours only
			enabled := j%2 == 0
			schedule := []byte(`{}`)
			if enabled {
				schedule = businessHours
			}
			_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, brand_id, name, status, daily_spend, monthly_spend, dayparting_enabled, dayparting_schedule, created_at, updated_at)
VALUES ($1,$2,$3,'active',0,0,$4,$5,now(),now()) ON CONFLICT (brand_id, name) DO NOTHING`,
				campaignID, brandID, campaignName, enabled, schedule)
			if err != nil {
				return err
			}

			// a few spend transactions spread over the current day
			for k := 0; k < 5; k++ {
				amount := int64(r.Intn(5000) + 100)
				occurredAt := time.Now().UTC().Add(-time.Duration(r.Intn(12)) * time.Hour)
				_, err = db.Exec(ctx, `INSERT INTO ad_spends
    (id, campaign_id, amount, description, occurred_at)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
					uuid.New(), campaignID, amount, "seed spend", occurredAt)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
