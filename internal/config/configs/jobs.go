package configs

import "time"

// Jobs configures the periodic job triggers and the budget warning
// threshold. Intervals mirror the reference deployment: reconcile
// every 10 minutes, alert scan every 15, boundary check every minute.
type Jobs struct {
	// ReconcileInterval is how often aggregates are re-derived from the
	// spend ledger.
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL" envDefault:"10m"`
	// AlertInterval is how often brand budgets are scanned for
	// threshold warnings.
	AlertInterval time.Duration `env:"ALERT_INTERVAL" envDefault:"15m"`
	// BoundaryCheckInterval is how often the clock is inspected for day
	// and month rollovers that trigger budget resets.
	BoundaryCheckInterval time.Duration `env:"BOUNDARY_CHECK_INTERVAL" envDefault:"1m"`
	// AlertThresholdPercent is the spend/budget percentage at which
	// warnings start.
	AlertThresholdPercent int64 `env:"ALERT_THRESHOLD_PERCENT" envDefault:"90"`
	// Workers bounds per-entity parallelism inside a job run.
	Workers int `env:"WORKERS" envDefault:"8"`
}

// Alerts configures outbound alert delivery. When WebhookURL is empty
// alerts go to the structured log only.
type Alerts struct {
	// WebhookURL receives alert events as JSON POSTs.
	WebhookURL string `env:"WEBHOOK_URL"`
	// WebhookSecret, when set, is sent in the X-Webhook-Secret header.
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}
