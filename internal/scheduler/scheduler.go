package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"budget-planner/internal/core/port"
)

// JobRunner is the slice of the budget engine the scheduler drives.
// port.BudgetUseCase satisfies it.
type JobRunner interface {
	Reconcile(ctx context.Context) (*port.ReconcileSummary, error)
	ResetDaily(ctx context.Context) (*port.ResetSummary, error)
	ResetMonthly(ctx context.Context) (*port.ResetSummary, error)
	MonitorBudgets(ctx context.Context) (*port.AlertSummary, error)
}

// Config holds the trigger intervals. Zero values fall back to
// defaults.
type Config struct {
	// ReconcileInterval is how often aggregates are re-derived from the
	// ledger. Default 10m.
	ReconcileInterval time.Duration
	// AlertInterval is how often brand budgets are scanned for
	// threshold warnings. Default 15m.
	AlertInterval time.Duration
	// BoundaryCheckInterval is how often the clock is inspected for a
	// day or month rollover. Default 1m.
	BoundaryCheckInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.ReconcileInterval <= 0 {
		c.ReconcileInterval = 10 * time.Minute
	}
	if c.AlertInterval <= 0 {
		c.AlertInterval = 15 * time.Minute
	}
	if c.BoundaryCheckInterval <= 0 {
		c.BoundaryCheckInterval = time.Minute
	}
	return c
}

// Scheduler triggers the periodic jobs on fixed intervals and fires the
// budget resets when the reference clock crosses a day or month
// boundary. A tick that arrives while the previous run of the same job
// is still in flight is skipped; every job is idempotent, so the next
// tick catches up.
type Scheduler struct {
	jobs  JobRunner
	clock port.Clock
	log   *slog.Logger
	cfg   Config

	reconcileBusy atomic.Bool
	alertBusy     atomic.Bool
	resetBusy     atomic.Bool
}

// New returns a scheduler. Run must be called to start it.
func New(jobs JobRunner, clock port.Clock, log *slog.Logger, cfg Config) *Scheduler {
	return &Scheduler{jobs: jobs, clock: clock, log: log, cfg: cfg.withDefaults()}
}

// Run blocks until ctx is cancelled, driving the reconcile, alert and
// boundary loops. Jobs run at most once per interval and never
// concurrently with themselves.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.loop(ctx, s.cfg.ReconcileInterval, s.runReconcile)
	}()
	go func() {
		defer wg.Done()
		s.loop(ctx, s.cfg.AlertInterval, s.runAlertScan)
	}()
	go func() {
		defer wg.Done()
		s.boundaryLoop(ctx)
	}()
	wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, interval time.Duration, run func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		run(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) runReconcile(ctx context.Context) {
	if !s.reconcileBusy.CompareAndSwap(false, true) {
		s.log.Warn("reconcile still running, skipping tick")
		return
	}
	defer s.reconcileBusy.Store(false)

	sum, err := s.jobs.Reconcile(ctx)
	if err != nil {
		s.log.Error("reconcile failed", slog.Any("error", err))
		return
	}
	s.log.Info("reconcile completed",
		slog.Int("campaigns", sum.CampaignsReconciled),
		slog.Int("brands", sum.BrandsReconciled),
		slog.Any("transitions", sum.Transitions),
		slog.Int("ledger_failures", sum.LedgerFailures),
		slog.Int("save_failures", sum.SaveFailures),
	)
}

func (s *Scheduler) runAlertScan(ctx context.Context) {
	if !s.alertBusy.CompareAndSwap(false, true) {
		s.log.Warn("alert scan still running, skipping tick")
		return
	}
	defer s.alertBusy.Store(false)

	sum, err := s.jobs.MonitorBudgets(ctx)
	if err != nil {
		s.log.Error("alert scan failed", slog.Any("error", err))
		return
	}
	s.log.Info("alert scan completed",
		slog.Int("brands_checked", sum.BrandsChecked),
		slog.Int("alerts", len(sum.Alerts)),
		slog.Int("emit_failures", sum.EmitFailures),
	)
}

// boundaryLoop watches the reference clock and fires the daily reset
// once per new day and the monthly reset once per new month. On the
// first of a month the monthly reset runs before the daily one, so the
// daily status recomputation already sees zeroed monthly counters.
func (s *Scheduler) boundaryLoop(ctx context.Context) {
	now := s.clock.Now()
	lastDay := now.YearDay() + now.Year()*1000
	lastMonth := int(now.Month()) + now.Year()*100

	ticker := time.NewTicker(s.cfg.BoundaryCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		now = s.clock.Now()
		day := now.YearDay() + now.Year()*1000
		month := int(now.Month()) + now.Year()*100
		if day == lastDay {
			continue
		}
		if !s.resetBusy.CompareAndSwap(false, true) {
			continue
		}
		if month != lastMonth {
			s.runReset("monthly", func() (*port.ResetSummary, error) { return s.jobs.ResetMonthly(ctx) })
			lastMonth = month
		}
		s.runReset("daily", func() (*port.ResetSummary, error) { return s.jobs.ResetDaily(ctx) })
		lastDay = day
		s.resetBusy.Store(false)
	}
}

func (s *Scheduler) runReset(period string, run func() (*port.ResetSummary, error)) {
	sum, err := run()
	if err != nil {
		s.log.Error("budget reset failed", slog.String("period", period), slog.Any("error", err))
		return
	}
	s.log.Info("budget reset completed",
		slog.String("period", period),
		slog.Int("brands_reset", sum.BrandsReset),
		slog.Int("campaigns_reset", sum.CampaignsReset),
		slog.Int("reactivated", sum.Reactivated),
		slog.Int("failures", sum.Failures),
	)
}
