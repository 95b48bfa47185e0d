package alert

import (
	"context"
	"log/slog"

	"budget-planner/internal/core/port"
)

// LogSink writes alerts to the structured log. It is the default sink
// when no webhook is configured.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink returns a sink logging at warn level.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit logs the alert.
func (s *LogSink) Emit(_ context.Context, a port.Alert) error {
	s.logger.Warn("budget warning",
		slog.String("kind", string(a.Kind)),
		slog.String("brand_id", a.BrandID.String()),
		slog.String("brand", a.BrandName),
		slog.Float64("percent_used", a.PercentUsed),
		slog.Int64("spend", a.Spend),
		slog.Int64("budget", a.Budget),
	)
	return nil
}
