package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gitsunil577/SafeHer-Backend/internal/config"
)

// SweepStore is the slice of the alert store the sweeper needs. Both
// queries are idempotent, so an interrupted sweep is safe to re-run.
type SweepStore interface {
	ExpireStale(ctx context.Context, olderThan time.Time) (int64, error)
	DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error)
}

// Sweeper ages out stale alerts on a fixed interval: open alerts past the
// expiry age flip to expired, and anything past the retention window is
// deleted for good.
type Sweeper struct {
	alerts SweepStore
	logger *slog.Logger
	cfg    config.SweeperConfig
}

func NewSweeper(alerts SweepStore, logger *slog.Logger, cfg config.SweeperConfig) *Sweeper {
	return &Sweeper{alerts: alerts, logger: logger, cfg: cfg}
}

// Run blocks until ctx is cancelled. One sweep fires immediately at
// startup, then one per interval. A failed sweep is logged and retried on
// the next tick; it never takes the process down.
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("sweeper STARTED",
		slog.Duration("interval", s.cfg.Interval),
		slog.Duration("expire_age", s.cfg.ExpireAge),
		slog.Duration("retention", s.cfg.Retention),
	)

	s.sweep(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	now := time.Now().UTC()

	expired, err := s.alerts.ExpireStale(ctx, now.Add(-s.cfg.ExpireAge))
	if err != nil {
		s.logger.Error("expire sweep failed", slog.Any("error", err))
	} else if expired > 0 {
		s.logger.Info("stale alerts expired", slog.Int64("count", expired))
	}

	deleted, err := s.alerts.DeleteOlderThan(ctx, now.Add(-s.cfg.Retention))
	if err != nil {
		s.logger.Error("retention sweep failed", slog.Any("error", err))
	} else if deleted > 0 {
		s.logger.Info("aged alerts deleted", slog.Int64("count", deleted))
	}
}
