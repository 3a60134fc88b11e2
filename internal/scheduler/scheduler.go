package scheduler

import (
	"context"
	"log/slog"
	"time"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

// Scheduler triggers batch reconciliation on a fixed interval. It calls the
// same entry point as the manual HTTP trigger; only the recorded origin
// differs.
type Scheduler struct {
	batch    port.BatchUseCase
	interval time.Duration
	logger   *slog.Logger
}

// New returns a scheduler firing every interval. An interval of zero
// disables scheduling.
func New(batch port.BatchUseCase, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{batch: batch, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, starting a batch on every tick. A
// failed start is logged and the next tick tries again; overlapping runs are
// not excluded here (snapshot upserts are idempotent).
func (s *Scheduler) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("batch scheduler disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.logger.Info("batch scheduler started", slog.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("batch scheduler stopped")
			return
		case <-ticker.C:
			log, err := s.batch.StartBatch(ctx, domain.OriginScheduled, true)
			if err != nil {
				s.logger.Error("scheduled batch start failed", slog.Any("error", err))
				continue
			}
			s.logger.Info("scheduled batch started",
				slog.String("log_id", log.ID.String()),
				slog.Int("total_units", log.TotalUnits),
			)
		}
	}
}
