package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
	"adrecon/internal/monitoring"
)

// progressRefreshEvery bounds the staleness of progress visible to
// monitoring: the audit log is rewritten at least every N processed units and
// unconditionally on the final one.
const progressRefreshEvery = 5

// BatchService drives batch reconciliation: it enumerates eligible units,
// processes them sequentially inside per-unit isolation boundaries and
// maintains the audit/progress record. It implements port.BatchUseCase.
type BatchService struct {
	accounts    port.AccountRepository
	logs        port.BatchRepository
	creds       port.CredentialRepository
	rec         *Reconciler
	logger      *slog.Logger
	unitTimeout time.Duration
	now         func() time.Time

	// appCtx bounds detached processing: it outlives the trigger request but
	// is cancelled on application shutdown.
	appCtx context.Context
	wg     sync.WaitGroup
}

// NewBatchService wires the orchestrator. unitTimeout bounds each unit's
// platform and persistence calls; a hung pagination loop fails one unit, not
// the whole batch.
func NewBatchService(
	appCtx context.Context,
	accounts port.AccountRepository,
	logs port.BatchRepository,
	creds port.CredentialRepository,
	rec *Reconciler,
	unitTimeout time.Duration,
	logger *slog.Logger,
) *BatchService {
	return &BatchService{
		accounts:    accounts,
		logs:        logs,
		creds:       creds,
		rec:         rec,
		logger:      logger,
		unitTimeout: unitTimeout,
		now:         time.Now,
		appCtx:      appCtx,
	}
}

// StartBatch enumerates units, persists the initial audit record and launches
// detached processing. It returns once enumeration completes. Concurrent runs
// are not mutually excluded; overlapping snapshot writes resolve through
// upsert idempotency.
func (s *BatchService) StartBatch(ctx context.Context, origin domain.RunOrigin, executeReview bool) (*domain.BatchLog, error) {
	units, err := s.accounts.EligibleUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate eligible clients: %w", err)
	}

	now := s.now()
	batchLog := &domain.BatchLog{
		ID:            uuid.New(),
		IsAutomatic:   origin == domain.OriginScheduled,
		Status:        domain.BatchRunning,
		TotalUnits:    len(units),
		StartedAt:     now,
		LastUpdatedAt: now,
	}
	if err = s.logs.CreateLog(ctx, batchLog); err != nil {
		return nil, fmt.Errorf("create batch log: %w", err)
	}

	s.logger.Info("batch started",
		slog.String("log_id", batchLog.ID.String()),
		slog.String("origin", string(origin)),
		slog.Int("total_units", batchLog.TotalUnits),
		slog.Bool("execute_review", executeReview),
	)

	if !executeReview {
		batchLog.Status = domain.BatchCompleted
		batchLog.LastUpdatedAt = s.now()
		if err = s.logs.UpdateLog(ctx, batchLog); err != nil {
			return nil, fmt.Errorf("finalize batch log: %w", err)
		}
		started := *batchLog
		return &started, nil
	}

	// Snapshot before launching: the detached run mutates batchLog's counts
	// and status, so copying after the goroutine starts would race.
	started := *batchLog
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(s.appCtx, origin, batchLog, units)
	}()

	return &started, nil
}

// Wait blocks until in-flight batch processing finishes. Used by graceful
// shutdown.
func (s *BatchService) Wait() {
	s.wg.Wait()
}

func (s *BatchService) run(ctx context.Context, origin domain.RunOrigin, batchLog *domain.BatchLog, units []port.ReconcileUnit) {
	start := s.now()
	st := &runState{}

	creds, err := s.creds.Credentials(ctx)
	if err != nil {
		s.abort(ctx, origin, batchLog, fmt.Errorf("load platform credentials: %w", err))
		return
	}

	for i, unit := range units {
		if ctx.Err() != nil {
			s.abort(ctx, origin, batchLog, fmt.Errorf("batch cancelled: %w", ctx.Err()))
			return
		}

		err = s.runUnit(ctx, creds, unit, st)
		batchLog.ProcessedUnits++
		switch {
		case errors.Is(err, errSkipUnit):
			batchLog.SkippedCount++
			monitoring.BatchUnitsTotal.WithLabelValues("skipped").Inc()
			s.logger.Debug("unit skipped, no platform account id",
				slog.Int64("client_id", unit.Client.ID),
				slog.String("platform", string(unit.Account.Platform)),
			)
		case err != nil:
			batchLog.ErrorCount++
			monitoring.BatchUnitsTotal.WithLabelValues("error").Inc()
			s.logger.Error("unit reconciliation failed",
				slog.Int64("client_id", unit.Client.ID),
				slog.String("account_id", unit.Account.AccountID),
				slog.String("platform", string(unit.Account.Platform)),
				slog.Any("error", err),
			)
		default:
			batchLog.SuccessCount++
			monitoring.BatchUnitsTotal.WithLabelValues("success").Inc()
		}

		if (i+1)%progressRefreshEvery == 0 || i == len(units)-1 {
			batchLog.LastUpdatedAt = s.now()
			if uerr := s.logs.UpdateLog(ctx, batchLog); uerr != nil {
				s.logger.Error("progress update failed", slog.Any("error", uerr))
			}
		}
	}

	switch {
	case batchLog.ErrorCount == 0:
		batchLog.Status = domain.BatchCompleted
	case batchLog.ErrorCount == batchLog.TotalUnits:
		batchLog.Status = domain.BatchError
	default:
		batchLog.Status = domain.BatchPartialSuccess
	}
	// A cancellation arriving between the last unit and this point must not
	// strand the run in the running state, so the terminal writes run on a
	// context detached from cancellation, like abort's.
	finalCtx := context.WithoutCancel(ctx)
	batchLog.LastUpdatedAt = s.now()
	if err = s.logs.UpdateLog(finalCtx, batchLog); err != nil {
		s.logger.Error("final batch log update failed", slog.Any("error", err))
	}

	if batchLog.SuccessCount > 0 {
		if err = s.logs.SetLastSuccessfulBatch(finalCtx, s.now()); err != nil {
			s.logger.Error("last successful batch update failed", slog.Any("error", err))
		}
	}

	monitoring.BatchRunsTotal.WithLabelValues(string(origin), string(batchLog.Status)).Inc()
	monitoring.BatchDuration.Observe(s.now().Sub(start).Seconds())
	s.logger.Info("batch finished",
		slog.String("log_id", batchLog.ID.String()),
		slog.String("status", string(batchLog.Status)),
		slog.Int("processed", batchLog.ProcessedUnits),
		slog.Int("succeeded", batchLog.SuccessCount),
		slog.Int("failed", batchLog.ErrorCount),
		slog.Int("skipped", batchLog.SkippedCount),
	)
}

// runUnit is the per-unit isolation boundary: panics and errors stay inside.
func (s *BatchService) runUnit(ctx context.Context, creds domain.PlatformCredentials, unit port.ReconcileUnit, st *runState) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unit panicked: %v", r)
		}
	}()

	if s.unitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.unitTimeout)
		defer cancel()
	}
	return s.rec.Reconcile(ctx, creds, unit, st)
}

// abort marks the run failed by an error outside the per-unit boundary.
// Final writes use a context detached from cancellation so a shutdown still
// leaves a terminal audit record.
func (s *BatchService) abort(ctx context.Context, origin domain.RunOrigin, batchLog *domain.BatchLog, cause error) {
	s.logger.Error("batch aborted", slog.String("log_id", batchLog.ID.String()), slog.Any("error", cause))
	batchLog.Status = domain.BatchError
	batchLog.ErrorMessage = cause.Error()
	batchLog.LastUpdatedAt = s.now()
	if err := s.logs.UpdateLog(context.WithoutCancel(ctx), batchLog); err != nil {
		s.logger.Error("abort batch log update failed", slog.Any("error", err))
	}
	monitoring.BatchRunsTotal.WithLabelValues(string(origin), string(domain.BatchError)).Inc()
}
