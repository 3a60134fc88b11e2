package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adrecon/internal/core/domain"
)

// BatchRepository persists batch audit/progress records. Overlapping runs
// write independent rows; the most recent write per row is authoritative.
type BatchRepository struct {
	pool *pgxpool.Pool
}

// NewBatchRepository returns a new repository instance.
func NewBatchRepository(pool *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{pool: pool}
}

// CreateLog inserts the initial audit record for a run.
func (r *BatchRepository) CreateLog(ctx context.Context, log *domain.BatchLog) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO batch_logs
        (id, is_automatic, status, total_units, processed_units, success_count,
         error_count, skipped_count, error_message, started_at, last_updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		log.ID, log.IsAutomatic, log.Status, log.TotalUnits, log.ProcessedUnits, log.SuccessCount,
		log.ErrorCount, log.SkippedCount, log.ErrorMessage, log.StartedAt, log.LastUpdatedAt)
	return err
}

// UpdateLog rewrites the mutable fields of a run's audit record.
func (r *BatchRepository) UpdateLog(ctx context.Context, log *domain.BatchLog) error {
	_, err := r.pool.Exec(ctx, `UPDATE batch_logs SET
        status = $1, processed_units = $2, success_count = $3, error_count = $4,
        skipped_count = $5, error_message = $6, last_updated_at = $7
        WHERE id = $8`,
		log.Status, log.ProcessedUnits, log.SuccessCount, log.ErrorCount,
		log.SkippedCount, log.ErrorMessage, log.LastUpdatedAt, log.ID)
	return err
}

// LatestLog returns the most recently started run, or (nil, nil) when no run
// has ever happened.
func (r *BatchRepository) LatestLog(ctx context.Context) (*domain.BatchLog, error) {
	var log domain.BatchLog
	err := r.pool.QueryRow(ctx, `SELECT id, is_automatic, status, total_units, processed_units,
        success_count, error_count, skipped_count, error_message, started_at, last_updated_at
        FROM batch_logs ORDER BY started_at DESC LIMIT 1`,
	).Scan(&log.ID, &log.IsAutomatic, &log.Status, &log.TotalUnits, &log.ProcessedUnits,
		&log.SuccessCount, &log.ErrorCount, &log.SkippedCount, &log.ErrorMessage, &log.StartedAt, &log.LastUpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// ListLogs returns up to limit runs, newest first.
func (r *BatchRepository) ListLogs(ctx context.Context, limit int) ([]domain.BatchLog, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, is_automatic, status, total_units, processed_units,
        success_count, error_count, skipped_count, error_message, started_at, last_updated_at
        FROM batch_logs ORDER BY started_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BatchLog, error) {
		var log domain.BatchLog
		err := row.Scan(&log.ID, &log.IsAutomatic, &log.Status, &log.TotalUnits, &log.ProcessedUnits,
			&log.SuccessCount, &log.ErrorCount, &log.SkippedCount, &log.ErrorMessage, &log.StartedAt, &log.LastUpdatedAt)
		return log, err
	})
}

// SetLastSuccessfulBatch records the freshness timestamp, independent of the
// audit log.
func (r *BatchRepository) SetLastSuccessfulBatch(ctx context.Context, at time.Time) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO system_state (id, last_successful_batch_at) VALUES (1, $1)
        ON CONFLICT (id) DO UPDATE SET last_successful_batch_at = EXCLUDED.last_successful_batch_at`, at)
	return err
}
