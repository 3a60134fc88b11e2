package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adrecon/internal/core/domain"
)

// OverrideRepository resolves manual budget overrides. The engine never
// writes overrides; operators manage them elsewhere.
type OverrideRepository struct {
	pool *pgxpool.Pool
}

// NewOverrideRepository returns a new repository instance.
func NewOverrideRepository(pool *pgxpool.Pool) *OverrideRepository {
	return &OverrideRepository{pool: pool}
}

// ActiveOverride returns the active override whose window covers date for
// (client, platform), or (nil, nil) when none applies. When overlapping
// active overrides exist the most recently created wins; the data layer
// does not enforce the at-most-one invariant.
func (r *OverrideRepository) ActiveOverride(ctx context.Context, clientID int64, platform domain.Platform, date time.Time) (*domain.CustomBudgetOverride, error) {
	var o domain.CustomBudgetOverride
	err := r.pool.QueryRow(ctx, `SELECT id, client_id, platform, budget_amount, start_date, end_date, is_active, created_at
        FROM custom_budget_overrides
        WHERE client_id = $1 AND platform = $2 AND is_active
          AND start_date <= $3 AND end_date >= $3
        ORDER BY created_at DESC
        LIMIT 1`,
		clientID, platform, date,
	).Scan(&o.ID, &o.ClientID, &o.Platform, &o.BudgetAmount, &o.StartDate, &o.EndDate, &o.IsActive, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
