package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adrecon/internal/core/domain"
)

// ReviewRepository persists daily budget reviews and the denormalized
// current state using pgxpool. Upserts are lookup-then-write inside a
// transaction so repeated reconciliations of the same (client, account, day)
// update in place: last write wins, creation timestamp preserved.
type ReviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository returns a new repository instance.
func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

// UpsertReview writes one dated review under its natural key.
func (r *ReviewRepository) UpsertReview(ctx context.Context, review *domain.DailyBudgetReview) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin review upsert: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var (
		existingID int64
		createdAt  time.Time
	)
	err = tx.QueryRow(ctx, `SELECT id, created_at FROM daily_budget_reviews
        WHERE client_id = $1 AND account_id IS NOT DISTINCT FROM $2 AND review_date = $3
        FOR UPDATE`,
		review.ClientID, review.AccountID, review.ReviewDate,
	).Scan(&existingID, &createdAt)

	now := time.Now().UTC()
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(ctx, `INSERT INTO daily_budget_reviews
            (client_id, account_id, account_name, platform, review_date,
             daily_budget_current, total_spent, active_campaign_count, total_impressions,
             using_custom_budget, custom_budget_id, custom_budget_amount, created_at, updated_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$13)
            RETURNING id`,
			review.ClientID, review.AccountID, review.AccountName, review.Platform, review.ReviewDate,
			review.DailyBudgetCurrent, review.TotalSpent, review.ActiveCampaignCount, review.TotalImpressions,
			review.UsingCustomBudget, review.CustomBudgetID, review.CustomBudgetAmount, now,
		).Scan(&review.ID)
		if err != nil {
			return fmt.Errorf("insert review: %w", err)
		}
		review.CreatedAt = now
	case err != nil:
		return fmt.Errorf("lookup review: %w", err)
	default:
		_, err = tx.Exec(ctx, `UPDATE daily_budget_reviews SET
            account_name = $1, platform = $2, daily_budget_current = $3, total_spent = $4,
            active_campaign_count = $5, total_impressions = $6, using_custom_budget = $7,
            custom_budget_id = $8, custom_budget_amount = $9, updated_at = $10
            WHERE id = $11`,
			review.AccountName, review.Platform, review.DailyBudgetCurrent, review.TotalSpent,
			review.ActiveCampaignCount, review.TotalImpressions, review.UsingCustomBudget,
			review.CustomBudgetID, review.CustomBudgetAmount, now, existingID,
		)
		if err != nil {
			return fmt.Errorf("update review: %w", err)
		}
		review.ID = existingID
		review.CreatedAt = createdAt
	}
	review.UpdatedAt = now
	return nil
}

// UpsertCurrentState mirrors the latest review per (client, account) for
// fast "today" reads.
func (r *ReviewRepository) UpsertCurrentState(ctx context.Context, state *domain.CurrentReviewState) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin state upsert: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var existingID int64
	err = tx.QueryRow(ctx, `SELECT id FROM current_review_state
        WHERE client_id = $1 AND account_id IS NOT DISTINCT FROM $2
        FOR UPDATE`,
		state.ClientID, state.AccountID,
	).Scan(&existingID)

	now := time.Now().UTC()
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(ctx, `INSERT INTO current_review_state
            (client_id, account_id, account_name, platform, review_date,
             daily_budget_current, total_spent, active_campaign_count, total_impressions,
             using_custom_budget, custom_budget_id, custom_budget_amount, updated_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
            RETURNING id`,
			state.ClientID, state.AccountID, state.AccountName, state.Platform, state.ReviewDate,
			state.DailyBudgetCurrent, state.TotalSpent, state.ActiveCampaignCount, state.TotalImpressions,
			state.UsingCustomBudget, state.CustomBudgetID, state.CustomBudgetAmount, now,
		).Scan(&state.ID)
		if err != nil {
			return fmt.Errorf("insert current state: %w", err)
		}
	case err != nil:
		return fmt.Errorf("lookup current state: %w", err)
	default:
		_, err = tx.Exec(ctx, `UPDATE current_review_state SET
            account_name = $1, platform = $2, review_date = $3, daily_budget_current = $4,
            total_spent = $5, active_campaign_count = $6, total_impressions = $7,
            using_custom_budget = $8, custom_budget_id = $9, custom_budget_amount = $10,
            updated_at = $11
            WHERE id = $12`,
			state.AccountName, state.Platform, state.ReviewDate, state.DailyBudgetCurrent,
			state.TotalSpent, state.ActiveCampaignCount, state.TotalImpressions,
			state.UsingCustomBudget, state.CustomBudgetID, state.CustomBudgetAmount, now, existingID,
		)
		if err != nil {
			return fmt.Errorf("update current state: %w", err)
		}
		state.ID = existingID
	}
	state.UpdatedAt = now
	return nil
}

// ListCurrentStates returns the denormalized current state for every
// reconciled (client, account).
func (r *ReviewRepository) ListCurrentStates(ctx context.Context) ([]domain.CurrentReviewState, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, client_id, account_id, account_name, platform,
        review_date, daily_budget_current, total_spent, active_campaign_count, total_impressions,
        using_custom_budget, custom_budget_id, custom_budget_amount, updated_at
        FROM current_review_state ORDER BY client_id, platform`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CurrentReviewState, error) {
		var s domain.CurrentReviewState
		err := row.Scan(
			&s.ID, &s.ClientID, &s.AccountID, &s.AccountName, &s.Platform,
			&s.ReviewDate, &s.DailyBudgetCurrent, &s.TotalSpent, &s.ActiveCampaignCount, &s.TotalImpressions,
			&s.UsingCustomBudget, &s.CustomBudgetID, &s.CustomBudgetAmount, &s.UpdatedAt,
		)
		return s, err
	})
}

// ListReviews returns a client's dated reviews within [from, to].
func (r *ReviewRepository) ListReviews(ctx context.Context, clientID int64, from, to time.Time) ([]domain.DailyBudgetReview, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, client_id, account_id, account_name, platform,
        review_date, daily_budget_current, total_spent, active_campaign_count, total_impressions,
        using_custom_budget, custom_budget_id, custom_budget_amount, created_at, updated_at
        FROM daily_budget_reviews
        WHERE client_id = $1 AND review_date >= $2 AND review_date <= $3
        ORDER BY review_date DESC, platform`,
		clientID, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyBudgetReview, error) {
		var rev domain.DailyBudgetReview
		err := row.Scan(
			&rev.ID, &rev.ClientID, &rev.AccountID, &rev.AccountName, &rev.Platform,
			&rev.ReviewDate, &rev.DailyBudgetCurrent, &rev.TotalSpent, &rev.ActiveCampaignCount, &rev.TotalImpressions,
			&rev.UsingCustomBudget, &rev.CustomBudgetID, &rev.CustomBudgetAmount, &rev.CreatedAt, &rev.UpdatedAt,
		)
		return rev, err
	})
}
