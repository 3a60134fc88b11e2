package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
	"adrecon/internal/monitoring"
)

// errSkipUnit marks a unit that cannot be reconciled because its account has
// no configured platform identifier. Skips are counted separately from
// errors by the orchestrator.
var errSkipUnit = errors.New("unit skipped")

// runState carries per-run flags shared across units of one batch. A token
// failure on the Google path disables that platform for the remainder of the
// run so the token endpoint is not hammered once per unit.
type runState struct {
	googleErr error
}

// Reconciler executes one reconciliation unit: fetch platform activity,
// compute the effective daily budget, resolve a manual override and persist
// the snapshot pair.
type Reconciler struct {
	fetchers  map[domain.Platform]port.ActivityFetcher
	overrides port.OverrideRepository
	reviews   port.ReviewRepository
	accounts  port.AccountRepository
	loc       *time.Location
	logger    *slog.Logger
	now       func() time.Time
}

// NewReconciler wires the per-unit pipeline. loc is the fixed civil timezone
// used to compute "today": platform spend is attributed by the advertiser's
// local calendar day, and using the runtime's zone misattributes late-night
// spend to the adjacent day.
func NewReconciler(
	fetchers map[domain.Platform]port.ActivityFetcher,
	overrides port.OverrideRepository,
	reviews port.ReviewRepository,
	accounts port.AccountRepository,
	loc *time.Location,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		fetchers:  fetchers,
		overrides: overrides,
		reviews:   reviews,
		accounts:  accounts,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}
}

// today returns the current civil date in the reconciliation timezone,
// normalized to midnight UTC for storage.
func (r *Reconciler) today() time.Time {
	y, m, d := r.now().In(r.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Reconcile runs the fetch→aggregate→override→persist pipeline for one unit.
// Platform API failures are demoted to a zeroed result plus a logged error;
// persistence failures propagate so the orchestrator counts the unit as
// failed.
func (r *Reconciler) Reconcile(ctx context.Context, creds domain.PlatformCredentials, unit port.ReconcileUnit, st *runState) error {
	acct := unit.Account
	if acct.AccountID == "" {
		return errSkipUnit
	}
	fetcher, ok := r.fetchers[acct.Platform]
	if !ok {
		return errSkipUnit
	}
	if acct.Platform == domain.PlatformGoogle && st.googleErr != nil {
		return fmt.Errorf("google path disabled for this run: %w", st.googleErr)
	}

	reviewDate := r.today()
	window := port.DateWindow{Since: reviewDate, Until: reviewDate}

	activity, err := fetcher.FetchAccountActivity(ctx, acct.AccountID, creds, window)
	if err != nil {
		if errors.Is(err, port.ErrRefreshFailed) || errors.Is(err, port.ErrTokenConfigMissing) {
			st.googleErr = err
			return err
		}
		// A single account's platform failure is isolated: proceed with a
		// zeroed result so the snapshot still records the day.
		monitoring.PlatformFetchErrorsTotal.WithLabelValues(string(acct.Platform)).Inc()
		r.logger.Error("platform fetch failed, recording zeroed activity",
			slog.Int64("client_id", unit.Client.ID),
			slog.String("account_id", acct.AccountID),
			slog.String("platform", string(acct.Platform)),
			slog.Any("error", err),
		)
		activity = &port.AccountActivity{}
	}

	platformBudget := EffectiveDailyBudget(ctx, r.now().In(r.loc), activity.Campaigns, func(ctx context.Context, campaignID string) ([]domain.AdSet, error) {
		return fetcher.AdSets(ctx, campaignID, creds)
	}, r.logger)

	override, err := r.overrides.ActiveOverride(ctx, unit.Client.ID, acct.Platform, reviewDate)
	if err != nil {
		return fmt.Errorf("resolve budget override: %w", err)
	}

	accountName := acct.AccountName
	if activity.AccountName != "" && activity.AccountName != acct.AccountName {
		accountName = activity.AccountName
		if err = r.accounts.UpdateAccountName(ctx, acct.ID, accountName); err != nil {
			r.logger.Warn("account name update failed",
				slog.Int64("client_id", unit.Client.ID),
				slog.String("account_id", acct.AccountID),
				slog.Any("error", err),
			)
		}
	}

	accountID := &acct.AccountID
	review := &domain.DailyBudgetReview{
		ClientID:            unit.Client.ID,
		AccountID:           accountID,
		AccountName:         accountName,
		Platform:            acct.Platform,
		ReviewDate:          reviewDate,
		DailyBudgetCurrent:  platformBudget,
		TotalSpent:          activity.TotalCostMinorUnits,
		ActiveCampaignCount: activity.ActiveCampaignCount,
		TotalImpressions:    activity.TotalImpressions,
	}
	if override != nil {
		// The override supersedes the platform-computed budget; spend stays
		// platform-reported truth.
		review.DailyBudgetCurrent = override.BudgetAmount
		review.UsingCustomBudget = true
		review.CustomBudgetID = &override.ID
		review.CustomBudgetAmount = &override.BudgetAmount
		r.logger.Debug("custom budget override applied",
			slog.Int64("client_id", unit.Client.ID),
			slog.Int64("override_id", override.ID),
			slog.Int64("platform_budget", platformBudget),
			slog.Int64("override_budget", override.BudgetAmount),
		)
	}

	if err = r.reviews.UpsertReview(ctx, review); err != nil {
		return fmt.Errorf("persist daily review: %w", err)
	}

	state := &domain.CurrentReviewState{
		ClientID:            review.ClientID,
		AccountID:           review.AccountID,
		AccountName:         review.AccountName,
		Platform:            review.Platform,
		ReviewDate:          review.ReviewDate,
		DailyBudgetCurrent:  review.DailyBudgetCurrent,
		TotalSpent:          review.TotalSpent,
		ActiveCampaignCount: review.ActiveCampaignCount,
		TotalImpressions:    review.TotalImpressions,
		UsingCustomBudget:   review.UsingCustomBudget,
		CustomBudgetID:      review.CustomBudgetID,
		CustomBudgetAmount:  review.CustomBudgetAmount,
	}
	if err = r.reviews.UpsertCurrentState(ctx, state); err != nil {
		return fmt.Errorf("persist current review state: %w", err)
	}
	return nil
}
