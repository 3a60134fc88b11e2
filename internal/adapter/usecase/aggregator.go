package usecase

import (
	"context"
	"log/slog"
	"time"

	"adrecon/internal/core/domain"
)

// AdSetLookup fetches the ad sets of one campaign for the budget fallback.
type AdSetLookup func(ctx context.Context, campaignID string) ([]domain.AdSet, error)

// EffectiveDailyBudget sums the daily budgets of eligible campaigns. A
// campaign with its own positive daily budget contributes it directly;
// otherwise its eligible ad sets are fetched and their positive budgets
// summed — budget may live at either level, never guaranteed at both, and
// treating an absent campaign budget as zero under-reports. A campaign whose
// fallback also sums to zero is unbudgeted: a logged diagnostic, not an
// error. Lookup failures degrade that one campaign to unbudgeted.
func EffectiveDailyBudget(ctx context.Context, now time.Time, campaigns []domain.Campaign, adSets AdSetLookup, logger *slog.Logger) int64 {
	var total int64
	for _, c := range campaigns {
		if !c.Eligible(now) {
			continue
		}
		if c.DailyBudget > 0 {
			total += c.DailyBudget
			continue
		}

		sets, err := adSets(ctx, c.ID)
		if err != nil {
			logger.Warn("ad set lookup failed, campaign counted as unbudgeted",
				slog.String("campaign_id", c.ID),
				slog.Any("error", err),
			)
			continue
		}
		var fallback int64
		for _, s := range sets {
			if s.Eligible() && s.DailyBudget > 0 {
				fallback += s.DailyBudget
			}
		}
		if fallback == 0 {
			logger.Debug("campaign has no budget at campaign or ad set level",
				slog.String("campaign_id", c.ID),
				slog.String("campaign_name", c.Name),
			)
			continue
		}
		total += fallback
	}
	return total
}
