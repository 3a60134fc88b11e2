package port

import (
	"context"
	"time"

	"adrecon/internal/core/domain"
)

// DateWindow bounds platform insight queries to a civil-date range in the
// reconciliation timezone. Since and Until are inclusive calendar days.
type DateWindow struct {
	Since time.Time
	Until time.Time
}

// AccountActivity is the raw product of one platform fetch for one account.
// Campaigns carry their platform-reported daily budgets so the aggregator can
// apply the campaign-to-ad-set fallback; cost and impressions are account
// totals over the requested window.
type AccountActivity struct {
	AccountName         string
	ActiveCampaignCount int
	TotalCostMinorUnits int64
	TotalImpressions    int64
	Campaigns           []domain.Campaign
}

// ActivityFetcher retrieves campaign and insight data from one advertising
// platform. Implementations handle pagination and platform status semantics;
// they return an error on network or non-2xx failures and leave the isolation
// policy (zeroed result, batch continues) to the caller.
type ActivityFetcher interface {
	FetchAccountActivity(ctx context.Context, accountID string, creds domain.PlatformCredentials, window DateWindow) (*AccountActivity, error)
	// AdSets returns the ad sets of one campaign, used as the budget fallback
	// when the campaign has no usable daily budget of its own. Platforms
	// without an ad-set budget level return an empty slice.
	AdSets(ctx context.Context, campaignID string, creds domain.PlatformCredentials) ([]domain.AdSet, error)
}
