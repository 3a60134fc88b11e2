package domain

import "time"

// DailyBudgetReview is one persisted reconciliation result, keyed by
// (client, account, review date). AccountID is nil for legacy single-account
// clients created before accounts were modelled explicitly. Monetary fields
// are in integer minor units.
type DailyBudgetReview struct {
	ID                  int64
	ClientID            int64
	AccountID           *string
	AccountName         string
	Platform            Platform
	ReviewDate          time.Time
	DailyBudgetCurrent  int64
	TotalSpent          int64
	ActiveCampaignCount int
	TotalImpressions    int64
	UsingCustomBudget   bool
	CustomBudgetID      *int64
	CustomBudgetAmount  *int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CurrentReviewState mirrors the latest DailyBudgetReview per (client,
// account), denormalized so "today's numbers" reads avoid a date-range query.
type CurrentReviewState struct {
	ID                  int64
	ClientID            int64
	AccountID           *string
	AccountName         string
	Platform            Platform
	ReviewDate          time.Time
	DailyBudgetCurrent  int64
	TotalSpent          int64
	ActiveCampaignCount int
	TotalImpressions    int64
	UsingCustomBudget   bool
	CustomBudgetID      *int64
	CustomBudgetAmount  *int64
	UpdatedAt           time.Time
}
