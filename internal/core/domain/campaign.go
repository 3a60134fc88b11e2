package domain

import "time"

// StatusActive is the eligibility status reported by the Meta-style platform
// for both campaigns and ad sets.
const StatusActive = "ACTIVE"

// Campaign is a platform-sourced campaign record. It is transient: fetched,
// consumed within one reconciliation pass and never persisted as-is.
// Budgets are stored in integer minor units (e.g. cents).
type Campaign struct {
	ID              string
	Name            string
	Status          string
	EffectiveStatus string
	DailyBudget     int64
	EndTime         *time.Time
}

// Eligible reports whether the campaign counts toward the effective daily
// budget: both statuses active and end time absent or in the future.
func (c Campaign) Eligible(now time.Time) bool {
	if c.Status != StatusActive || c.EffectiveStatus != StatusActive {
		return false
	}
	if c.EndTime != nil && !c.EndTime.After(now) {
		return false
	}
	return true
}

// AdSet is a platform-sourced child of a campaign. Ad sets are only fetched
// when the parent campaign carries no usable daily budget of its own.
type AdSet struct {
	ID              string
	CampaignID      string
	Name            string
	Status          string
	EffectiveStatus string
	DailyBudget     int64
}

// Eligible applies the same status predicate as campaigns.
func (a AdSet) Eligible() bool {
	return a.Status == StatusActive && a.EffectiveStatus == StatusActive
}
