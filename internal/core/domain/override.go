package domain

import "time"

// CustomBudgetOverride is a locally authored, date-windowed replacement for
// the platform-computed daily budget. Overrides are created by operators
// outside this engine and read-only here. BudgetAmount is in minor units.
type CustomBudgetOverride struct {
	ID           int64
	ClientID     int64
	Platform     Platform
	BudgetAmount int64
	StartDate    time.Time
	EndDate      time.Time
	IsActive     bool
	CreatedAt    time.Time
}

// Covers reports whether the override window contains the given calendar day.
// Dates are compared at day granularity; the window is inclusive on both ends.
func (o CustomBudgetOverride) Covers(date time.Time) bool {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !o.StartDate.After(day) && !o.EndDate.Before(day)
}
