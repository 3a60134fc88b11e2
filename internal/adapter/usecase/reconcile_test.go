package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
	"adrecon/internal/core/port/mocks"
)

func metaUnit(clientID int64, accountID string) port.ReconcileUnit {
	return port.ReconcileUnit{
		Client: domain.Client{ID: clientID, Name: "client", IsActive: true},
		Account: domain.AdvertisingAccount{
			ID:          clientID * 10,
			ClientID:    clientID,
			Platform:    domain.PlatformMeta,
			AccountID:   accountID,
			AccountName: "acc",
			IsPrimary:   true,
			IsActive:    true,
		},
	}
}

func newTestReconciler(
	fetchers map[domain.Platform]port.ActivityFetcher,
	overrides port.OverrideRepository,
	reviews port.ReviewRepository,
	accounts port.AccountRepository,
) *Reconciler {
	return NewReconciler(fetchers, overrides, reviews, accounts, time.UTC, discardLogger())
}

// TestReconcileOverridePrecedence ensures an active override replaces the
// platform-computed budget while platform-reported spend stays untouched.
func TestReconcileOverridePrecedence(t *testing.T) {
	fetcher := mocks.NewMockActivityFetcher(t)
	overrides := mocks.NewMockOverrideRepository(t)
	reviews := mocks.NewMockReviewRepository(t)
	accounts := mocks.NewMockAccountRepository(t)

	fetcher.EXPECT().
		FetchAccountActivity(mock.Anything, "acct-1", mock.Anything, mock.Anything).
		Return(&port.AccountActivity{
			ActiveCampaignCount: 1,
			TotalCostMinorUnits: 12345,
			TotalImpressions:    777,
			Campaigns:           []domain.Campaign{activeCampaign("c1", 300)},
		}, nil)

	overrideID := int64(42)
	overrides.EXPECT().
		ActiveOverride(mock.Anything, int64(1), domain.PlatformMeta, mock.Anything).
		Return(&domain.CustomBudgetOverride{
			ID:           overrideID,
			ClientID:     1,
			Platform:     domain.PlatformMeta,
			BudgetAmount: 500,
			IsActive:     true,
		}, nil)

	var captured *domain.DailyBudgetReview
	reviews.EXPECT().
		UpsertReview(mock.Anything, mock.AnythingOfType("*domain.DailyBudgetReview")).
		Run(func(ctx context.Context, review *domain.DailyBudgetReview) {
			captured = review
		}).
		Return(nil)
	reviews.EXPECT().
		UpsertCurrentState(mock.Anything, mock.AnythingOfType("*domain.CurrentReviewState")).
		Return(nil)

	rec := newTestReconciler(map[domain.Platform]port.ActivityFetcher{domain.PlatformMeta: fetcher}, overrides, reviews, accounts)

	if err := rec.Reconcile(context.Background(), domain.PlatformCredentials{MetaAccessToken: "t"}, metaUnit(1, "acct-1"), &runState{}); err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}

	if captured == nil {
		t.Fatal("no review persisted")
	}
	if captured.DailyBudgetCurrent != 500 {
		t.Fatalf("budget: got %d, want override 500", captured.DailyBudgetCurrent)
	}
	if !captured.UsingCustomBudget {
		t.Fatal("expected UsingCustomBudget")
	}
	if captured.CustomBudgetID == nil || *captured.CustomBudgetID != overrideID {
		t.Fatalf("custom budget id: got %v, want %d", captured.CustomBudgetID, overrideID)
	}
	if captured.CustomBudgetAmount == nil || *captured.CustomBudgetAmount != 500 {
		t.Fatalf("custom budget amount: got %v, want 500", captured.CustomBudgetAmount)
	}
	// Spend is platform truth, never overridden.
	if captured.TotalSpent != 12345 {
		t.Fatalf("total spent: got %d, want 12345", captured.TotalSpent)
	}
	if captured.TotalImpressions != 777 {
		t.Fatalf("impressions: got %d, want 777", captured.TotalImpressions)
	}
}

// TestReconcileFetchFailureZeroed ensures a platform API failure still
// produces a zeroed snapshot for the day instead of failing the unit.
func TestReconcileFetchFailureZeroed(t *testing.T) {
	fetcher := mocks.NewMockActivityFetcher(t)
	overrides := mocks.NewMockOverrideRepository(t)
	reviews := mocks.NewMockReviewRepository(t)
	accounts := mocks.NewMockAccountRepository(t)

	fetcher.EXPECT().
		FetchAccountActivity(mock.Anything, "acct-2", mock.Anything, mock.Anything).
		Return(nil, errors.New("graph api returned 500"))
	overrides.EXPECT().
		ActiveOverride(mock.Anything, int64(2), domain.PlatformMeta, mock.Anything).
		Return(nil, nil)

	var captured *domain.DailyBudgetReview
	reviews.EXPECT().
		UpsertReview(mock.Anything, mock.AnythingOfType("*domain.DailyBudgetReview")).
		Run(func(ctx context.Context, review *domain.DailyBudgetReview) {
			captured = review
		}).
		Return(nil)
	reviews.EXPECT().
		UpsertCurrentState(mock.Anything, mock.AnythingOfType("*domain.CurrentReviewState")).
		Return(nil)

	rec := newTestReconciler(map[domain.Platform]port.ActivityFetcher{domain.PlatformMeta: fetcher}, overrides, reviews, accounts)

	if err := rec.Reconcile(context.Background(), domain.PlatformCredentials{}, metaUnit(2, "acct-2"), &runState{}); err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if captured == nil {
		t.Fatal("no review persisted")
	}
	if captured.DailyBudgetCurrent != 0 || captured.TotalSpent != 0 || captured.ActiveCampaignCount != 0 {
		t.Fatalf("expected zeroed snapshot, got %+v", captured)
	}
}

// TestReconcileGoogleDisabledAfterTokenFailure ensures a token failure marks
// the Google path fatal for the run: later units error without another fetch.
func TestReconcileGoogleDisabledAfterTokenFailure(t *testing.T) {
	fetcher := mocks.NewMockActivityFetcher(t)
	overrides := mocks.NewMockOverrideRepository(t)
	reviews := mocks.NewMockReviewRepository(t)
	accounts := mocks.NewMockAccountRepository(t)

	fetcher.EXPECT().
		FetchAccountActivity(mock.Anything, "g-1", mock.Anything, mock.Anything).
		Return(nil, port.ErrRefreshFailed).
		Once()

	rec := newTestReconciler(map[domain.Platform]port.ActivityFetcher{domain.PlatformGoogle: fetcher}, overrides, reviews, accounts)

	unit1 := metaUnit(1, "g-1")
	unit1.Account.Platform = domain.PlatformGoogle
	unit2 := metaUnit(2, "g-2")
	unit2.Account.Platform = domain.PlatformGoogle

	st := &runState{}
	err := rec.Reconcile(context.Background(), domain.PlatformCredentials{}, unit1, st)
	if !errors.Is(err, port.ErrRefreshFailed) {
		t.Fatalf("first unit: got %v, want ErrRefreshFailed", err)
	}

	// Second google unit must fail fast without touching the fetcher again;
	// the Once() expectation above enforces that.
	err = rec.Reconcile(context.Background(), domain.PlatformCredentials{}, unit2, st)
	if !errors.Is(err, port.ErrRefreshFailed) {
		t.Fatalf("second unit: got %v, want wrapped ErrRefreshFailed", err)
	}
}

// TestReconcileSkipsUnconfiguredAccount covers the skip conditions: no
// platform account id, or no fetcher registered for the platform.
func TestReconcileSkipsUnconfiguredAccount(t *testing.T) {
	overrides := mocks.NewMockOverrideRepository(t)
	reviews := mocks.NewMockReviewRepository(t)
	accounts := mocks.NewMockAccountRepository(t)

	rec := newTestReconciler(map[domain.Platform]port.ActivityFetcher{}, overrides, reviews, accounts)

	if err := rec.Reconcile(context.Background(), domain.PlatformCredentials{}, metaUnit(1, ""), &runState{}); !errors.Is(err, errSkipUnit) {
		t.Fatalf("empty account id: got %v, want errSkipUnit", err)
	}
	if err := rec.Reconcile(context.Background(), domain.PlatformCredentials{}, metaUnit(1, "acct"), &runState{}); !errors.Is(err, errSkipUnit) {
		t.Fatalf("no fetcher: got %v, want errSkipUnit", err)
	}
}

// TestReconcileReviewDateTimezone pins "today" to the configured civil
// timezone: shortly after midnight UTC the review date is still the previous
// day in a UTC-3 zone.
func TestReconcileReviewDateTimezone(t *testing.T) {
	fetcher := mocks.NewMockActivityFetcher(t)
	overrides := mocks.NewMockOverrideRepository(t)
	reviews := mocks.NewMockReviewRepository(t)
	accounts := mocks.NewMockAccountRepository(t)

	var window port.DateWindow
	fetcher.EXPECT().
		FetchAccountActivity(mock.Anything, "acct-1", mock.Anything, mock.Anything).
		Run(func(ctx context.Context, accountID string, creds domain.PlatformCredentials, w port.DateWindow) {
			window = w
		}).
		Return(&port.AccountActivity{}, nil)
	overrides.EXPECT().
		ActiveOverride(mock.Anything, int64(1), domain.PlatformMeta, mock.Anything).
		Return(nil, nil)
	reviews.EXPECT().
		UpsertReview(mock.Anything, mock.AnythingOfType("*domain.DailyBudgetReview")).
		Return(nil)
	reviews.EXPECT().
		UpsertCurrentState(mock.Anything, mock.AnythingOfType("*domain.CurrentReviewState")).
		Return(nil)

	loc := time.FixedZone("UTC-3", -3*60*60)
	rec := NewReconciler(map[domain.Platform]port.ActivityFetcher{domain.PlatformMeta: fetcher}, overrides, reviews, accounts, loc, discardLogger())
	rec.now = func() time.Time {
		return time.Date(2026, 3, 1, 1, 30, 0, 0, time.UTC)
	}

	if err := rec.Reconcile(context.Background(), domain.PlatformCredentials{}, metaUnit(1, "acct-1"), &runState{}); err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}

	want := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	if !window.Until.Equal(want) {
		t.Fatalf("window until: got %v, want %v", window.Until, want)
	}
}

// TestReconcileAccountNameRefresh ensures a changed platform display name is
// written back and a write failure stays non-fatal.
func TestReconcileAccountNameRefresh(t *testing.T) {
	fetcher := mocks.NewMockActivityFetcher(t)
	overrides := mocks.NewMockOverrideRepository(t)
	reviews := mocks.NewMockReviewRepository(t)
	accounts := mocks.NewMockAccountRepository(t)

	fetcher.EXPECT().
		FetchAccountActivity(mock.Anything, "acct-1", mock.Anything, mock.Anything).
		Return(&port.AccountActivity{AccountName: "Renamed Co"}, nil)
	overrides.EXPECT().
		ActiveOverride(mock.Anything, int64(1), domain.PlatformMeta, mock.Anything).
		Return(nil, nil)
	accounts.EXPECT().
		UpdateAccountName(mock.Anything, int64(10), "Renamed Co").
		Return(errors.New("db down"))

	var captured *domain.DailyBudgetReview
	reviews.EXPECT().
		UpsertReview(mock.Anything, mock.AnythingOfType("*domain.DailyBudgetReview")).
		Run(func(ctx context.Context, review *domain.DailyBudgetReview) {
			captured = review
		}).
		Return(nil)
	reviews.EXPECT().
		UpsertCurrentState(mock.Anything, mock.AnythingOfType("*domain.CurrentReviewState")).
		Return(nil)

	rec := newTestReconciler(map[domain.Platform]port.ActivityFetcher{domain.PlatformMeta: fetcher}, overrides, reviews, accounts)

	if err := rec.Reconcile(context.Background(), domain.PlatformCredentials{}, metaUnit(1, "acct-1"), &runState{}); err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if captured.AccountName != "Renamed Co" {
		t.Fatalf("account name: got %q, want refreshed name", captured.AccountName)
	}
}
