package port

import (
	"context"
	"errors"
	"time"

	"adrecon/internal/core/domain"
)

// ErrNotFound is returned by lookups for absent rows where absence is an
// error rather than a nil result.
var ErrNotFound = errors.New("not found")

// ErrTokenConfigMissing indicates the Google token configuration is
// incomplete (no refresh token or client credentials). Fatal for the Google
// path for the remainder of the batch run.
var ErrTokenConfigMissing = errors.New("token configuration missing")

// ErrRefreshFailed indicates the token endpoint rejected a refresh attempt.
// Callers must not retry within the same batch run.
var ErrRefreshFailed = errors.New("token refresh failed")

// ReconcileUnit is one unit of batch work: a client paired with one of its
// primary advertising accounts.
type ReconcileUnit struct {
	Client  domain.Client
	Account domain.AdvertisingAccount
}

// AccountRepository enumerates reconciliation units and maintains account
// display data reported by the platforms.
type AccountRepository interface {
	// EligibleUnits returns every active client paired with each of its
	// active primary advertising accounts.
	EligibleUnits(ctx context.Context) ([]ReconcileUnit, error)
	// UpdateAccountName stores a changed display name reported by a platform.
	UpdateAccountName(ctx context.Context, accountRowID int64, name string) error
}

// OverrideRepository resolves manual budget overrides. Implementations must
// be concurrency-safe; overrides are read-only from the engine's perspective.
type OverrideRepository interface {
	// ActiveOverride returns the active override covering the given date for
	// (client, platform), most recently created first when several overlap.
	// It returns (nil, nil) when no override applies.
	ActiveOverride(ctx context.Context, clientID int64, platform domain.Platform, date time.Time) (*domain.CustomBudgetOverride, error)
}

// CredentialRepository reads the persisted platform credentials and writes
// back refreshed Google tokens.
type CredentialRepository interface {
	Credentials(ctx context.Context) (domain.PlatformCredentials, error)
	SaveGoogleToken(ctx context.Context, accessToken string, expiresAt time.Time) error
}

// ReviewRepository persists reconciliation snapshots. Upserts follow
// lookup-then-write semantics on the natural key and must be idempotent:
// writing the same key twice on the same day leaves one row holding the
// second write's content.
type ReviewRepository interface {
	UpsertReview(ctx context.Context, review *domain.DailyBudgetReview) error
	UpsertCurrentState(ctx context.Context, state *domain.CurrentReviewState) error

	ListCurrentStates(ctx context.Context) ([]domain.CurrentReviewState, error)
	ListReviews(ctx context.Context, clientID int64, from, to time.Time) ([]domain.DailyBudgetReview, error)
}

// BatchRepository persists batch audit/progress records and the freshness
// timestamp updated after any run with at least one successful unit.
type BatchRepository interface {
	CreateLog(ctx context.Context, log *domain.BatchLog) error
	UpdateLog(ctx context.Context, log *domain.BatchLog) error
	LatestLog(ctx context.Context) (*domain.BatchLog, error)
	ListLogs(ctx context.Context, limit int) ([]domain.BatchLog, error)
	SetLastSuccessfulBatch(ctx context.Context, at time.Time) error
}
