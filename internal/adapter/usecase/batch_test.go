package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
	"adrecon/internal/core/port/mocks"
)

// batchFixture wires a BatchService against mocks with a meta fetcher whose
// behavior is decided per account id.
type batchFixture struct {
	accounts *mocks.MockAccountRepository
	logs     *mocks.MockBatchRepository
	creds    *mocks.MockCredentialRepository
	fetcher  *mocks.MockActivityFetcher
	svc      *BatchService

	mu       sync.Mutex
	finalLog domain.BatchLog
}

func newBatchFixture(t *testing.T, units []port.ReconcileUnit) *batchFixture {
	f := &batchFixture{
		accounts: mocks.NewMockAccountRepository(t),
		logs:     mocks.NewMockBatchRepository(t),
		creds:    mocks.NewMockCredentialRepository(t),
		fetcher:  mocks.NewMockActivityFetcher(t),
	}

	f.accounts.EXPECT().EligibleUnits(mock.Anything).Return(units, nil)
	f.logs.EXPECT().CreateLog(mock.Anything, mock.AnythingOfType("*domain.BatchLog")).Return(nil)
	f.logs.EXPECT().
		UpdateLog(mock.Anything, mock.AnythingOfType("*domain.BatchLog")).
		Run(func(ctx context.Context, log *domain.BatchLog) {
			f.mu.Lock()
			f.finalLog = *log
			f.mu.Unlock()
		}).
		Return(nil)

	overrides := mocks.NewMockOverrideRepository(t)
	overrides.EXPECT().
		ActiveOverride(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).
		Maybe()
	reviews := mocks.NewMockReviewRepository(t)
	reviews.EXPECT().
		UpsertReview(mock.Anything, mock.AnythingOfType("*domain.DailyBudgetReview")).
		Return(nil).
		Maybe()
	reviews.EXPECT().
		UpsertCurrentState(mock.Anything, mock.AnythingOfType("*domain.CurrentReviewState")).
		Return(nil).
		Maybe()

	rec := NewReconciler(
		map[domain.Platform]port.ActivityFetcher{domain.PlatformMeta: f.fetcher},
		overrides, reviews, f.accounts, time.UTC, discardLogger(),
	)
	f.svc = NewBatchService(context.Background(), f.accounts, f.logs, f.creds, rec, 0, discardLogger())
	return f
}

func (f *batchFixture) final() domain.BatchLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.finalLog
}

func metaUnits(n int) []port.ReconcileUnit {
	units := make([]port.ReconcileUnit, 0, n)
	for i := 1; i <= n; i++ {
		units = append(units, metaUnit(int64(i), fmt.Sprintf("acct-%d", i)))
	}
	return units
}

// TestBatchPartialSuccess runs ten units where the fourth fails: every unit
// is still processed and the run ends partial_success with one error.
func TestBatchPartialSuccess(t *testing.T) {
	f := newBatchFixture(t, metaUnits(10))
	f.creds.EXPECT().Credentials(mock.Anything).Return(domain.PlatformCredentials{MetaAccessToken: "t"}, nil)
	f.logs.EXPECT().SetLastSuccessfulBatch(mock.Anything, mock.AnythingOfType("time.Time")).Return(nil)

	f.fetcher.EXPECT().
		FetchAccountActivity(mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
		Return(&port.AccountActivity{}, nil)

	// Unit 4's failure must come from persistence, not the fetch path, so it
	// actually counts as an error instead of a zeroed snapshot. Model it via
	// a dedicated review mock wired through a fresh reconciler.
	reviews := mocks.NewMockReviewRepository(t)
	reviews.EXPECT().
		UpsertReview(mock.Anything, mock.AnythingOfType("*domain.DailyBudgetReview")).
		RunAndReturn(func(ctx context.Context, review *domain.DailyBudgetReview) error {
			if review.ClientID == 4 {
				return errors.New("db down")
			}
			return nil
		})
	reviews.EXPECT().
		UpsertCurrentState(mock.Anything, mock.AnythingOfType("*domain.CurrentReviewState")).
		Return(nil)
	overrides := mocks.NewMockOverrideRepository(t)
	overrides.EXPECT().
		ActiveOverride(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)
	f.svc.rec = NewReconciler(
		map[domain.Platform]port.ActivityFetcher{domain.PlatformMeta: f.fetcher},
		overrides, reviews, f.accounts, time.UTC, discardLogger(),
	)

	started, err := f.svc.StartBatch(context.Background(), domain.OriginManual, true)
	if err != nil {
		t.Fatalf("StartBatch error: %v", err)
	}
	if started.TotalUnits != 10 {
		t.Fatalf("total units: got %d, want 10", started.TotalUnits)
	}
	if started.Status != domain.BatchRunning {
		t.Fatalf("initial status: got %s, want running", started.Status)
	}
	f.svc.Wait()

	final := f.final()
	if final.ProcessedUnits != 10 {
		t.Fatalf("processed: got %d, want 10", final.ProcessedUnits)
	}
	if final.ErrorCount != 1 {
		t.Fatalf("errors: got %d, want 1", final.ErrorCount)
	}
	if final.SuccessCount != 9 {
		t.Fatalf("successes: got %d, want 9", final.SuccessCount)
	}
	if final.Status != domain.BatchPartialSuccess {
		t.Fatalf("status: got %s, want partial_success", final.Status)
	}
}

// TestBatchAllUnitsFail ends the run in the error state and never advances
// the freshness timestamp.
func TestBatchAllUnitsFail(t *testing.T) {
	f := newBatchFixture(t, metaUnits(3))
	f.creds.EXPECT().Credentials(mock.Anything).Return(domain.PlatformCredentials{}, nil)

	f.fetcher.EXPECT().
		FetchAccountActivity(mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
		Return(nil, port.ErrRefreshFailed)

	// ErrRefreshFailed propagates instead of demoting to a zeroed snapshot,
	// so every unit here fails.
	if _, err := f.svc.StartBatch(context.Background(), domain.OriginScheduled, true); err != nil {
		t.Fatalf("StartBatch error: %v", err)
	}
	f.svc.Wait()

	final := f.final()
	if final.ErrorCount != 3 || final.ProcessedUnits != 3 {
		t.Fatalf("counts: got errors=%d processed=%d, want 3/3", final.ErrorCount, final.ProcessedUnits)
	}
	if final.Status != domain.BatchError {
		t.Fatalf("status: got %s, want error", final.Status)
	}
	if !final.IsAutomatic {
		t.Fatal("scheduled run must be marked automatic")
	}
}

// TestBatchSkipAccounting counts units without a platform account id as
// skipped, not failed, and the run still completes.
func TestBatchSkipAccounting(t *testing.T) {
	units := metaUnits(2)
	units = append(units, metaUnit(3, "")) // unconfigured account

	f := newBatchFixture(t, units)
	f.creds.EXPECT().Credentials(mock.Anything).Return(domain.PlatformCredentials{}, nil)
	f.logs.EXPECT().SetLastSuccessfulBatch(mock.Anything, mock.AnythingOfType("time.Time")).Return(nil)
	f.fetcher.EXPECT().
		FetchAccountActivity(mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
		Return(&port.AccountActivity{}, nil)

	if _, err := f.svc.StartBatch(context.Background(), domain.OriginManual, true); err != nil {
		t.Fatalf("StartBatch error: %v", err)
	}
	f.svc.Wait()

	final := f.final()
	if final.SkippedCount != 1 || final.SuccessCount != 2 || final.ErrorCount != 0 {
		t.Fatalf("counts: got skipped=%d success=%d errors=%d, want 1/2/0", final.SkippedCount, final.SuccessCount, final.ErrorCount)
	}
	if final.ProcessedUnits != 3 {
		t.Fatalf("processed: got %d, want 3", final.ProcessedUnits)
	}
	if final.Status != domain.BatchCompleted {
		t.Fatalf("status: got %s, want completed", final.Status)
	}
}

// TestBatchWithoutReview creates the audit record and finishes immediately
// when executeReview is false. No unit is touched.
func TestBatchWithoutReview(t *testing.T) {
	f := newBatchFixture(t, metaUnits(5))

	started, err := f.svc.StartBatch(context.Background(), domain.OriginManual, false)
	if err != nil {
		t.Fatalf("StartBatch error: %v", err)
	}
	f.svc.Wait()

	if started.Status != domain.BatchCompleted {
		t.Fatalf("status: got %s, want completed", started.Status)
	}
	if started.TotalUnits != 5 || started.ProcessedUnits != 0 {
		t.Fatalf("counts: got total=%d processed=%d, want 5/0", started.TotalUnits, started.ProcessedUnits)
	}
}

// TestBatchUnitPanicIsolated turns a panicking unit into one counted error.
func TestBatchUnitPanicIsolated(t *testing.T) {
	f := newBatchFixture(t, metaUnits(2))
	f.creds.EXPECT().Credentials(mock.Anything).Return(domain.PlatformCredentials{}, nil)
	f.logs.EXPECT().SetLastSuccessfulBatch(mock.Anything, mock.AnythingOfType("time.Time")).Return(nil)

	f.fetcher.EXPECT().
		FetchAccountActivity(mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, accountID string, creds domain.PlatformCredentials, w port.DateWindow) (*port.AccountActivity, error) {
			if accountID == "acct-1" {
				panic("unexpected nil")
			}
			return &port.AccountActivity{}, nil
		})

	if _, err := f.svc.StartBatch(context.Background(), domain.OriginManual, true); err != nil {
		t.Fatalf("StartBatch error: %v", err)
	}
	f.svc.Wait()

	final := f.final()
	if final.ErrorCount != 1 || final.SuccessCount != 1 || final.ProcessedUnits != 2 {
		t.Fatalf("counts: got errors=%d success=%d processed=%d, want 1/1/2", final.ErrorCount, final.SuccessCount, final.ProcessedUnits)
	}
	if final.Status != domain.BatchPartialSuccess {
		t.Fatalf("status: got %s, want partial_success", final.Status)
	}
}

// TestBatchStartSnapshotDetached ensures StartBatch returns a snapshot taken
// before the detached run begins: its counts and status never observe the
// run's writes, however the two interleave.
func TestBatchStartSnapshotDetached(t *testing.T) {
	f := newBatchFixture(t, metaUnits(10))
	f.creds.EXPECT().Credentials(mock.Anything).Return(domain.PlatformCredentials{}, nil)
	f.logs.EXPECT().SetLastSuccessfulBatch(mock.Anything, mock.AnythingOfType("time.Time")).Return(nil)
	f.fetcher.EXPECT().
		FetchAccountActivity(mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
		Return(&port.AccountActivity{}, nil)

	for i := 0; i < 20; i++ {
		started, err := f.svc.StartBatch(context.Background(), domain.OriginManual, true)
		if err != nil {
			t.Fatalf("StartBatch error: %v", err)
		}
		if started.Status != domain.BatchRunning {
			t.Fatalf("snapshot status: got %s, want running", started.Status)
		}
		if started.TotalUnits != 10 || started.ProcessedUnits != 0 || started.SuccessCount != 0 {
			t.Fatalf("snapshot mutated by detached run: %+v", started)
		}
	}
	f.svc.Wait()
}

// TestBatchTerminalWriteSurvivesCancellation cancels the application context
// during the last unit: the terminal status must still be written instead of
// stranding the run as running.
func TestBatchTerminalWriteSurvivesCancellation(t *testing.T) {
	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	accounts := mocks.NewMockAccountRepository(t)
	logs := mocks.NewMockBatchRepository(t)
	creds := mocks.NewMockCredentialRepository(t)
	fetcher := mocks.NewMockActivityFetcher(t)
	overrides := mocks.NewMockOverrideRepository(t)
	reviews := mocks.NewMockReviewRepository(t)

	accounts.EXPECT().EligibleUnits(mock.Anything).Return(metaUnits(1), nil)
	logs.EXPECT().CreateLog(mock.Anything, mock.AnythingOfType("*domain.BatchLog")).Return(nil)
	creds.EXPECT().Credentials(mock.Anything).Return(domain.PlatformCredentials{}, nil)
	fetcher.EXPECT().
		FetchAccountActivity(mock.Anything, "acct-1", mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, accountID string, c domain.PlatformCredentials, w port.DateWindow) (*port.AccountActivity, error) {
			cancel() // shutdown arrives while the last unit is in flight
			return &port.AccountActivity{}, nil
		})
	overrides.EXPECT().
		ActiveOverride(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)
	reviews.EXPECT().
		UpsertReview(mock.Anything, mock.AnythingOfType("*domain.DailyBudgetReview")).
		Return(nil)
	reviews.EXPECT().
		UpsertCurrentState(mock.Anything, mock.AnythingOfType("*domain.CurrentReviewState")).
		Return(nil)

	var terminalCtxErr error
	var terminalStatus domain.BatchStatus
	logs.EXPECT().
		UpdateLog(mock.Anything, mock.AnythingOfType("*domain.BatchLog")).
		RunAndReturn(func(ctx context.Context, log *domain.BatchLog) error {
			if log.Status != domain.BatchRunning {
				terminalStatus = log.Status
				terminalCtxErr = ctx.Err()
			}
			return nil
		})
	logs.EXPECT().
		SetLastSuccessfulBatch(mock.Anything, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(ctx context.Context, at time.Time) error {
			if ctx.Err() != nil {
				t.Error("freshness write ran on a cancelled context")
			}
			return nil
		})

	rec := NewReconciler(
		map[domain.Platform]port.ActivityFetcher{domain.PlatformMeta: fetcher},
		overrides, reviews, accounts, time.UTC, discardLogger(),
	)
	svc := NewBatchService(appCtx, accounts, logs, creds, rec, 0, discardLogger())

	if _, err := svc.StartBatch(context.Background(), domain.OriginManual, true); err != nil {
		t.Fatalf("StartBatch error: %v", err)
	}
	svc.Wait()

	if terminalStatus != domain.BatchCompleted {
		t.Fatalf("terminal status: got %s, want completed", terminalStatus)
	}
	if terminalCtxErr != nil {
		t.Fatalf("terminal write context: got %v, want live context", terminalCtxErr)
	}
}

// TestBatchCredentialLoadFailure aborts the run before any unit and leaves a
// terminal error record.
func TestBatchCredentialLoadFailure(t *testing.T) {
	f := newBatchFixture(t, metaUnits(4))
	f.creds.EXPECT().Credentials(mock.Anything).Return(domain.PlatformCredentials{}, errors.New("settings table unreachable"))

	if _, err := f.svc.StartBatch(context.Background(), domain.OriginManual, true); err != nil {
		t.Fatalf("StartBatch error: %v", err)
	}
	f.svc.Wait()

	final := f.final()
	if final.Status != domain.BatchError {
		t.Fatalf("status: got %s, want error", final.Status)
	}
	if final.ErrorMessage == "" {
		t.Fatal("expected error message on aborted run")
	}
	if final.ProcessedUnits != 0 {
		t.Fatalf("processed: got %d, want 0", final.ProcessedUnits)
	}
}

// TestBatchEnumerationFailure surfaces the error to the caller with no audit
// record created.
func TestBatchEnumerationFailure(t *testing.T) {
	accounts := mocks.NewMockAccountRepository(t)
	logs := mocks.NewMockBatchRepository(t)
	creds := mocks.NewMockCredentialRepository(t)
	accounts.EXPECT().EligibleUnits(mock.Anything).Return(nil, errors.New("db down"))

	svc := NewBatchService(context.Background(), accounts, logs, creds, nil, 0, discardLogger())
	if _, err := svc.StartBatch(context.Background(), domain.OriginManual, true); err == nil {
		t.Fatal("expected enumeration error")
	}
}
