package domain

import (
	"time"

	"github.com/google/uuid"
)

// BatchStatus is the lifecycle state of one reconciliation batch run.
type BatchStatus string

const (
	BatchRunning        BatchStatus = "running"
	BatchCompleted      BatchStatus = "completed"
	BatchPartialSuccess BatchStatus = "partial_success"
	BatchError          BatchStatus = "error"
)

// RunOrigin records how a batch was triggered. It is metadata only: the
// scheduled and manual paths execute identical logic downstream.
type RunOrigin string

const (
	OriginScheduled RunOrigin = "scheduled"
	OriginManual    RunOrigin = "manual"
)

// BatchLog is the audit record for one batch run. It doubles as the
// progress record polled by monitoring: counts are refreshed while the run
// is in flight and the status is marked terminal at the end.
type BatchLog struct {
	ID             uuid.UUID
	IsAutomatic    bool
	Status         BatchStatus
	TotalUnits     int
	ProcessedUnits int
	SuccessCount   int
	ErrorCount     int
	SkippedCount   int
	ErrorMessage   string
	StartedAt      time.Time
	LastUpdatedAt  time.Time
}
