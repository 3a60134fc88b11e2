package port

import (
	"context"

	"adrecon/internal/core/domain"
)

// BatchUseCase is the single entry point for batch reconciliation. Scheduled
// and manual triggers both call StartBatch; origin is metadata only and never
// branches business logic.
type BatchUseCase interface {
	// StartBatch enumerates eligible units, records the initial audit log and
	// launches processing detached from the caller's context. It returns once
	// enumeration completes; the returned log carries the run ID and the unit
	// count. With executeReview false the run is recorded but no units are
	// processed.
	StartBatch(ctx context.Context, origin domain.RunOrigin, executeReview bool) (*domain.BatchLog, error)
}
