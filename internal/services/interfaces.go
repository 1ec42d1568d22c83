package services

import (
	"context"
	"time"

	"household-finance/internal/models"

	"github.com/google/uuid"
)

// RecurrenceDetectorInterface mines a household's transaction history for
// recurring patterns that are not yet covered by a template
type RecurrenceDetectorInterface interface {
	// GetSuggestedTemplates returns suggestions sorted by confidence
	// (HIGH, MEDIUM, LOW), then occurrence count descending, then name.
	// It performs no writes; an empty history yields an empty slice.
	GetSuggestedTemplates(householdID uuid.UUID) ([]models.SuggestedTemplate, error)
}

// TemplateSchedulerInterface materializes due templates into transactions
// and advances their scheduling cursor
type TemplateSchedulerInterface interface {
	// ProcessTemplates runs one global scheduler pass for the given time.
	// Failures on individual templates are isolated and logged; the returned
	// error is non-nil only when the due-template fetch itself fails.
	// The pass is not idempotent per call, so the trigger must guarantee
	// at-most-one concurrent execution.
	ProcessTemplates(now time.Time) error
}

// ScheduleTriggerInterface drives the scheduler on a recurring cadence
type ScheduleTriggerInterface interface {
	// Start blocks and fires scheduler passes until the context is cancelled
	Start(ctx context.Context)
}

// MetricsRecorderInterface abstracts the metrics backend for services
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
