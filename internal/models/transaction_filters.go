package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	HouseholdID uuid.UUID
	AccountID   *uuid.UUID
	CategoryID  *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	Type        string
	// WithoutTemplate restricts the result to transactions that were not
	// generated from a template (transaction_template_id IS NULL)
	WithoutTemplate bool
	Offset          int
	Limit           int
}

// TemplateFilters contains filtering options for template queries
type TemplateFilters struct {
	HouseholdID *uuid.UUID
	IsActive    *bool
	// DueBy restricts the result to templates whose next due date is at or
	// before the given time
	DueBy *time.Time
}
