package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	FrequencyDaily   = "DAILY"
	FrequencyWeekly  = "WEEKLY"
	FrequencyMonthly = "MONTHLY"
	FrequencyYearly  = "YEARLY"
)

var (
	ErrInvalidFrequency        = errors.New("invalid template frequency")
	ErrNonPositiveAmount       = errors.New("template amount must be positive")
	ErrEndDateBeforeStart      = errors.New("template end date is before start date")
	ErrMissingTemplateName     = errors.New("template name is required")
	ErrMissingTemplateSchedule = errors.New("template start date is required")
)

// TransactionTemplate is a recurring-transaction blueprint. The amount is
// always stored positive; the expense sign is applied when a transaction is
// materialized. NextDueDate is the scheduling cursor and, together with
// IsActive, is mutated exclusively by the template scheduler.
type TransactionTemplate struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	HouseholdID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"household_id"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null" json:"account_id"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid" json:"category_id,omitempty"`
	CounterpartyID *uuid.UUID      `gorm:"type:uuid" json:"counterparty_id,omitempty"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Description    string          `gorm:"type:text" json:"description,omitempty"`
	Type           string          `gorm:"type:varchar(20);not null" json:"type"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Frequency      string          `gorm:"type:varchar(20);not null" json:"frequency"`
	StartDate      time.Time       `gorm:"not null" json:"start_date"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	NextDueDate    time.Time       `gorm:"not null;index" json:"next_due_date"`
	IsActive       bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for TransactionTemplate. A fresh template starts its
// scheduling cursor at the start date.
func (t *TransactionTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.NextDueDate.IsZero() {
		t.NextDueDate = t.StartDate
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for TransactionTemplate
func (t *TransactionTemplate) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// Validate validates the template fields
func (t *TransactionTemplate) Validate() error {
	if t.HouseholdID == uuid.Nil {
		return errors.New("household ID is required")
	}

	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if t.Name == "" {
		return ErrMissingTemplateName
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidFrequency(t.Frequency) {
		return ErrInvalidFrequency
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}

	if t.StartDate.IsZero() {
		return ErrMissingTemplateSchedule
	}

	if t.EndDate != nil && t.EndDate.Before(t.StartDate) {
		return ErrEndDateBeforeStart
	}

	return nil
}

// SignedAmount returns the amount with the sign implied by the template type:
// negative for expenses, positive otherwise.
func (t *TransactionTemplate) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Abs().Neg()
	}
	return t.Amount.Abs()
}

// IsDue reports whether the template should fire at the given time
func (t *TransactionTemplate) IsDue(now time.Time) bool {
	return t.IsActive && !t.NextDueDate.After(now)
}

// TableName returns the table name for TransactionTemplate
func (t *TransactionTemplate) TableName() string {
	return "transaction_templates"
}

// IsValidFrequency checks if the frequency is valid
func IsValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

// NextOccurrence advances a date by exactly one period of the given frequency
// using Go's calendar arithmetic. time.AddDate normalizes day-of-month
// overflow, so a monthly step from Jan 31 lands on Mar 2 in a leap year
// (Feb 31 normalized) rather than the end of February.
func NextOccurrence(date time.Time, frequency string) time.Time {
	switch frequency {
	case FrequencyDaily:
		return date.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return date.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return date.AddDate(0, 1, 0)
	case FrequencyYearly:
		return date.AddDate(1, 0, 0)
	default:
		return date
	}
}
