package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome   = "INCOME"
	TransactionTypeExpense  = "EXPENSE"
	TransactionTypeTransfer = "TRANSFER"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrMissingTransactionName = errors.New("transaction name is required")
)

// Transaction represents a single booked movement on a household account.
// Expense amounts are stored negative, income amounts positive. Transactions
// materialized by the scheduler carry a back-reference to their template;
// manually entered or imported transactions leave it nil.
type Transaction struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	HouseholdID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"household_id"`
	AccountID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID            *uuid.UUID      `gorm:"type:uuid" json:"category_id,omitempty"`
	CounterpartyID        *uuid.UUID      `gorm:"type:uuid" json:"counterparty_id,omitempty"`
	TransactionTemplateID *uuid.UUID      `gorm:"type:uuid;index" json:"transaction_template_id,omitempty"`
	Name                  string          `gorm:"type:varchar(255);not null" json:"name"`
	Description           string          `gorm:"type:text" json:"description,omitempty"`
	Type                  string          `gorm:"type:varchar(20);not null" json:"type"`
	Amount                decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	ValueDate             time.Time       `gorm:"not null;index" json:"value_date"`
	CreatedAt             time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Account  Account              `gorm:"foreignKey:AccountID" json:"-"`
	Template *TransactionTemplate `gorm:"foreignKey:TransactionTemplateID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
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

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.HouseholdID == uuid.Nil {
		return errors.New("household ID is required")
	}

	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Name == "" {
		return ErrMissingTransactionName
	}

	if t.ValueDate.IsZero() {
		return errors.New("value date is required")
	}

	return nil
}

// IsTemplateGenerated reports whether the transaction was materialized by the scheduler
func (t *Transaction) IsTemplateGenerated() bool {
	return t.TransactionTemplateID != nil
}

// AbsoluteAmount returns the unsigned amount, which is what the detector groups on
func (t *Transaction) AbsoluteAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}
