package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
	AccountTypeCash     = "cash"
)

var ErrInvalidAccountType = errors.New("invalid account type")

// Account is a money source or sink within a household
type Account struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index" json:"household_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	AccountType string    `gorm:"type:varchar(20);not null;default:'checking'" json:"account_type"`
	IBAN        string    `gorm:"type:varchar(34)" json:"iban,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Household Household `gorm:"foreignKey:HouseholdID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.AccountType == "" {
		a.AccountType = AccountTypeChecking
	}
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.HouseholdID == uuid.Nil {
		return errors.New("household ID is required")
	}
	if a.Name == "" {
		return errors.New("account name is required")
	}
	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCash:
		return true
	default:
		return false
	}
}
