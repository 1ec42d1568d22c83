package repositories

import (
	"time"

	"household-finance/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByHousehold(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	// GetEligibleForDetection returns the household's transactions that are
	// not linked to a template, ordered by value date ascending
	GetEligibleForDetection(householdID uuid.UUID) ([]models.Transaction, error)
	GetByTemplateID(templateID uuid.UUID) ([]models.Transaction, error)
	Delete(id uuid.UUID) error
}

// TemplateRepositoryInterface defines the contract for transaction template repository operations
type TemplateRepositoryInterface interface {
	Create(template *models.TransactionTemplate) error
	GetByID(id uuid.UUID) (*models.TransactionTemplate, error)
	GetByHousehold(householdID uuid.UUID, activeOnly bool) ([]models.TransactionTemplate, error)
	// GetDue returns all active templates whose next due date is at or before asOf
	GetDue(asOf time.Time) ([]models.TransactionTemplate, error)
	// UpdateSchedule persists the scheduling cursor pair for a template; the
	// template scheduler is the only caller
	UpdateSchedule(id uuid.UUID, nextDueDate time.Time, isActive bool) error
	// Delete removes a template and nulls the back-reference on every
	// transaction it generated; the transactions themselves survive
	Delete(id uuid.UUID) error
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByHousehold(householdID uuid.UUID) ([]models.Account, error)
}

// HouseholdRepositoryInterface defines the contract for household repository operations
type HouseholdRepositoryInterface interface {
	Create(household *models.Household) error
	GetByID(id uuid.UUID) (*models.Household, error)
}
