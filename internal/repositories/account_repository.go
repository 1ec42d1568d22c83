package repositories

import (
	"errors"
	"fmt"

	"household-finance/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrHouseholdNotFound = errors.New("household not found")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByHousehold retrieves all accounts of a household
func (r *accountRepository) GetByHousehold(householdID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("household_id = ?", householdID).
		Order("name ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// householdRepository implements HouseholdRepositoryInterface
type householdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository creates a new household repository
func NewHouseholdRepository(db *gorm.DB) HouseholdRepositoryInterface {
	return &householdRepository{
		db: db,
	}
}

// Create creates a new household
func (r *householdRepository) Create(household *models.Household) error {
	if err := r.db.Create(household).Error; err != nil {
		return fmt.Errorf("failed to create household: %w", err)
	}
	return nil
}

// GetByID retrieves a household by ID
func (r *householdRepository) GetByID(id uuid.UUID) (*models.Household, error) {
	var household models.Household
	if err := r.db.Where("id = ?", id).First(&household).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseholdNotFound
		}
		return nil, fmt.Errorf("failed to get household: %w", err)
	}
	return &household, nil
}
