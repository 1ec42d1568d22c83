package repositories

import (
	"errors"
	"fmt"
	"time"

	"household-finance/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTemplateNotFound = errors.New("transaction template not found")
)

// templateRepository implements TemplateRepositoryInterface
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new transaction template repository
func NewTemplateRepository(db *gorm.DB) TemplateRepositoryInterface {
	return &templateRepository{
		db: db,
	}
}

// Create creates a new template
func (r *templateRepository) Create(template *models.TransactionTemplate) error {
	if err := r.db.Create(template).Error; err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// GetByID retrieves a template by ID
func (r *templateRepository) GetByID(id uuid.UUID) (*models.TransactionTemplate, error) {
	var template models.TransactionTemplate
	if err := r.db.Where("id = ?", id).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &template, nil
}

// GetByHousehold retrieves templates for a household, optionally active ones only
func (r *templateRepository) GetByHousehold(householdID uuid.UUID, activeOnly bool) ([]models.TransactionTemplate, error) {
	query := r.db.Where("household_id = ?", householdID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var templates []models.TransactionTemplate
	if err := query.Order("name ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}
	return templates, nil
}

// GetDue retrieves all active templates due at or before asOf, across all households
func (r *templateRepository) GetDue(asOf time.Time) ([]models.TransactionTemplate, error) {
	var templates []models.TransactionTemplate
	if err := r.db.Where("is_active = ? AND next_due_date <= ?", true, asOf).
		Order("next_due_date ASC").
		Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to get due templates: %w", err)
	}
	return templates, nil
}

// UpdateSchedule persists the scheduling cursor for a template
func (r *templateRepository) UpdateSchedule(id uuid.UUID, nextDueDate time.Time, isActive bool) error {
	result := r.db.Model(&models.TransactionTemplate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"next_due_date": nextDueDate,
			"is_active":     isActive,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update template schedule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

// Delete removes a template. The transactions it generated are kept; their
// back-reference is nulled in the same database transaction so the detector
// starts seeing them as eligible history again.
func (r *templateRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).
			Where("transaction_template_id = ?", id).
			Update("transaction_template_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach template transactions: %w", err)
		}

		result := tx.Delete(&models.TransactionTemplate{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete template: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTemplateNotFound
		}
		return nil
	})
}
