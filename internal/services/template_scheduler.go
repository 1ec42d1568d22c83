package services

import (
	"fmt"
	"log/slog"
	"time"

	"household-finance/internal/models"
	"household-finance/internal/repositories"
)

type templateScheduler struct {
	templateRepo    repositories.TemplateRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewTemplateScheduler creates a new template scheduler
func NewTemplateScheduler(
	templateRepo repositories.TemplateRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) TemplateSchedulerInterface {
	return &templateScheduler{
		templateRepo:    templateRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// ProcessTemplates materializes one transaction per due template and advances
// each template's scheduling cursor. Templates are processed sequentially and
// independently: a failure on one is logged and counted but never blocks the
// rest, and a template whose transaction could not be created keeps its
// cursor so the next pass retries it.
func (s *templateScheduler) ProcessTemplates(now time.Time) error {
	startTime := time.Now()

	dueTemplates, err := s.templateRepo.GetDue(now)
	if err != nil {
		return fmt.Errorf("failed to fetch due templates: %w", err)
	}

	s.metrics.RecordGauge("scheduler.due_templates", float64(len(dueTemplates)), nil)

	materialized := 0
	failed := 0
	for i := range dueTemplates {
		if err := s.processTemplate(&dueTemplates[i]); err != nil {
			failed++
			slog.Error("failed to process template",
				"template_id", dueTemplates[i].ID,
				"template_name", dueTemplates[i].Name,
				"next_due_date", dueTemplates[i].NextDueDate,
				"error", err.Error(),
			)
			continue
		}
		materialized++
	}

	s.metrics.RecordProcessingTime("scheduler.pass", time.Since(startTime))

	slog.Info("scheduler pass completed",
		"due", len(dueTemplates),
		"materialized", materialized,
		"failed", failed,
	)

	return nil
}

// processTemplate materializes a single due template: create the transaction
// dated to the period it represents, then advance the cursor and persist it
// as an explicit schedule update
func (s *templateScheduler) processTemplate(template *models.TransactionTemplate) error {
	transaction := s.buildTransaction(template)

	if err := s.transactionRepo.Create(transaction); err != nil {
		s.metrics.IncrementCounter("scheduler.template.failed", map[string]string{"reason": "create"})
		return fmt.Errorf("failed to materialize transaction: %w", err)
	}

	newNextDue := models.NextOccurrence(template.NextDueDate, template.Frequency)
	stillActive := template.EndDate == nil || !newNextDue.After(*template.EndDate)

	if err := s.templateRepo.UpdateSchedule(template.ID, newNextDue, stillActive); err != nil {
		s.metrics.IncrementCounter("scheduler.template.failed", map[string]string{"reason": "schedule"})
		return fmt.Errorf("failed to advance template schedule: %w", err)
	}

	s.metrics.IncrementCounter("scheduler.template.materialized", nil)
	if !stillActive {
		s.metrics.IncrementCounter("scheduler.template.deactivated", nil)
		slog.Info("template reached its end date and was deactivated",
			"template_id", template.ID,
			"template_name", template.Name,
			"end_date", template.EndDate,
		)
	}

	return nil
}

// buildTransaction assembles the transaction a due template materializes.
// The value date is the template's due date, not the wall clock, so a late
// scheduler pass still books the transaction into the period it represents.
func (s *templateScheduler) buildTransaction(template *models.TransactionTemplate) *models.Transaction {
	templateID := template.ID
	return &models.Transaction{
		HouseholdID:           template.HouseholdID,
		AccountID:             template.AccountID,
		CategoryID:            template.CategoryID,
		CounterpartyID:        template.CounterpartyID,
		TransactionTemplateID: &templateID,
		Name:                  template.Name,
		Description:           template.Description,
		Type:                  template.Type,
		Amount:                template.SignedAmount(),
		ValueDate:             template.NextDueDate,
	}
}
