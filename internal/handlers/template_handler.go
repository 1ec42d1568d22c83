package handlers

import (
	stderrors "errors"
	"net/http"

	"household-finance/internal/dto"
	"household-finance/internal/errors"
	"household-finance/internal/models"
	"household-finance/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TemplateHandler handles transaction template HTTP requests
type TemplateHandler struct {
	templateRepo repositories.TemplateRepositoryInterface
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateRepo repositories.TemplateRepositoryInterface) *TemplateHandler {
	return &TemplateHandler{templateRepo: templateRepo}
}

// CreateTemplate creates a new recurring transaction template
// @Summary Create template
// @Description Create a recurring transaction template for a household
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body dto.CreateTemplateRequest true "Template details"
// @Success 201 {object} dto.CreateTemplateResponse "Template created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 422 {object} errors.ErrorResponse "TEMPLATE_004 - Template validation failed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c echo.Context) error {
	var req dto.CreateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	template, err := h.buildTemplate(&req)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if err := template.Validate(); err != nil {
		return SendError(c, errors.TemplateValidationFailed, errors.WithDetails(err.Error()))
	}

	if err := h.templateRepo.Create(template); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateTemplateResponse{
		Template: template,
		Message:  "Template created successfully",
	})
}

// ListTemplates lists templates for a household
// @Summary List templates
// @Description List recurring transaction templates for a household
// @Tags Templates
// @Produce json
// @Param householdId path string true "Household ID (UUID)"
// @Param active_only query bool false "Only return active templates"
// @Success 200 {object} dto.TemplateListResponse "Template list"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid household ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /households/{householdId}/templates [get]
func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	householdID, err := parseUUIDParam(c, "householdId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid household ID"))
	}

	activeOnly := c.QueryParam("active_only") == "true"

	templates, err := h.templateRepo.GetByHousehold(householdID, activeOnly)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TemplateListResponse{
		Templates: templates,
		Total:     len(templates),
	})
}

// GetTemplate retrieves a single template by ID
// @Summary Get template
// @Description Retrieve a single transaction template by ID
// @Tags Templates
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Success 200 {object} models.TransactionTemplate "Template"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid template ID"
// @Failure 404 {object} errors.ErrorResponse "TEMPLATE_001 - Template not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c echo.Context) error {
	templateID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid template ID"))
	}

	template, err := h.templateRepo.GetByID(templateID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTemplateNotFound) {
			return SendError(c, errors.TemplateNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, template)
}

// DeleteTemplate deletes a template and detaches its generated transactions
// @Summary Delete template
// @Description Delete a transaction template; previously generated transactions are kept with the template reference cleared
// @Tags Templates
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Template deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid template ID"
// @Failure 404 {object} errors.ErrorResponse "TEMPLATE_001 - Template not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c echo.Context) error {
	templateID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid template ID"))
	}

	if err := h.templateRepo.Delete(templateID); err != nil {
		if stderrors.Is(err, repositories.ErrTemplateNotFound) {
			return SendError(c, errors.TemplateNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Template deleted successfully"})
}

func (h *TemplateHandler) buildTemplate(req *dto.CreateTemplateRequest) (*models.TransactionTemplate, error) {
	householdID, err := parseOptionalUUID(&req.HouseholdID)
	if err != nil {
		return nil, err
	}

	accountID, err := parseOptionalUUID(&req.AccountID)
	if err != nil {
		return nil, err
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		return nil, err
	}

	counterpartyID, err := parseOptionalUUID(req.CounterpartyID)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	template := &models.TransactionTemplate{
		HouseholdID:    *householdID,
		AccountID:      *accountID,
		CategoryID:     categoryID,
		CounterpartyID: counterpartyID,
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		Amount:         amount,
		Frequency:      req.Frequency,
		StartDate:      startDate,
		IsActive:       true,
	}

	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		template.EndDate = &endDate
	}

	return template, nil
}
