package handlers

import (
	"net/http"
	"time"

	"household-finance/internal/dto"
	"household-finance/internal/errors"
	"household-finance/internal/services"

	"github.com/labstack/echo/v4"
)

// SuggestionHandler handles recurring transaction suggestion HTTP requests
type SuggestionHandler struct {
	detector  services.RecurrenceDetectorInterface
	scheduler services.TemplateSchedulerInterface
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(
	detector services.RecurrenceDetectorInterface,
	scheduler services.TemplateSchedulerInterface,
) *SuggestionHandler {
	return &SuggestionHandler{
		detector:  detector,
		scheduler: scheduler,
	}
}

// GetSuggestions returns detected recurring transaction patterns for a household
// @Summary Get template suggestions
// @Description Analyze a household's transaction history and return recurring patterns suitable for templates
// @Tags Suggestions
// @Produce json
// @Param householdId path string true "Household ID (UUID)"
// @Success 200 {object} dto.SuggestionListResponse "Detected recurring patterns"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid household ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /households/{householdId}/suggestions [get]
func (h *SuggestionHandler) GetSuggestions(c echo.Context) error {
	householdID, err := parseUUIDParam(c, "householdId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid household ID"))
	}

	suggestions, err := h.detector.GetSuggestedTemplates(householdID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SuggestionListResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	})
}

// RunScheduler triggers an immediate scheduler pass over due templates
// @Summary Run scheduler
// @Description Materialize transactions for all templates that are due as of now
// @Tags Suggestions
// @Produce json
// @Success 200 {object} dto.SchedulerRunResponse "Scheduler pass completed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /scheduler/run [post]
func (h *SuggestionHandler) RunScheduler(c echo.Context) error {
	if err := h.scheduler.ProcessTemplates(time.Now().UTC()); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SchedulerRunResponse{
		Message: "Scheduler pass completed",
	})
}
