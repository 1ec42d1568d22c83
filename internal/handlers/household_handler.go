package handlers

import (
	stderrors "errors"
	"net/http"

	"household-finance/internal/dto"
	"household-finance/internal/errors"
	"household-finance/internal/models"
	"household-finance/internal/repositories"

	"github.com/labstack/echo/v4"
)

// HouseholdHandler handles household and account HTTP requests
type HouseholdHandler struct {
	householdRepo repositories.HouseholdRepositoryInterface
	accountRepo   repositories.AccountRepositoryInterface
}

// NewHouseholdHandler creates a new household handler
func NewHouseholdHandler(
	householdRepo repositories.HouseholdRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
) *HouseholdHandler {
	return &HouseholdHandler{
		householdRepo: householdRepo,
		accountRepo:   accountRepo,
	}
}

// CreateHousehold creates a new household
// @Summary Create household
// @Description Create a household to group accounts, transactions, and templates
// @Tags Households
// @Accept json
// @Produce json
// @Param request body dto.CreateHouseholdRequest true "Household details"
// @Success 201 {object} dto.CreateHouseholdResponse "Household created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /households [post]
func (h *HouseholdHandler) CreateHousehold(c echo.Context) error {
	var req dto.CreateHouseholdRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	household := &models.Household{
		Name:     req.Name,
		Currency: req.Currency,
	}

	if err := h.householdRepo.Create(household); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateHouseholdResponse{
		Household: household,
		Message:   "Household created successfully",
	})
}

// GetHousehold retrieves a household by ID
// @Summary Get household
// @Description Retrieve a household by ID
// @Tags Households
// @Produce json
// @Param householdId path string true "Household ID (UUID)"
// @Success 200 {object} models.Household "Household"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid household ID"
// @Failure 404 {object} errors.ErrorResponse "HOUSEHOLD_001 - Household not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /households/{householdId} [get]
func (h *HouseholdHandler) GetHousehold(c echo.Context) error {
	householdID, err := parseUUIDParam(c, "householdId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid household ID"))
	}

	household, err := h.householdRepo.GetByID(householdID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrHouseholdNotFound) {
			return SendError(c, errors.HouseholdNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, household)
}

// CreateAccount creates a new account within a household
// @Summary Create account
// @Description Create an account for a household
// @Tags Households
// @Accept json
// @Produce json
// @Param householdId path string true "Household ID (UUID)"
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.CreateAccountResponse "Account created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 404 {object} errors.ErrorResponse "HOUSEHOLD_001 - Household not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /households/{householdId}/accounts [post]
func (h *HouseholdHandler) CreateAccount(c echo.Context) error {
	householdID, err := parseUUIDParam(c, "householdId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid household ID"))
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if _, err := h.householdRepo.GetByID(householdID); err != nil {
		if stderrors.Is(err, repositories.ErrHouseholdNotFound) {
			return SendError(c, errors.HouseholdNotFound)
		}
		return SendSystemError(c, err)
	}

	account := &models.Account{
		HouseholdID: householdID,
		Name:        req.Name,
		AccountType: req.AccountType,
		IBAN:        req.IBAN,
	}

	if err := h.accountRepo.Create(account); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateAccountResponse{
		Account: account,
		Message: "Account created successfully",
	})
}

// ListAccounts lists the accounts belonging to a household
// @Summary List accounts
// @Description List the accounts belonging to a household
// @Tags Households
// @Produce json
// @Param householdId path string true "Household ID (UUID)"
// @Success 200 {object} dto.AccountListResponse "Account list"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid household ID"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /households/{householdId}/accounts [get]
func (h *HouseholdHandler) ListAccounts(c echo.Context) error {
	householdID, err := parseUUIDParam(c, "householdId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid household ID"))
	}

	accounts, err := h.accountRepo.GetByHousehold(householdID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}
