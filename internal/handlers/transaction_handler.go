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

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionRepo repositories.TransactionRepositoryInterface) *TransactionHandler {
	return &TransactionHandler{transactionRepo: transactionRepo}
}

// CreateTransaction records a new transaction
// @Summary Record transaction
// @Description Record a transaction for a household account
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CreateTransactionResponse "Transaction recorded"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_004 - Transaction validation failed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.buildTransaction(&req)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if err := transaction.Validate(); err != nil {
		return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction: transaction,
		Message:     "Transaction recorded successfully",
	})
}

// ListTransactions retrieves filtered transaction history for a household
// @Summary List transactions
// @Description Retrieve paginated and filtered transaction history for a household
// @Tags Transactions
// @Produce json
// @Param householdId path string true "Household ID (UUID)"
// @Param account_id query string false "Filter by account ID"
// @Param category_id query string false "Filter by category ID"
// @Param type query string false "Filter by transaction type" Enums(INCOME, EXPENSE, TRANSFER)
// @Param start_date query string false "Filter by earliest value date (YYYY-MM-DD)"
// @Param end_date query string false "Filter by latest value date (YYYY-MM-DD)"
// @Param without_template query bool false "Only transactions not generated from a template"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results per page (max 500)" default(50)
// @Success 200 {object} dto.TransactionListResponse "Transaction history"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /households/{householdId}/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	householdID, err := parseUUIDParam(c, "householdId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid household ID"))
	}

	filters, err := h.buildFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	filters.HouseholdID = householdID

	transactions, total, err := h.transactionRepo.GetByHousehold(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       filters.Offset,
		Limit:        filters.Limit,
	})
}

// GetTransaction retrieves a single transaction by ID
// @Summary Get transaction
// @Description Retrieve a single transaction by ID
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transactionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionRepo.GetByID(transactionID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) buildTransaction(req *dto.CreateTransactionRequest) (*models.Transaction, error) {
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

	valueDate, err := parseDate(req.ValueDate)
	if err != nil {
		return nil, err
	}

	return &models.Transaction{
		HouseholdID:    *householdID,
		AccountID:      *accountID,
		CategoryID:     categoryID,
		CounterpartyID: counterpartyID,
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		Amount:         amount,
		ValueDate:      valueDate,
	}, nil
}

func (h *TransactionHandler) buildFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Type:            c.QueryParam("type"),
		WithoutTemplate: c.QueryParam("without_template") == "true",
		Offset:          getIntParam(c, "offset", 0),
		Limit:           getIntParam(c, "limit", defaultPageLimit),
	}

	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}

	if accountIDStr := c.QueryParam("account_id"); accountIDStr != "" {
		accountID, err := parseOptionalUUID(&accountIDStr)
		if err != nil {
			return filters, err
		}
		filters.AccountID = accountID
	}

	if categoryIDStr := c.QueryParam("category_id"); categoryIDStr != "" {
		categoryID, err := parseOptionalUUID(&categoryIDStr)
		if err != nil {
			return filters, err
		}
		filters.CategoryID = categoryID
	}

	if startDateStr := c.QueryParam("start_date"); startDateStr != "" {
		startDate, err := parseDate(startDateStr)
		if err != nil {
			return filters, err
		}
		filters.StartDate = &startDate
	}

	if endDateStr := c.QueryParam("end_date"); endDateStr != "" {
		endDate, err := parseDate(endDateStr)
		if err != nil {
			return filters, err
		}
		filters.EndDate = &endDate
	}

	return filters, nil
}
