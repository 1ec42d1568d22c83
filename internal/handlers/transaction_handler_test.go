package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"household-finance/internal/dto"
	"household-finance/internal/models"
	"household-finance/internal/repositories"
	"household-finance/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	echo                *echo.Echo
	ctrl                *gomock.Controller
	handler             *TransactionHandler
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockTransactionRepo)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) createRequest(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return c, rec
}

func (s *TransactionHandlerTestSuite) listRequest(householdID uuid.UUID, query string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/transactions?"+query, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("householdId")
	c.SetParamValues(householdID.String())
	return c, rec
}

func (s *TransactionHandlerTestSuite) validCreatePayload() map[string]interface{} {
	return map[string]interface{}{
		"household_id": uuid.New().String(),
		"account_id":   uuid.New().String(),
		"name":         "Grocery Store",
		"type":         models.TransactionTypeExpense,
		"amount":       "-54.20",
		"value_date":   "2024-07-15",
	}
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	payload := s.validCreatePayload()
	body, _ := json.Marshal(payload)

	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(transaction *models.Transaction) error {
			s.Equal("Grocery Store", transaction.Name)
			s.Equal(models.TransactionTypeExpense, transaction.Type)
			s.True(transaction.Amount.Equal(decimal.RequireFromString("-54.20")))
			s.True(transaction.ValueDate.Equal(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)))
			s.Nil(transaction.TransactionTemplateID)
			return nil
		})

	c, rec := s.createRequest(string(body))

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.CreateTransactionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Grocery Store", response.Transaction.Name)
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_InvalidType() {
	payload := s.validCreatePayload()
	payload["type"] = "REFUND"
	body, _ := json.Marshal(payload)

	c, rec := s.createRequest(string(body))

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_MissingValueDate() {
	payload := s.validCreatePayload()
	delete(payload, "value_date")
	body, _ := json.Marshal(payload)

	c, rec := s.createRequest(string(body))

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *TransactionHandlerTestSuite) TestCreateTransaction_MalformedAmount() {
	payload := s.validCreatePayload()
	payload["amount"] = "fifty"
	body, _ := json.Marshal(payload)

	c, rec := s.createRequest(string(body))

	s.NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Defaults() {
	householdID := uuid.New()

	s.mockTransactionRepo.EXPECT().
		GetByHousehold(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(householdID, filters.HouseholdID)
			s.Equal(0, filters.Offset)
			s.Equal(defaultPageLimit, filters.Limit)
			s.False(filters.WithoutTemplate)
			return []models.Transaction{{ID: uuid.New(), Name: "Rent"}}, 1, nil
		})

	c, rec := s.listRequest(householdID, "")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.TransactionListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(int64(1), response.Total)
	s.Len(response.Transactions, 1)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_LimitClamped() {
	householdID := uuid.New()

	s.mockTransactionRepo.EXPECT().
		GetByHousehold(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(maxPageLimit, filters.Limit)
			return nil, 0, nil
		})

	c, _ := s.listRequest(householdID, "limit=9999")

	s.NoError(s.handler.ListTransactions(c))
}

func (s *TransactionHandlerTestSuite) TestListTransactions_WithoutTemplateFilter() {
	householdID := uuid.New()

	s.mockTransactionRepo.EXPECT().
		GetByHousehold(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.True(filters.WithoutTemplate)
			return nil, 0, nil
		})

	c, _ := s.listRequest(householdID, "without_template=true")

	s.NoError(s.handler.ListTransactions(c))
}

func (s *TransactionHandlerTestSuite) TestListTransactions_DateRange() {
	householdID := uuid.New()

	s.mockTransactionRepo.EXPECT().
		GetByHousehold(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Require().NotNil(filters.StartDate)
			s.Require().NotNil(filters.EndDate)
			s.True(filters.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
			s.True(filters.EndDate.Equal(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)))
			return nil, 0, nil
		})

	c, _ := s.listRequest(householdID, "start_date=2024-01-01&end_date=2024-06-30")

	s.NoError(s.handler.ListTransactions(c))
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidDate() {
	householdID := uuid.New()

	c, rec := s.listRequest(householdID, "start_date=01.01.2024")

	s.NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_Success() {
	transactionID := uuid.New()

	s.mockTransactionRepo.EXPECT().
		GetByID(transactionID).
		Return(&models.Transaction{ID: transactionID, Name: "Rent"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(transactionID.String())

	s.NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Rent")
}

func (s *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	transactionID := uuid.New()

	s.mockTransactionRepo.EXPECT().
		GetByID(transactionID).
		Return(nil, repositories.ErrTransactionNotFound)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(transactionID.String())

	s.NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "TRANSACTION_001")
}
