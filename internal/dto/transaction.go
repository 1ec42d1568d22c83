package dto

import (
	"household-finance/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	HouseholdID    string  `json:"household_id" validate:"required,uuid"`
	AccountID      string  `json:"account_id" validate:"required,uuid"`
	CategoryID     *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	CounterpartyID *string `json:"counterparty_id,omitempty" validate:"omitempty,uuid"`
	Name           string  `json:"name" validate:"required,min=1,max=255"`
	Description    string  `json:"description" validate:"max=1000"`
	Type           string  `json:"type" validate:"required,transaction_type"`
	Amount         string  `json:"amount" validate:"required"`
	ValueDate      string  `json:"value_date" validate:"required"`
}

// ListTransactionsRequest represents query parameters for listing transactions
type ListTransactionsRequest struct {
	AccountID       string `query:"account_id" validate:"omitempty,uuid"`
	CategoryID      string `query:"category_id" validate:"omitempty,uuid"`
	Type            string `query:"type" validate:"omitempty,transaction_type"`
	StartDate       string `query:"start_date"`
	EndDate         string `query:"end_date"`
	WithoutTemplate bool   `query:"without_template"`
	Offset          int    `query:"offset" validate:"min=0"`
	Limit           int    `query:"limit" validate:"min=0,max=500"`
}

// Transaction Response DTOs

// CreateTransactionResponse represents the response after recording a transaction
type CreateTransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
	Message     string              `json:"message"`
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}
