package dto

import (
	"household-finance/internal/models"
)

// Household Request DTOs

// CreateHouseholdRequest represents the request payload for creating a household
type CreateHouseholdRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Currency string `json:"currency" validate:"omitempty,len=3,alpha"`
}

// CreateAccountRequest represents the request payload for creating an account
type CreateAccountRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	AccountType string `json:"account_type" validate:"omitempty,account_type"`
	IBAN        string `json:"iban" validate:"omitempty,max=34"`
}

// Household Response DTOs

// CreateHouseholdResponse represents the response after creating a household
type CreateHouseholdResponse struct {
	Household *models.Household `json:"household"`
	Message   string            `json:"message"`
}

// CreateAccountResponse represents the response after creating an account
type CreateAccountResponse struct {
	Account *models.Account `json:"account"`
	Message string          `json:"message"`
}

// AccountListResponse represents the accounts belonging to a household
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}
