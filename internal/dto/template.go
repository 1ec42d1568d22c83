package dto

import (
	"household-finance/internal/models"
)

// Template Request DTOs

// CreateTemplateRequest represents the request payload for creating a transaction template
type CreateTemplateRequest struct {
	HouseholdID    string  `json:"household_id" validate:"required,uuid"`
	AccountID      string  `json:"account_id" validate:"required,uuid"`
	CategoryID     *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	CounterpartyID *string `json:"counterparty_id,omitempty" validate:"omitempty,uuid"`
	Name           string  `json:"name" validate:"required,min=1,max=255"`
	Description    string  `json:"description" validate:"max=1000"`
	Type           string  `json:"type" validate:"required,transaction_type"`
	Amount         string  `json:"amount" validate:"required"`
	Frequency      string  `json:"frequency" validate:"required,frequency"`
	StartDate      string  `json:"start_date" validate:"required"`
	EndDate        *string `json:"end_date,omitempty"`
}

// ListTemplatesRequest represents query parameters for listing templates
type ListTemplatesRequest struct {
	ActiveOnly bool `query:"active_only"`
}

// Template Response DTOs

// CreateTemplateResponse represents the response after creating a template
type CreateTemplateResponse struct {
	Template *models.TransactionTemplate `json:"template"`
	Message  string                      `json:"message"`
}

// TemplateListResponse represents a list of transaction templates
type TemplateListResponse struct {
	Templates []models.TransactionTemplate `json:"templates"`
	Total     int                          `json:"total"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
