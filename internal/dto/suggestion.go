package dto

import (
	"household-finance/internal/models"
)

// Suggestion Response DTOs

// SuggestionListResponse represents the set of detected recurring transaction patterns
type SuggestionListResponse struct {
	Suggestions []models.SuggestedTemplate `json:"suggestions"`
	Total       int                        `json:"total"`
}

// SchedulerRunResponse represents the outcome of a manually triggered scheduler pass
type SchedulerRunResponse struct {
	Message string `json:"message"`
}
