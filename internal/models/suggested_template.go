package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

// SuggestedTemplate is a recurring pattern mined from transaction history.
// It is recomputed on every detector run and never persisted; clients that
// need to remember a dismissed suggestion key it by SuggestionKey.
type SuggestedTemplate struct {
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Frequency      string          `json:"frequency"`
	Confidence     string          `json:"confidence"`
	Occurrences    int             `json:"occurrences"`
	AccountID      uuid.UUID       `json:"account_id"`
	CategoryID     *uuid.UUID      `json:"category_id,omitempty"`
	CounterpartyID *uuid.UUID      `json:"counterparty_id,omitempty"`
	LatestDate     time.Time       `json:"latest_date"`
	Transactions   []Transaction   `json:"transactions"`
}

// suggestionKeySeparator is a control character so that names containing
// ordinary punctuation cannot collide with the field boundaries.
const suggestionKeySeparator = "\x1f"

// SuggestionKey returns the deterministic identity of a suggestion. Two
// suggestions are the same iff name, type, amount, and frequency all match;
// the key is stable across detector runs over the same data.
func (s *SuggestedTemplate) SuggestionKey() string {
	return strings.Join([]string{
		s.Name,
		s.Type,
		s.Amount.StringFixed(2),
		s.Frequency,
	}, suggestionKeySeparator)
}

// ConfidenceRank orders confidence labels for sorting, strongest first
func ConfidenceRank(confidence string) int {
	switch confidence {
	case ConfidenceHigh:
		return 0
	case ConfidenceMedium:
		return 1
	case ConfidenceLow:
		return 2
	default:
		return 3
	}
}
