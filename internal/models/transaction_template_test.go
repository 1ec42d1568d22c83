package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func validTemplate() *TransactionTemplate {
	return &TransactionTemplate{
		HouseholdID: uuid.New(),
		AccountID:   uuid.New(),
		Name:        "Rent",
		Type:        TransactionTypeExpense,
		Amount:      decimal.RequireFromString("1200.00"),
		Frequency:   FrequencyMonthly,
		StartDate:   day(2024, 1, 1),
		NextDueDate: day(2024, 1, 1),
		IsActive:    true,
	}
}

func TestNextOccurrence(t *testing.T) {
	testCases := []struct {
		name      string
		date      time.Time
		frequency string
		expected  time.Time
	}{
		{"daily", day(2024, 6, 1), FrequencyDaily, day(2024, 6, 2)},
		{"weekly", day(2024, 6, 1), FrequencyWeekly, day(2024, 6, 8)},
		{"monthly mid-month", day(2024, 6, 15), FrequencyMonthly, day(2024, 7, 15)},
		{"yearly", day(2023, 3, 10), FrequencyYearly, day(2024, 3, 10)},
		// Calendar arithmetic normalizes overflow instead of clamping
		{"monthly from Jan 31 in a leap year", day(2024, 1, 31), FrequencyMonthly, day(2024, 3, 2)},
		{"monthly from Jan 31 in a common year", day(2023, 1, 31), FrequencyMonthly, day(2023, 3, 3)},
		{"monthly from Mar 31", day(2024, 3, 31), FrequencyMonthly, day(2024, 5, 1)},
		{"yearly from Feb 29", day(2024, 2, 29), FrequencyYearly, day(2025, 3, 1)},
		{"unknown frequency returns input", day(2024, 6, 1), "FORTNIGHTLY", day(2024, 6, 1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NextOccurrence(tc.date, tc.frequency))
		})
	}
}

func TestSignedAmount(t *testing.T) {
	template := validTemplate()

	template.Type = TransactionTypeExpense
	assert.True(t, template.SignedAmount().Equal(decimal.RequireFromString("-1200.00")))

	template.Type = TransactionTypeIncome
	assert.True(t, template.SignedAmount().Equal(decimal.RequireFromString("1200.00")))

	template.Type = TransactionTypeTransfer
	assert.True(t, template.SignedAmount().Equal(decimal.RequireFromString("1200.00")))
}

func TestIsDue(t *testing.T) {
	template := validTemplate()
	template.NextDueDate = day(2024, 6, 15)

	assert.False(t, template.IsDue(day(2024, 6, 14)))
	assert.True(t, template.IsDue(day(2024, 6, 15)), "a template is due on its due date")
	assert.True(t, template.IsDue(day(2024, 6, 16)))

	template.IsActive = false
	assert.False(t, template.IsDue(day(2024, 6, 16)), "inactive templates never fire")
}

func TestTemplateValidate(t *testing.T) {
	t.Run("valid template passes", func(t *testing.T) {
		require.NoError(t, validTemplate().Validate())
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		template := validTemplate()
		template.Amount = decimal.Zero
		assert.ErrorIs(t, template.Validate(), ErrNonPositiveAmount)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		template := validTemplate()
		template.Amount = decimal.RequireFromString("-5.00")
		assert.ErrorIs(t, template.Validate(), ErrNonPositiveAmount)
	})

	t.Run("invalid frequency rejected", func(t *testing.T) {
		template := validTemplate()
		template.Frequency = "BIWEEKLY"
		assert.ErrorIs(t, template.Validate(), ErrInvalidFrequency)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		template := validTemplate()
		template.Type = "PAYMENT"
		assert.ErrorIs(t, template.Validate(), ErrInvalidTransactionType)
	})

	t.Run("end date before start date rejected", func(t *testing.T) {
		template := validTemplate()
		endDate := day(2023, 12, 31)
		template.EndDate = &endDate
		assert.ErrorIs(t, template.Validate(), ErrEndDateBeforeStart)
	})

	t.Run("end date equal to start date allowed", func(t *testing.T) {
		template := validTemplate()
		endDate := template.StartDate
		template.EndDate = &endDate
		assert.NoError(t, template.Validate())
	})

	t.Run("missing name rejected", func(t *testing.T) {
		template := validTemplate()
		template.Name = ""
		assert.ErrorIs(t, template.Validate(), ErrMissingTemplateName)
	})
}
