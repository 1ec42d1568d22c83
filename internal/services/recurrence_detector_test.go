package services_test

import (
	"errors"
	"testing"
	"time"

	"household-finance/internal/models"
	"household-finance/internal/repositories/repository_mocks"
	"household-finance/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RecurrenceDetectorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	detector        services.RecurrenceDetectorInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	templateRepo    *repository_mocks.MockTemplateRepositoryInterface
	householdID     uuid.UUID
	accountID       uuid.UUID
}

func TestRecurrenceDetectorSuite(t *testing.T) {
	suite.Run(t, new(RecurrenceDetectorTestSuite))
}

func (s *RecurrenceDetectorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.templateRepo = repository_mocks.NewMockTemplateRepositoryInterface(s.ctrl)

	s.detector = services.NewRecurrenceDetector(
		s.transactionRepo,
		s.templateRepo,
		services.NewNoopMetrics(),
	)

	s.householdID = uuid.New()
	s.accountID = uuid.New()
}

func (s *RecurrenceDetectorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// transactionAt builds an expense transaction on the given date
func (s *RecurrenceDetectorTestSuite) transactionAt(name string, amount string, date time.Time) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		HouseholdID: s.householdID,
		AccountID:   s.accountID,
		Name:        name,
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.RequireFromString(amount),
		ValueDate:   date,
	}
}

func (s *RecurrenceDetectorTestSuite) expectRepos(transactions []models.Transaction, templates []models.TransactionTemplate) {
	s.transactionRepo.EXPECT().GetEligibleForDetection(s.householdID).Return(transactions, nil)
	s.templateRepo.EXPECT().GetByHousehold(s.householdID, true).Return(templates, nil)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *RecurrenceDetectorTestSuite) TestMonthlyExpenseDetectedWithHighConfidence() {
	transactions := []models.Transaction{
		s.transactionAt("Gym Membership", "-29.99", date(2024, 1, 15)),
		s.transactionAt("Gym Membership", "-29.99", date(2024, 2, 15)),
		s.transactionAt("Gym Membership", "-29.99", date(2024, 3, 15)),
	}
	s.expectRepos(transactions, nil)

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().NoError(err)
	s.Require().Len(suggestions, 1)
	s.Equal("Gym Membership", suggestions[0].Name)
	s.Equal(models.TransactionTypeExpense, suggestions[0].Type)
	s.Equal(models.FrequencyMonthly, suggestions[0].Frequency)
	s.Equal(models.ConfidenceHigh, suggestions[0].Confidence)
	s.Equal(3, suggestions[0].Occurrences)
	s.True(suggestions[0].Amount.Equal(decimal.RequireFromString("29.99")),
		"suggested amount should be the absolute value, got %s", suggestions[0].Amount)
	s.Equal(date(2024, 3, 15), suggestions[0].LatestDate)
}

func (s *RecurrenceDetectorTestSuite) TestWeeklyExpenseDetectedWithHighConfidence() {
	transactions := []models.Transaction{
		s.transactionAt("Fruit Box", "-24.50", date(2024, 6, 3)),
		s.transactionAt("Fruit Box", "-24.50", date(2024, 6, 10)),
		s.transactionAt("Fruit Box", "-24.50", date(2024, 6, 17)),
	}
	s.expectRepos(transactions, nil)

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().NoError(err)
	s.Require().Len(suggestions, 1)
	s.Equal("Fruit Box", suggestions[0].Name)
	s.Equal(models.FrequencyWeekly, suggestions[0].Frequency)
	s.Equal(models.ConfidenceHigh, suggestions[0].Confidence)
	s.Equal(3, suggestions[0].Occurrences)
}

func (s *RecurrenceDetectorTestSuite) TestTwoOccurrencesYieldMediumConfidence() {
	transactions := []models.Transaction{
		s.transactionAt("Cleaning Service", "-80.00", date(2024, 5, 3)),
		s.transactionAt("Cleaning Service", "-80.00", date(2024, 5, 10)),
	}
	s.expectRepos(transactions, nil)

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().NoError(err)
	s.Require().Len(suggestions, 1)
	s.Equal(models.FrequencyWeekly, suggestions[0].Frequency)
	s.Equal(models.ConfidenceMedium, suggestions[0].Confidence)
	s.Equal(2, suggestions[0].Occurrences)
}

func (s *RecurrenceDetectorTestSuite) TestMixedBucketsWithMajorityYieldLowConfidence() {
	// Three monthly gaps and one weekly outlier: majority is monthly
	transactions := []models.Transaction{
		s.transactionAt("Streaming", "-12.99", date(2024, 1, 1)),
		s.transactionAt("Streaming", "-12.99", date(2024, 2, 1)),
		s.transactionAt("Streaming", "-12.99", date(2024, 2, 8)),
		s.transactionAt("Streaming", "-12.99", date(2024, 3, 8)),
		s.transactionAt("Streaming", "-12.99", date(2024, 4, 8)),
	}
	s.expectRepos(transactions, nil)

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().NoError(err)
	s.Require().Len(suggestions, 1)
	s.Equal(models.FrequencyMonthly, suggestions[0].Frequency)
	s.Equal(models.ConfidenceLow, suggestions[0].Confidence)
}

func (s *RecurrenceDetectorTestSuite) TestUnrecognizedGapDropsSeries() {
	// 15-day gap falls between the weekly and monthly buckets
	transactions := []models.Transaction{
		s.transactionAt("Odd Payments", "-50.00", date(2024, 1, 1)),
		s.transactionAt("Odd Payments", "-50.00", date(2024, 1, 16)),
		s.transactionAt("Odd Payments", "-50.00", date(2024, 1, 31)),
	}
	s.expectRepos(transactions, nil)

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().NoError(err)
	s.Empty(suggestions)
}

func (s *RecurrenceDetectorTestSuite) TestNoDominantBucketDropsSeries() {
	// One weekly and one monthly gap: recognized buckets but no majority
	transactions := []models.Transaction{
		s.transactionAt("Irregular", "-20.00", date(2024, 1, 1)),
		s.transactionAt("Irregular", "-20.00", date(2024, 1, 8)),
		s.transactionAt("Irregular", "-20.00", date(2024, 2, 7)),
	}
	s.expectRepos(transactions, nil)

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().NoError(err)
	s.Empty(suggestions)
}

func (s *RecurrenceDetectorTestSuite) TestSingleOccurrenceIgnored() {
	transactions := []models.Transaction{
		s.transactionAt("One Off", "-99.00", date(2024, 6, 1)),
	}
	s.expectRepos(transactions, nil)

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().NoError(err)
	s.Empty(suggestions)
}

func (s *RecurrenceDetectorTestSuite) TestDifferentAmountsSplitSeries() {
	// 15.00 and 15.01 must not merge into one series
	transactions := []models.Transaction{
		s.transactionAt("Lunch Deal", "-15.00", date(2024, 1, 1)),
		s.transactionAt("Lunch Deal", "-15.01", date(2024, 1, 3)),
		s.transactionAt("Lunch Deal", "-15.00", date(2024, 1, 8)),
		s.transactionAt("Lunch Deal", "-15.01", date(2024, 1, 10)),
	}
	s.expectRepos(transactions, nil)

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().NoError(err)
	s.Require().Len(suggestions, 2)
	for _, suggestion := range suggestions {
		s.Equal(2, suggestion.Occurrences)
		s.Equal(models.FrequencyWeekly, suggestion.Frequency)
		s.Equal(models.ConfidenceMedium, suggestion.Confidence)
	}
}

func (s *RecurrenceDetectorTestSuite) TestActiveTemplateExcludesMatchingSeries() {
	transactions := []models.Transaction{
		s.transactionAt("Rent", "-1200.00", date(2024, 1, 1)),
		s.transactionAt("Rent", "-1200.00", date(2024, 2, 1)),
		s.transactionAt("Rent", "-1200.00", date(2024, 3, 1)),
	}
	templates := []models.TransactionTemplate{
		{
			ID:          uuid.New(),
			HouseholdID: s.householdID,
			Name:        "Rent",
			Type:        models.TransactionTypeExpense,
			// A different amount still excludes: identity is (name, type)
			Amount:    decimal.RequireFromString("1150.00"),
			Frequency: models.FrequencyMonthly,
			IsActive:  true,
		},
	}
	s.expectRepos(transactions, templates)

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().NoError(err)
	s.Empty(suggestions)
}

func (s *RecurrenceDetectorTestSuite) TestSuggestionsSortedByConfidenceThenOccurrences() {
	transactions := []models.Transaction{
		// MEDIUM: two weekly occurrences
		s.transactionAt("Car Wash", "-10.00", date(2024, 1, 1)),
		s.transactionAt("Car Wash", "-10.00", date(2024, 1, 8)),
		// HIGH with 4 occurrences
		s.transactionAt("Internet", "-45.00", date(2024, 1, 5)),
		s.transactionAt("Internet", "-45.00", date(2024, 2, 5)),
		s.transactionAt("Internet", "-45.00", date(2024, 3, 5)),
		s.transactionAt("Internet", "-45.00", date(2024, 4, 5)),
		// HIGH with 3 occurrences
		s.transactionAt("Electricity", "-90.00", date(2024, 1, 10)),
		s.transactionAt("Electricity", "-90.00", date(2024, 2, 10)),
		s.transactionAt("Electricity", "-90.00", date(2024, 3, 10)),
	}
	s.expectRepos(transactions, nil)

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().NoError(err)
	s.Require().Len(suggestions, 3)
	s.Equal("Internet", suggestions[0].Name)
	s.Equal("Electricity", suggestions[1].Name)
	s.Equal("Car Wash", suggestions[2].Name)
}

func (s *RecurrenceDetectorTestSuite) TestSuggestionKeyStableAcrossRuns() {
	transactions := []models.Transaction{
		s.transactionAt("Gym Membership", "-29.99", date(2024, 1, 15)),
		s.transactionAt("Gym Membership", "-29.99", date(2024, 2, 15)),
		s.transactionAt("Gym Membership", "-29.99", date(2024, 3, 15)),
	}

	s.expectRepos(transactions, nil)
	first, err := s.detector.GetSuggestedTemplates(s.householdID)
	s.Require().NoError(err)

	s.expectRepos(transactions, nil)
	second, err := s.detector.GetSuggestedTemplates(s.householdID)
	s.Require().NoError(err)

	s.Require().Len(first, 1)
	s.Require().Len(second, 1)
	s.Equal(first[0].SuggestionKey(), second[0].SuggestionKey())
}

func (s *RecurrenceDetectorTestSuite) TestNoTransactionsYieldsEmptyResult() {
	s.expectRepos(nil, nil)

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().NoError(err)
	s.NotNil(suggestions)
	s.Empty(suggestions)
}

func (s *RecurrenceDetectorTestSuite) TestTransactionRepoErrorPropagates() {
	s.transactionRepo.EXPECT().
		GetEligibleForDetection(s.householdID).
		Return(nil, errors.New("connection refused"))

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().Error(err)
	s.Nil(suggestions)
	s.Contains(err.Error(), "failed to fetch transactions for detection")
}

func (s *RecurrenceDetectorTestSuite) TestTemplateRepoErrorPropagates() {
	s.transactionRepo.EXPECT().GetEligibleForDetection(s.householdID).Return(nil, nil)
	s.templateRepo.EXPECT().
		GetByHousehold(s.householdID, true).
		Return(nil, errors.New("connection refused"))

	suggestions, err := s.detector.GetSuggestedTemplates(s.householdID)

	s.Require().Error(err)
	s.Nil(suggestions)
	s.Contains(err.Error(), "failed to fetch templates for exclusion")
}
