package services

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"household-finance/internal/models"
	"household-finance/internal/repositories"

	"github.com/google/uuid"
)

const (
	// minOccurrences is the smallest series that can establish a pattern
	minOccurrences = 2
	amountScale    = 2
)

// seriesKey identifies a candidate recurring series. The amount is carried as
// a fixed-point string so the struct stays a comparable value type; grouping
// on raw decimals would compare pointers, and concatenated string keys could
// collide on names containing the separator.
type seriesKey struct {
	Name   string
	Type   string
	Amount string
}

// frequencyBucket maps a day-gap range onto an inferred frequency. The ranges
// absorb calendar variation (28-31 day months, leap years) without
// overlapping each other.
type frequencyBucket struct {
	frequency string
	minDays   int
	maxDays   int
}

var frequencyBuckets = []frequencyBucket{
	{models.FrequencyDaily, 1, 2},
	{models.FrequencyWeekly, 6, 8},
	{models.FrequencyMonthly, 28, 32},
	{models.FrequencyYearly, 350, 380},
}

type recurrenceDetector struct {
	transactionRepo repositories.TransactionRepositoryInterface
	templateRepo    repositories.TemplateRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewRecurrenceDetector creates a new recurrence detector
func NewRecurrenceDetector(
	transactionRepo repositories.TransactionRepositoryInterface,
	templateRepo repositories.TemplateRepositoryInterface,
	metrics MetricsRecorderInterface,
) RecurrenceDetectorInterface {
	return &recurrenceDetector{
		transactionRepo: transactionRepo,
		templateRepo:    templateRepo,
		metrics:         metrics,
	}
}

// GetSuggestedTemplates mines the household's non-template transactions for
// recurring series and returns them as template suggestions
func (d *recurrenceDetector) GetSuggestedTemplates(householdID uuid.UUID) ([]models.SuggestedTemplate, error) {
	startTime := time.Now()

	transactions, err := d.transactionRepo.GetEligibleForDetection(householdID)
	if err != nil {
		d.metrics.IncrementCounter("detector.run.failed", nil)
		return nil, fmt.Errorf("failed to fetch transactions for detection: %w", err)
	}

	activeTemplates, err := d.templateRepo.GetByHousehold(householdID, true)
	if err != nil {
		d.metrics.IncrementCounter("detector.run.failed", nil)
		return nil, fmt.Errorf("failed to fetch templates for exclusion: %w", err)
	}

	existing := existingNameTypePairs(activeTemplates)
	groups := groupBySeries(transactions)

	suggestions := make([]models.SuggestedTemplate, 0)
	for key, series := range groups {
		if len(series) < minOccurrences {
			continue
		}

		if _, covered := existing[nameTypePair{key.Name, key.Type}]; covered {
			continue
		}

		suggestion, ok := d.evaluateSeries(key, series)
		if !ok {
			continue
		}
		suggestions = append(suggestions, suggestion)
	}

	sortSuggestions(suggestions)

	d.metrics.IncrementCounter("detector.run.success", nil)
	d.metrics.RecordProcessingTime("detector.run", time.Since(startTime))
	d.metrics.RecordGauge("detector.suggestions", float64(len(suggestions)), nil)

	slog.Info("recurrence detection completed",
		"household_id", householdID,
		"transactions", len(transactions),
		"candidate_series", len(groups),
		"suggestions", len(suggestions),
	)

	return suggestions, nil
}

// evaluateSeries classifies one candidate series and, if a frequency can be
// inferred, builds the suggestion for it
func (d *recurrenceDetector) evaluateSeries(key seriesKey, series []models.Transaction) (models.SuggestedTemplate, bool) {
	sort.Slice(series, func(i, j int) bool {
		return series[i].ValueDate.Before(series[j].ValueDate)
	})

	gaps := dayGaps(series)
	frequency, confidence, ok := classifySeries(gaps)
	if !ok {
		return models.SuggestedTemplate{}, false
	}

	latest := series[len(series)-1]

	return models.SuggestedTemplate{
		Name:           key.Name,
		Type:           key.Type,
		Amount:         latest.AbsoluteAmount().Round(amountScale),
		Frequency:      frequency,
		Confidence:     confidence,
		Occurrences:    len(series),
		AccountID:      latest.AccountID,
		CategoryID:     latest.CategoryID,
		CounterpartyID: latest.CounterpartyID,
		LatestDate:     latest.ValueDate,
		Transactions:   series,
	}, true
}

// groupBySeries partitions transactions by (name, type, rounded absolute
// amount). Exact amount match is required; 15.00 and 15.01 are different
// series.
func groupBySeries(transactions []models.Transaction) map[seriesKey][]models.Transaction {
	groups := make(map[seriesKey][]models.Transaction)
	for _, transaction := range transactions {
		key := seriesKey{
			Name:   transaction.Name,
			Type:   transaction.Type,
			Amount: transaction.AbsoluteAmount().Round(amountScale).StringFixed(amountScale),
		}
		groups[key] = append(groups[key], transaction)
	}
	return groups
}

// dayGaps returns the day distances between consecutive occurrences of a
// series already sorted by value date
func dayGaps(series []models.Transaction) []int {
	gaps := make([]int, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		hours := series[i].ValueDate.Sub(series[i-1].ValueDate).Hours()
		gaps = append(gaps, int(math.Round(hours/24)))
	}
	return gaps
}

// classifyGap maps a single day-gap onto a frequency bucket
func classifyGap(days int) (string, bool) {
	for _, bucket := range frequencyBuckets {
		if days >= bucket.minDays && days <= bucket.maxDays {
			return bucket.frequency, true
		}
	}
	return "", false
}

// classifySeries infers the frequency and confidence for a gap sequence.
// Every gap must land in a recognized bucket, otherwise no frequency can be
// inferred and the series is dropped. All gaps in one bucket yields HIGH for
// three or more occurrences and MEDIUM for exactly two; mixed buckets still
// yield a LOW suggestion when a strict majority of gaps shares one bucket.
func classifySeries(gaps []int) (frequency, confidence string, ok bool) {
	if len(gaps) == 0 {
		return "", "", false
	}

	counts := make(map[string]int)
	for _, gap := range gaps {
		bucket, recognized := classifyGap(gap)
		if !recognized {
			return "", "", false
		}
		counts[bucket]++
	}

	dominant := ""
	dominantCount := 0
	for _, bucket := range frequencyBuckets {
		if counts[bucket.frequency] > dominantCount {
			dominant = bucket.frequency
			dominantCount = counts[bucket.frequency]
		}
	}

	switch {
	case dominantCount == len(gaps) && len(gaps) >= 2:
		return dominant, models.ConfidenceHigh, true
	case dominantCount == len(gaps):
		return dominant, models.ConfidenceMedium, true
	case dominantCount*2 > len(gaps):
		return dominant, models.ConfidenceLow, true
	default:
		return "", "", false
	}
}

type nameTypePair struct {
	Name string
	Type string
}

// existingNameTypePairs collects the (name, type) identities of the
// household's active templates; matching series are never suggested again,
// regardless of amount or cadence
func existingNameTypePairs(templates []models.TransactionTemplate) map[nameTypePair]struct{} {
	pairs := make(map[nameTypePair]struct{}, len(templates))
	for _, template := range templates {
		pairs[nameTypePair{template.Name, template.Type}] = struct{}{}
	}
	return pairs
}

// sortSuggestions orders suggestions by confidence, then occurrence count
// descending, then name for a deterministic result
func sortSuggestions(suggestions []models.SuggestedTemplate) {
	sort.Slice(suggestions, func(i, j int) bool {
		ri, rj := models.ConfidenceRank(suggestions[i].Confidence), models.ConfidenceRank(suggestions[j].Confidence)
		if ri != rj {
			return ri < rj
		}
		if suggestions[i].Occurrences != suggestions[j].Occurrences {
			return suggestions[i].Occurrences > suggestions[j].Occurrences
		}
		return suggestions[i].Name < suggestions[j].Name
	})
}
