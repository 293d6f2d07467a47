// Package report derives category spending reports from the raw records of
// the expense store.
package report

import (
	"sort"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/textutils"

	"github.com/shopspring/decimal"
)

// RecordSource supplies the raw records of the store.
type RecordSource interface {
	ReadAll() ([]models.Record, error)
}

// Result is a category report together with the number of records that
// took part in it and the number that were skipped as malformed.
type Result struct {
	Totals  []models.CategoryTotal
	Counted int
	Skipped int
}

// Aggregator computes per-category totals from the raw record sequence.
type Aggregator struct {
	source RecordSource
	logger logging.Logger
}

// NewAggregator creates an Aggregator reading from source.
func NewAggregator(source RecordSource, logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Aggregator{
		source: source,
		logger: logger.WithField("component", "Aggregator"),
	}
}

// Report returns the total amount per normalized category, sorted by
// category name. Records with a non-numeric amount, or too short to carry
// a category, are skipped without error.
func (a *Aggregator) Report() ([]models.CategoryTotal, error) {
	result, err := a.Run()
	if err != nil {
		return nil, err
	}
	return result.Totals, nil
}

// Run is Report with the counts of used and skipped records.
func (a *Aggregator) Run() (Result, error) {
	records, err := a.source.ReadAll()
	if err != nil {
		return Result{}, err
	}

	result := Aggregate(records)
	a.logger.Debug("Generated category report",
		logging.F(logging.FieldCount, result.Counted),
		logging.F(logging.FieldSkipped, result.Skipped),
		logging.F("categories", len(result.Totals)))
	return result, nil
}

// Aggregate folds records into per-category totals. Rows too short to
// carry a category, or whose amount is not a number, are skipped. A blank
// category is a category of its own, reported as "".
func Aggregate(records []models.Record) Result {
	totals := make(map[string]decimal.Decimal)
	var result Result

	for _, rec := range records {
		if !rec.HasField(models.FieldCategory) {
			result.Skipped++
			continue
		}
		category := textutils.NormalizeCategory(rec.Category)
		amount, err := models.ParseAmount(rec.Amount)
		if err != nil {
			result.Skipped++
			continue
		}
		totals[category] = totals[category].Add(amount)
		result.Counted++
	}

	result.Totals = make([]models.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result.Totals = append(result.Totals, models.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(result.Totals, func(i, j int) bool {
		return result.Totals[i].Category < result.Totals[j].Category
	})
	return result
}
