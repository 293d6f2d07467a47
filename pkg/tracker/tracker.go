// Package tracker is the boundary between the expense data layer and any
// presentation layer. Its operations never return errors: failures are
// logged and reported as false or as empty results.
package tracker

import (
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/store"
)

// Record is one raw store row: date, amount, category and payment method as text.
type Record = models.Record

// Row is one typed row of a Table.
type Row = models.Row

// Table is the typed view of the store.
type Table = models.Table

// CategoryTotal is one line of a category report.
type CategoryTotal = models.CategoryTotal

// Store is the expense store the tracker reads and writes.
type Store interface {
	ReadAll() ([]models.Record, error)
	Append(record models.Record) error
	ReadAsTable() (models.Table, error)
	DeleteAt(table models.Table, position int) error
}

// Reporter produces category totals.
type Reporter interface {
	Report() ([]models.CategoryTotal, error)
}

// Tracker exposes the store and the aggregator to callers that only want
// success flags and values.
type Tracker struct {
	store    Store
	reporter Reporter
	logger   logging.Logger
}

// New creates a Tracker over store and reporter.
func New(s Store, reporter Reporter, logger logging.Logger) *Tracker {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Tracker{
		store:    s,
		reporter: reporter,
		logger:   logger,
	}
}

// Open creates a Tracker over the CSV store at path.
func Open(path string, logger logging.Logger) *Tracker {
	s := store.NewExpenseStore(path, logger)
	return New(s, report.NewAggregator(s, logger), logger)
}

// ReadAll returns every record in file order. A missing or unreadable store
// yields an empty slice.
func (t *Tracker) ReadAll() []Record {
	records, err := t.store.ReadAll()
	if err != nil {
		t.logger.WithError(err).Error("Failed to read expenses")
		return []Record{}
	}
	return records
}

// Append stores one expense and reports whether it was written.
func (t *Tracker) Append(date, amount, category, paymentMethod string) bool {
	record := models.NewRecord(date, amount, category, paymentMethod)
	if err := t.store.Append(record); err != nil {
		t.logger.WithError(err).Error("Failed to save expense",
			logging.F(logging.FieldDate, date),
			logging.F(logging.FieldCategory, category))
		return false
	}
	return true
}

// Report returns total spending per normalized category, sorted by category.
func (t *Tracker) Report() []CategoryTotal {
	totals, err := t.reporter.Report()
	if err != nil {
		t.logger.WithError(err).Error("Failed to build category report")
		return []CategoryTotal{}
	}
	return totals
}

// ReadAsTable returns the typed table. Failures yield an empty table with
// the canonical columns.
func (t *Tracker) ReadAsTable() Table {
	table, err := t.store.ReadAsTable()
	if err != nil {
		t.logger.WithError(err).Error("Failed to read expense table")
		return models.NewTable()
	}
	return table
}

// DeleteAt removes the row at position from table and the store. It returns
// false, leaving the store untouched, when position is negative, out of range
// or the table is empty.
func (t *Tracker) DeleteAt(table Table, position int) bool {
	if err := t.store.DeleteAt(table, position); err != nil {
		t.logger.WithError(err).Warn("Failed to delete expense",
			logging.F(logging.FieldPosition, position),
			logging.F(logging.FieldRows, table.Len()))
		return false
	}
	return true
}
