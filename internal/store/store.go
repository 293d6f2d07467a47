// Package store is the sole owner of the persisted expense file. All reads
// and writes of the CSV store go through ExpenseStore.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/storeerror"

	"github.com/gocarina/gocsv"
)

// DefaultFile is the well-known location of the store.
const DefaultFile = "expenses.csv"

// NoPosition is passed to DeleteAt when the caller has no row selected.
const NoPosition = -1

// ExpenseStore reads and writes the expense CSV file. It performs no
// locking and assumes a single process accesses the file at a time.
type ExpenseStore struct {
	path   string
	logger logging.Logger
}

// NewExpenseStore creates a store for the file at path. An empty path
// selects DefaultFile.
func NewExpenseStore(path string, logger logging.Logger) *ExpenseStore {
	if path == "" {
		path = DefaultFile
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &ExpenseStore{
		path:   path,
		logger: logger.WithField(logging.FieldFile, path),
	}
}

// Path returns the location of the store file.
func (s *ExpenseStore) Path() string {
	return s.path
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// ReadAll returns every record in file order, without the header row.
// A missing store yields an empty slice.
func (s *ExpenseStore) ReadAll() ([]models.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Store does not exist, returning no records")
			return []models.Record{}, nil
		}
		return nil, fmt.Errorf("error opening store: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close store")
		}
	}()

	rows, err := newReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading store: %w", err)
	}

	records := make([]models.Record, 0, len(rows))
	if len(rows) > 1 {
		for _, row := range rows[1:] {
			records = append(records, models.RecordFromFields(row))
		}
	}

	s.logger.Debug("Read records from store", logging.F(logging.FieldCount, len(records)))
	return records, nil
}

// Append adds one record at the end of the store. When the store is new or
// zero-length the header row is written first.
func (s *ExpenseStore) Append(record models.Record) error {
	file, size, err := fileutils.OpenAppend(s.path, models.PermissionStoreFile)
	if err != nil {
		return &storeerror.WriteError{FilePath: s.path, Operation: "append", Err: err}
	}

	writeErr := writeRecords(file, []models.Record{record}, size == 0)
	closeErr := file.Close()
	if writeErr != nil {
		return &storeerror.WriteError{FilePath: s.path, Operation: "append", Err: writeErr}
	}
	if closeErr != nil {
		return &storeerror.WriteError{FilePath: s.path, Operation: "append", Err: closeErr}
	}

	s.logger.Info("Appended expense",
		logging.F(logging.FieldDate, record.Date),
		logging.F(logging.FieldCategory, record.Category),
		logging.F("header_written", size == 0))
	return nil
}

// ReadAsTable returns the typed view of the store. Dates are parsed and
// amounts coerced; an unparseable amount becomes null and an unparseable
// date becomes the zero time. A missing or zero-length store yields an
// empty table with the canonical columns.
func (s *ExpenseStore) ReadAsTable() (models.Table, error) {
	if !fileutils.HasContent(s.path) {
		s.logger.Debug("Store is missing or empty, returning empty table")
		return models.NewTable(), nil
	}

	file, err := os.Open(s.path)
	if err != nil {
		return models.Table{}, fmt.Errorf("error opening store: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close store")
		}
	}()

	var records []models.Record
	if err := gocsv.UnmarshalCSV(newReader(file), &records); err != nil {
		return models.Table{}, fmt.Errorf("error parsing store: %w", err)
	}

	table := models.NewTable()
	nullAmounts, badDates := 0, 0
	for i, rec := range records {
		row := models.Row{
			Position:      i,
			Amount:        models.CoerceAmount(rec.Amount),
			Category:      rec.Category,
			PaymentMethod: rec.PaymentMethod,
			Source:        rec,
		}
		if date, err := dateutils.ParseDateString(rec.Date); err == nil {
			row.Date = date
		} else {
			badDates++
		}
		if !row.Amount.Valid {
			nullAmounts++
		}
		table.Rows = append(table.Rows, row)
	}

	s.logger.Debug("Built expense table",
		logging.F(logging.FieldRows, table.Len()),
		logging.F("null_amounts", nullAmounts),
		logging.F("unparsed_dates", badDates))
	return table, nil
}

// DeleteAt removes the row at position from table and rewrites the whole
// store from the remaining rows. Later rows shift down by one position.
// An absent or out-of-range position, or an empty table, returns a
// PositionError and leaves the store untouched.
//
// The rewrite truncates the file first; a crash mid-write can lose data.
func (s *ExpenseStore) DeleteAt(table models.Table, position int) error {
	if position < 0 || table.IsEmpty() || position >= table.Len() {
		err := &storeerror.PositionError{Position: position, Rows: table.Len()}
		s.logger.WithError(err).Warn("Rejected delete")
		return err
	}

	remaining := make([]models.Record, 0, table.Len()-1)
	for i, row := range table.Rows {
		if i == position {
			continue
		}
		remaining = append(remaining, row.Source)
	}

	if err := s.rewrite(remaining); err != nil {
		return err
	}

	s.logger.Info("Deleted expense",
		logging.F(logging.FieldPosition, position),
		logging.F(logging.FieldRows, len(remaining)))
	return nil
}

// rewrite replaces the store with a header row followed by records.
func (s *ExpenseStore) rewrite(records []models.Record) error {
	file, err := fileutils.CreateFile(s.path, models.PermissionStoreFile)
	if err != nil {
		return &storeerror.WriteError{FilePath: s.path, Operation: "rewrite", Err: err}
	}

	writeErr := writeRecords(file, records, true)
	closeErr := file.Close()
	if writeErr != nil {
		return &storeerror.WriteError{FilePath: s.path, Operation: "rewrite", Err: writeErr}
	}
	if closeErr != nil {
		return &storeerror.WriteError{FilePath: s.path, Operation: "rewrite", Err: closeErr}
	}
	return nil
}

func writeRecords(w io.Writer, records []models.Record, withHeader bool) error {
	csvWriter := csv.NewWriter(w)
	safe := gocsv.NewSafeCSVWriter(csvWriter)

	var err error
	if withHeader {
		err = gocsv.MarshalCSV(records, safe)
	} else {
		err = gocsv.MarshalCSVWithoutHeaders(records, safe)
	}
	if err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
