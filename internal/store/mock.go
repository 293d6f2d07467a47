package store

import (
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/storeerror"
)

// MockExpenseStore is an in-memory stand-in for ExpenseStore in tests.
type MockExpenseStore struct {
	Records []models.Record
	Table   models.Table

	ReadAllError     error
	AppendError      error
	ReadAsTableError error
	DeleteError      error

	Deleted []int
}

// ReadAll returns the mock records.
func (m *MockExpenseStore) ReadAll() ([]models.Record, error) {
	if m.ReadAllError != nil {
		return nil, m.ReadAllError
	}
	out := make([]models.Record, len(m.Records))
	copy(out, m.Records)
	return out, nil
}

// Append adds record to the mock records.
func (m *MockExpenseStore) Append(record models.Record) error {
	if m.AppendError != nil {
		return m.AppendError
	}
	m.Records = append(m.Records, record)
	return nil
}

// ReadAsTable returns the mock table.
func (m *MockExpenseStore) ReadAsTable() (models.Table, error) {
	if m.ReadAsTableError != nil {
		return models.Table{}, m.ReadAsTableError
	}
	if m.Table.Columns == nil {
		return models.NewTable(), nil
	}
	return m.Table, nil
}

// DeleteAt records the requested position, applying the same bounds checks
// as ExpenseStore.
func (m *MockExpenseStore) DeleteAt(table models.Table, position int) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	if position < 0 || position >= table.Len() {
		return &storeerror.PositionError{Position: position, Rows: table.Len()}
	}
	m.Deleted = append(m.Deleted, position)
	return nil
}
