package store

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/storeerror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ExpenseStore {
	t.Helper()
	return NewExpenseStore(filepath.Join(t.TempDir(), "expenses.csv"), logging.NewMockLogger())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func sampleRecords() []models.Record {
	return []models.Record{
		models.NewRecord("2024-01-01", "10.00", "food", "Cash"),
		models.NewRecord("2024-01-02", "5.50", " Food ", "UPI"),
		models.NewRecord("2024-01-02", "120.00", "Rent, flat", "Bank Transfer"),
		models.NewRecord("2024-01-03", "42.00", "travel", "Card"),
	}
}

func appendAll(t *testing.T, s *ExpenseStore, records []models.Record) {
	t.Helper()
	for _, r := range records {
		require.NoError(t, s.Append(r))
	}
}

func TestNewExpenseStore_DefaultPath(t *testing.T) {
	s := NewExpenseStore("", nil)
	assert.Equal(t, DefaultFile, s.Path())
}

func TestReadAll_MissingStore(t *testing.T) {
	s := newTestStore(t)
	records, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestReadAll_HeaderOnly(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "Date,Amount,Category,Payment Method\n")
	records, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppend_ThenReadAllPreservesOrder(t *testing.T) {
	s := newTestStore(t)
	appendAll(t, s, sampleRecords())

	records, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), records)
}

func TestAppend_NewStoreWritesSingleHeader(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(models.NewRecord("2024-01-01", "10.00", "Food", "Cash")))

	assert.Equal(t,
		"Date,Amount,Category,Payment Method\n2024-01-01,10.00,Food,Cash\n",
		readFile(t, s.Path()))

	require.NoError(t, s.Append(models.NewRecord("2024-01-02", "3.00", "Tea", "UPI")))
	assert.Equal(t,
		"Date,Amount,Category,Payment Method\n2024-01-01,10.00,Food,Cash\n2024-01-02,3.00,Tea,UPI\n",
		readFile(t, s.Path()))
}

func TestAppend_ZeroLengthStoreGetsHeader(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "")
	require.NoError(t, s.Append(models.NewRecord("2024-01-01", "1", "A", "Card")))
	assert.Equal(t, "Date,Amount,Category,Payment Method\n2024-01-01,1,A,Card\n", readFile(t, s.Path()))
}

func TestAppend_QuotesEmbeddedDelimiters(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(models.NewRecord("2024-01-01", "1", `Rent, "flat"`, "Card")))
	assert.Contains(t, readFile(t, s.Path()), `"Rent, ""flat"""`)

	records, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, `Rent, "flat"`, records[0].Category)
}

func TestAppend_WriteFailure(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission checks are not enforced for this user")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0750) })

	s := NewExpenseStore(filepath.Join(dir, "expenses.csv"), nil)
	err := s.Append(models.NewRecord("2024-01-01", "1", "A", "Card"))
	require.Error(t, err)
	assert.True(t, storeerror.IsWriteError(err))
}

func TestReadAll_Idempotent(t *testing.T) {
	s := newTestStore(t)
	appendAll(t, s, sampleRecords())

	first, err := s.ReadAll()
	require.NoError(t, err)
	second, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReadAll_RaggedRows(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "Date,Amount,Category,Payment Method\n2024-01-01,10\n2024-01-02,5,Food,UPI,extra\n")

	records, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.Record{Date: "2024-01-01", Amount: "10", MissingFields: 2}, records[0])
	assert.Equal(t, models.NewRecord("2024-01-02", "5", "Food", "UPI"), records[1])
}

func TestReadAsTable_MissingAndEmpty(t *testing.T) {
	s := newTestStore(t)

	table, err := s.ReadAsTable()
	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
	assert.Equal(t, models.Columns(), table.Columns)

	writeFile(t, s.Path(), "")
	table, err = s.ReadAsTable()
	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
	assert.Equal(t, models.Columns(), table.Columns)
}

func TestReadAsTable_TypedColumns(t *testing.T) {
	s := newTestStore(t)
	appendAll(t, s, sampleRecords())

	table, err := s.ReadAsTable()
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	first := table.Rows[0]
	assert.Equal(t, 0, first.Position)
	assert.True(t, first.Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, first.Amount.Valid)
	assert.True(t, first.Amount.Decimal.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "food", first.Category)
	assert.Equal(t, "Cash", first.PaymentMethod)

	third := table.Rows[2]
	assert.Equal(t, 2, third.Position)
	assert.Equal(t, "Rent, flat", third.Category)
	assert.Equal(t, "Bank Transfer", third.PaymentMethod)
}

func TestReadAsTable_UnparseableAmountIsNull(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "Date,Amount,Category,Payment Method\n2024-01-01,xx,Food,Cash\n")

	table, err := s.ReadAsTable()
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.False(t, table.Rows[0].Amount.Valid)
	assert.Equal(t, "xx", table.Rows[0].Source.Amount)
}

func TestReadAsTable_UnparseableDateIsZero(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "Date,Amount,Category,Payment Method\nsoon,3,Food,Cash\n")

	table, err := s.ReadAsTable()
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.False(t, table.Rows[0].HasDate())
	assert.True(t, table.Rows[0].Amount.Valid)
}

func TestReadAsTable_HeaderOnly(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "Date,Amount,Category,Payment Method\n")

	table, err := s.ReadAsTable()
	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
}

func TestDeleteAt_ShiftsFollowingRecords(t *testing.T) {
	s := newTestStore(t)
	records := sampleRecords()
	appendAll(t, s, records)

	table, err := s.ReadAsTable()
	require.NoError(t, err)
	require.NoError(t, s.DeleteAt(table, 1))

	after, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, after, 3)
	assert.Equal(t, records[0], after[0])
	assert.Equal(t, records[2], after[1], "record formerly at position 2 is now at 1")
	assert.Equal(t, records[3], after[2])

	assert.Contains(t, readFile(t, s.Path()), "Date,Amount,Category,Payment Method\n")
}

func TestDeleteAt_LastRecordLeavesHeader(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(models.NewRecord("2024-01-01", "1.00", "A", "Cash")))

	table, err := s.ReadAsTable()
	require.NoError(t, err)
	require.NoError(t, s.DeleteAt(table, 0))

	assert.Equal(t, "Date,Amount,Category,Payment Method\n", readFile(t, s.Path()))
	records, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteAt_PreservesMalformedRowsVerbatim(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), "Date,Amount,Category,Payment Method\n2024-01-01,xx,Food,Cash\n2024-01-02,4,Tea,UPI\n")

	table, err := s.ReadAsTable()
	require.NoError(t, err)
	require.NoError(t, s.DeleteAt(table, 1))

	assert.Equal(t, "Date,Amount,Category,Payment Method\n2024-01-01,xx,Food,Cash\n", readFile(t, s.Path()))
}

func TestDeleteAt_InvalidPositionLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore(t)
	appendAll(t, s, sampleRecords())
	before := readFile(t, s.Path())

	table, err := s.ReadAsTable()
	require.NoError(t, err)

	tests := []struct {
		name     string
		table    models.Table
		position int
	}{
		{name: "position equal to row count", table: table, position: table.Len()},
		{name: "position beyond row count", table: table, position: 99},
		{name: "absent position", table: table, position: NoPosition},
		{name: "empty table", table: models.NewTable(), position: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.DeleteAt(tt.table, tt.position)
			require.Error(t, err)
			assert.True(t, storeerror.IsPositionError(err))
			assert.Equal(t, before, readFile(t, s.Path()))
		})
	}
}

func TestDeleteAt_LogsRejection(t *testing.T) {
	mock := logging.NewMockLogger()
	s := NewExpenseStore(filepath.Join(t.TempDir(), "expenses.csv"), mock)

	require.Error(t, s.DeleteAt(models.NewTable(), 0))
	assert.True(t, mock.HasEntry("WARN", "Rejected delete"))
}
