// Package models holds the expense record types shared by the store,
// the aggregator and the presentation layer.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one raw expense row as persisted in the store. All fields are
// kept as the literal text written; nothing is validated on write.
type Record struct {
	Date          string `csv:"Date"`
	Amount        string `csv:"Amount"`
	Category      string `csv:"Category"`
	PaymentMethod string `csv:"Payment Method"`

	// MissingFields counts the trailing fields absent from a short raw row.
	MissingFields int `csv:"-"`
}

// NewRecord builds a record from its four fields.
func NewRecord(date, amount, category, paymentMethod string) Record {
	return Record{
		Date:          date,
		Amount:        amount,
		Category:      category,
		PaymentMethod: paymentMethod,
	}
}

// Fields returns the record as a slice in store column order.
func (r Record) Fields() []string {
	return []string{r.Date, r.Amount, r.Category, r.PaymentMethod}
}

// Field indexes of a raw row, in store column order.
const (
	FieldDate = iota
	FieldAmount
	FieldCategory
	FieldPaymentMethod
	fieldCount
)

// RecordFromFields builds a record from a raw CSV row. Missing trailing
// fields are left empty and counted in MissingFields; extra fields are
// ignored.
func RecordFromFields(fields []string) Record {
	var padded [fieldCount]string
	copy(padded[:], fields)
	r := NewRecord(padded[FieldDate], padded[FieldAmount], padded[FieldCategory], padded[FieldPaymentMethod])
	if len(fields) < fieldCount {
		r.MissingFields = fieldCount - len(fields)
	}
	return r
}

// HasField reports whether the raw row carried the field at index, even
// if it was empty.
func (r Record) HasField(index int) bool {
	return index >= 0 && index < fieldCount-r.MissingFields
}

// Row is one typed row of the expense table.
type Row struct {
	// Position is the zero-based index of the row within the store.
	Position int
	// Date is the parsed calendar date at midnight UTC. It is the zero
	// time when the stored text could not be parsed.
	Date time.Time
	// Amount is null when the stored text is not numeric.
	Amount        decimal.NullDecimal
	Category      string
	PaymentMethod string
	// Source is the row as it was read from the store.
	Source Record
}

// HasDate reports whether the row's date was parsed.
func (r Row) HasDate() bool {
	return !r.Date.IsZero()
}

// Table is the typed, in-memory view of the whole store.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable returns an empty table with the canonical column set.
func NewTable() Table {
	return Table{Columns: Columns(), Rows: []Row{}}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no rows.
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// CategoryTotal is one line of the category spending report.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}
