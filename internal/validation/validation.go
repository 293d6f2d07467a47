// Package validation checks user input at entry time, before it reaches the
// store. The store itself accepts any text.
package validation

import (
	"fmt"
	"strings"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/storeerror"

	"github.com/shopspring/decimal"
)

// Amount parses s and checks that it is at least minimum. The returned text
// is the amount as it should be stored.
func Amount(s string, minimum decimal.Decimal) (string, error) {
	amount, err := models.ParseAmount(s)
	if err != nil {
		return "", &storeerror.ValidationError{Field: "amount", Value: s, Reason: "not a number"}
	}
	if amount.LessThan(minimum) {
		return "", &storeerror.ValidationError{
			Field:  "amount",
			Value:  s,
			Reason: fmt.Sprintf("must be at least %s", models.FormatAmount(minimum)),
		}
	}
	return models.FormatAmount(amount), nil
}

// PaymentMethod checks that method is one of allowed, ignoring case, and
// returns the canonical spelling.
func PaymentMethod(method string, allowed []string) (string, error) {
	trimmed := strings.TrimSpace(method)
	for _, a := range allowed {
		if strings.EqualFold(trimmed, a) {
			return a, nil
		}
	}
	return "", &storeerror.ValidationError{
		Field:  "payment method",
		Value:  method,
		Reason: fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")),
	}
}

// Category checks that a category was given.
func Category(category string) (string, error) {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return "", &storeerror.ValidationError{Field: "category", Value: category, Reason: "must not be empty"}
	}
	return trimmed, nil
}

// Date parses s and returns it in the store's ISO layout.
func Date(s string) (string, error) {
	d, err := dateutils.ParseDateString(s)
	if err != nil {
		return "", &storeerror.ValidationError{Field: "date", Value: s, Reason: "not a calendar date"}
	}
	return dateutils.ToISODate(d), nil
}

// OutputFormat checks that format is one of supported.
func OutputFormat(format string, supported []string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return &storeerror.ValidationError{
		Field:  "output format",
		Value:  format,
		Reason: fmt.Sprintf("supported formats are %s", strings.Join(supported, ", ")),
	}
}
