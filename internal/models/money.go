package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a stored amount. Surrounding whitespace is ignored.
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	dec, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", s, err)
	}
	return dec, nil
}

// CoerceAmount parses a stored amount and returns a null value instead of an
// error when the text is not numeric.
func CoerceAmount(s string) decimal.NullDecimal {
	dec, err := ParseAmount(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(dec)
}

// FormatAmount formats an amount the way it is written to the store.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatMoney formats an amount for display with a currency symbol and
// thousands separators, e.g. "₹1,234.50".
func FormatMoney(amount decimal.Decimal, symbol string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}
	return fmt.Sprintf("%s%s%s.%s", sign, symbol, grouped.String(), fracPart)
}
