// Package textutils provides text normalization for reporting labels.
package textutils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCategory trims surrounding whitespace and title-cases the
// category, so "food", "Food" and " FOOD " share the bucket "Food".
// Every run of cased letters is a word of its own: "food2go" becomes
// "Food2Go" and "kid's" becomes "Kid'S".
func NormalizeCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return ""
	}
	// A Caser is stateful, so one is built per call.
	caser := cases.Title(language.Und)

	var b strings.Builder
	start := -1
	for i := 0; i < len(trimmed); {
		r, size := utf8.DecodeRuneInString(trimmed[i:])
		if isCased(r) {
			if start < 0 {
				start = i
			}
		} else {
			if start >= 0 {
				b.WriteString(caser.String(trimmed[start:i]))
				start = -1
			}
			b.WriteString(trimmed[i : i+size])
		}
		i += size
	}
	if start >= 0 {
		b.WriteString(caser.String(trimmed[start:]))
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}
