// Package dateutils provides calendar-date parsing and arithmetic for
// expense dates, which carry no time component.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts accepted when reading the store. Dates are always written
// in DateLayoutISO.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutISOLoose = "2006-1-2"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutRFC3339  = time.RFC3339
	DateLayoutEuropean = "02.01.2006"
	DateLayoutSlashISO = "2006/01/02"
	DateLayoutUS       = "01/02/2006"
	MonthLayout        = "2006-01"
)

var readLayouts = []string{
	DateLayoutISO,
	DateLayoutISOLoose,
	DateLayoutFull,
	DateLayoutRFC3339,
	DateLayoutEuropean,
	DateLayoutSlashISO,
	DateLayoutUS,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

var spaces = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace.
func CleanDateString(dateStr string) string {
	return spaces.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDateString parses a stored date in any of the accepted layouts and
// returns it truncated to midnight UTC.
func ParseDateString(dateStr string) (time.Time, error) {
	clean := CleanDateString(dateStr)
	if clean == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range readLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// Day truncates t to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current local calendar day at midnight UTC.
func Today() time.Time {
	return Day(time.Now())
}

// ToISODate formats a date as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey formats a date as YYYY-MM.
func MonthKey(date time.Time) string {
	return date.Format(MonthLayout)
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// DaysInclusive returns the number of calendar days from start to end,
// counting both ends. It returns 0 when end is before start.
func DaysInclusive(start, end time.Time) int {
	s, e := Day(start), Day(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// InRange reports whether date lies within [from, to]. A zero bound is open.
func InRange(date, from, to time.Time) bool {
	d := Day(date)
	if !from.IsZero() && d.Before(Day(from)) {
		return false
	}
	if !to.IsZero() && d.After(Day(to)) {
		return false
	}
	return true
}
