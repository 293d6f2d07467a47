package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateString(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		wantErr  bool
	}{
		{input: "2024-01-05", expected: date(2024, 1, 5)},
		{input: "2024-1-5", expected: date(2024, 1, 5)},
		{input: " 2024-01-05 ", expected: date(2024, 1, 5)},
		{input: "2024-01-05 13:45:00", expected: date(2024, 1, 5)},
		{input: "2024-01-05T23:30:00+02:00", expected: date(2024, 1, 5)},
		{input: "05.01.2024", expected: date(2024, 1, 5)},
		{input: "2024/01/05", expected: date(2024, 1, 5)},
		{input: "01/05/2024", expected: date(2024, 1, 5)},
		{input: "Jan 5, 2024", expected: date(2024, 1, 5)},
		{input: "", wantErr: true},
		{input: "yesterday", wantErr: true},
		{input: "2024-13-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDateString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
		})
	}
}

func TestFormatting(t *testing.T) {
	d := date(2024, 3, 9)
	assert.Equal(t, "2024-03-09", ToISODate(d))
	assert.Equal(t, "2024-03", MonthKey(d))
	assert.Equal(t, date(2024, 3, 1), StartOfMonth(d))
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, DaysInclusive(date(2024, 1, 1), date(2024, 1, 1)))
	assert.Equal(t, 31, DaysInclusive(date(2024, 1, 1), date(2024, 1, 31)))
	assert.Equal(t, 2, DaysInclusive(date(2024, 2, 28), date(2024, 2, 29)))
	assert.Equal(t, 0, DaysInclusive(date(2024, 1, 2), date(2024, 1, 1)))
}

func TestInRange(t *testing.T) {
	from, to := date(2024, 1, 10), date(2024, 1, 20)
	assert.True(t, InRange(date(2024, 1, 10), from, to))
	assert.True(t, InRange(date(2024, 1, 20), from, to))
	assert.False(t, InRange(date(2024, 1, 9), from, to))
	assert.False(t, InRange(date(2024, 1, 21), from, to))
	assert.True(t, InRange(date(1999, 1, 1), time.Time{}, to))
	assert.True(t, InRange(date(2099, 1, 1), from, time.Time{}))
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), date(2024, 1, 1)))
	assert.False(t, SameDay(date(2024, 1, 1), date(2024, 1, 2)))
}
