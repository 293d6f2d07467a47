// Package analysis computes the presentation-layer views over the typed
// expense table: filtered subsets, daily and monthly totals, category
// shares and summary figures. Rows with a null amount count as rows but
// contribute nothing to sums.
package analysis

import (
	"sort"
	"time"

	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Filter selects rows of a table. Zero dates leave that end of the range
// open and empty sets select every value.
type Filter struct {
	From           time.Time
	To             time.Time
	Categories     []string
	PaymentMethods []string
}

// Apply returns the rows of table matching f. Rows keep their store
// position. Rows with an unparsed date only match when no date bound is set.
func (f Filter) Apply(table models.Table) models.Table {
	categories := toSet(f.Categories)
	methods := toSet(f.PaymentMethods)
	bounded := !f.From.IsZero() || !f.To.IsZero()

	out := models.Table{Columns: table.Columns, Rows: []models.Row{}}
	for _, row := range table.Rows {
		if bounded && (!row.HasDate() || !dateutils.InRange(row.Date, f.From, f.To)) {
			continue
		}
		if categories != nil && !categories[row.Category] {
			continue
		}
		if methods != nil && !methods[row.PaymentMethod] {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// OnDate returns the rows dated on day.
func OnDate(table models.Table, day time.Time) models.Table {
	return Filter{From: day, To: day}.Apply(table)
}

// Total sums the non-null amounts of table.
func Total(table models.Table) decimal.Decimal {
	total := decimal.Zero
	for _, row := range table.Rows {
		if row.Amount.Valid {
			total = total.Add(row.Amount.Decimal)
		}
	}
	return total
}

// PeriodTotal is the spending of one day or month.
type PeriodTotal struct {
	Period string
	Total  decimal.Decimal
}

// DailyTotals sums amounts per calendar day, oldest first.
func DailyTotals(table models.Table) []PeriodTotal {
	return groupBy(table, dateutils.ToISODate)
}

// MonthlyTotals sums amounts per month (YYYY-MM), oldest first.
func MonthlyTotals(table models.Table) []PeriodTotal {
	return groupBy(table, dateutils.MonthKey)
}

func groupBy(table models.Table, key func(time.Time) string) []PeriodTotal {
	sums := make(map[string]decimal.Decimal)
	for _, row := range table.Rows {
		if !row.HasDate() || !row.Amount.Valid {
			continue
		}
		k := key(row.Date)
		sums[k] = sums[k].Add(row.Amount.Decimal)
	}
	out := make([]PeriodTotal, 0, len(sums))
	for k, v := range sums {
		out = append(out, PeriodTotal{Period: k, Total: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// CategoryShare is a category's spending and its percentage of the total.
type CategoryShare struct {
	Category string
	Total    decimal.Decimal
	Percent  decimal.Decimal
}

// CategoryShares groups spending by category as stored (not normalized),
// sorted by category. Percentages are rounded to one decimal place and are
// zero when the overall total is zero.
func CategoryShares(table models.Table) []CategoryShare {
	sums := make(map[string]decimal.Decimal)
	for _, row := range table.Rows {
		if !row.Amount.Valid {
			continue
		}
		sums[row.Category] = sums[row.Category].Add(row.Amount.Decimal)
	}

	overall := decimal.Zero
	for _, v := range sums {
		overall = overall.Add(v)
	}

	hundred := decimal.NewFromInt(100)
	out := make([]CategoryShare, 0, len(sums))
	for category, total := range sums {
		share := CategoryShare{Category: category, Total: total, Percent: decimal.Zero}
		if !overall.IsZero() {
			share.Percent = total.Mul(hundred).Div(overall).Round(1)
		}
		out = append(out, share)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Summary holds the headline figures of a filtered table.
type Summary struct {
	Total              decimal.Decimal
	AverageDaily       decimal.Decimal
	MostCommonCategory string
	Transactions       int
	Days               int
}

// Summarize computes headline figures for table over the inclusive range
// [from, to]. The daily average divides the total by the number of days in
// the range, not the number of days with spending.
func Summarize(table models.Table, from, to time.Time) Summary {
	s := Summary{
		Total:              Total(table),
		AverageDaily:       decimal.Zero,
		MostCommonCategory: MostCommonCategory(table),
		Transactions:       table.Len(),
		Days:               dateutils.DaysInclusive(from, to),
	}
	if s.Days > 0 {
		s.AverageDaily = s.Total.Div(decimal.NewFromInt(int64(s.Days))).Round(2)
	}
	return s
}

// MostCommonCategory returns the category with the most rows, breaking ties
// alphabetically. It returns "" for an empty table.
func MostCommonCategory(table models.Table) string {
	counts := make(map[string]int)
	for _, row := range table.Rows {
		counts[row.Category]++
	}
	best, bestCount := "", 0
	for category, n := range counts {
		if n > bestCount || (n == bestCount && category < best) {
			best, bestCount = category, n
		}
	}
	return best
}

// Bounds returns the earliest and latest parsed dates of table. ok is false
// when no row has a date.
func Bounds(table models.Table) (minDate, maxDate time.Time, ok bool) {
	for _, row := range table.Rows {
		if !row.HasDate() {
			continue
		}
		if !ok || row.Date.Before(minDate) {
			minDate = row.Date
		}
		if !ok || row.Date.After(maxDate) {
			maxDate = row.Date
		}
		ok = true
	}
	return minDate, maxDate, ok
}

// Categories returns the distinct categories of table, sorted.
func Categories(table models.Table) []string {
	return distinct(table, func(r models.Row) string { return r.Category })
}

// PaymentMethods returns the distinct payment methods of table, sorted.
func PaymentMethods(table models.Table) []string {
	return distinct(table, func(r models.Row) string { return r.PaymentMethod })
}

func distinct(table models.Table, field func(models.Row) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, row := range table.Rows {
		v := field(row)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
