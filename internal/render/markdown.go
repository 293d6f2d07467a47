// Package render turns expense views into markdown and renders markdown for
// the terminal with glamour.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/expense-tracker/internal/analysis"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/models"
)

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", " ")

func cell(s string) string {
	return cellEscaper.Replace(s)
}

// Table builds a markdown table. Rows shorter than headers are padded.
func Table(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| ")
	b.WriteString(strings.Join(escapeAll(headers), " | "))
	b.WriteString(" |\n|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, r := range rows {
		padded := make([]string, len(headers))
		copy(padded, r)
		b.WriteString("| ")
		b.WriteString(strings.Join(escapeAll(padded), " | "))
		b.WriteString(" |\n")
	}
	return b.String()
}

func escapeAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = cell(v)
	}
	return out
}

// Records renders raw store records with their positions.
func Records(records []models.Record) string {
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, append([]string{strconv.Itoa(i)}, r.Fields()...))
	}
	return Table(append([]string{"#"}, models.Columns()...), rows)
}

// Rows renders typed rows. The first column is the row's index within this
// view; the second is its position in the store.
func Rows(rows []models.Row, symbol string) string {
	out := make([][]string, 0, len(rows))
	for i, r := range rows {
		out = append(out, []string{
			strconv.Itoa(i),
			strconv.Itoa(r.Position),
			displayDate(r),
			displayAmount(r, symbol),
			r.Category,
			r.PaymentMethod,
		})
	}
	return Table([]string{"Row", "Position", models.ColumnDate, models.ColumnAmount, models.ColumnCategory, models.ColumnPaymentMethod}, out)
}

func displayDate(r models.Row) string {
	if !r.HasDate() {
		return r.Source.Date
	}
	return dateutils.ToISODate(r.Date)
}

func displayAmount(r models.Row, symbol string) string {
	if !r.Amount.Valid {
		return "n/a"
	}
	return models.FormatMoney(r.Amount.Decimal, symbol)
}

// CategoryTotals renders the category spending report.
func CategoryTotals(totals []models.CategoryTotal, symbol string) string {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{t.Category, models.FormatMoney(t.Total, symbol)})
	}
	return Table([]string{"Category", "Total Amount"}, rows)
}

// PeriodTotals renders daily or monthly totals under a period heading.
func PeriodTotals(heading string, totals []analysis.PeriodTotal, symbol string) string {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{t.Period, models.FormatMoney(t.Total, symbol)})
	}
	return Table([]string{heading, "Total Amount"}, rows)
}

// Shares renders the category breakdown with percentages.
func Shares(shares []analysis.CategoryShare, symbol string) string {
	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{s.Category, models.FormatMoney(s.Total, symbol), s.Percent.StringFixed(1) + "%"})
	}
	return Table([]string{"Category", "Total Amount", "Share"}, rows)
}

// Summary renders the headline figures as a bullet list.
func Summary(s analysis.Summary, symbol string) string {
	most := s.MostCommonCategory
	if most == "" {
		most = "-"
	}
	return fmt.Sprintf("- **Total Expenses:** %s\n- **Avg. Daily Spending:** %s\n- **Most Common Category:** %s\n- **Total Transactions:** %d\n",
		models.FormatMoney(s.Total, symbol),
		models.FormatMoney(s.AverageDaily, symbol),
		cell(most),
		s.Transactions)
}

// Section prefixes body with a level-two heading.
func Section(title, body string) string {
	return fmt.Sprintf("## %s\n\n%s\n", title, body)
}
