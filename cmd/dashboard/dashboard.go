// Package dashboard implements the dashboard command.
package dashboard

import (
	"strings"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/analysis"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/render"

	"github.com/spf13/cobra"
)

var (
	from       string
	to         string
	categories []string
	methods    []string
)

// Cmd represents the dashboard command
var Cmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show spending insights",
	Long: `Show a summary of spending with daily and monthly trends and a category
breakdown. The date range defaults to the first and last recorded dates;
category and payment method filters default to all values.`,
	Example: `  expense-tracker dashboard --from 2024-01-01 --to 2024-01-31
  expense-tracker dashboard --category Food --category Travel --method UPI`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVar(&from, "from", "", "First date of the range (default earliest expense)")
	Cmd.Flags().StringVar(&to, "to", "", "Last date of the range (default latest expense)")
	Cmd.Flags().StringSliceVar(&categories, "category", nil, "Category to include (repeatable)")
	Cmd.Flags().StringSliceVar(&methods, "method", nil, "Payment method to include (repeatable)")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	table := c.GetTracker().ReadAsTable()
	if table.IsEmpty() {
		common.Println(cmd, "No data available to create visualizations. Please add some expenses first.")
		return nil
	}

	filter := analysis.Filter{Categories: categories, PaymentMethods: methods}
	if filter.From, err = common.ParseOptionalDay(from); err != nil {
		return err
	}
	if filter.To, err = common.ParseOptionalDay(to); err != nil {
		return err
	}
	if minDate, maxDate, ok := analysis.Bounds(table); ok {
		if filter.From.IsZero() {
			filter.From = minDate
		}
		if filter.To.IsZero() {
			filter.To = maxDate
		}
	}

	filtered := filter.Apply(table)
	c.GetLogger().Debug("Dashboard filter applied",
		logging.F(logging.FieldRows, table.Len()),
		logging.F(logging.FieldCount, filtered.Len()))
	if filtered.IsEmpty() {
		common.Println(cmd, "No data matches the selected filters. Please adjust your selections.")
		return nil
	}

	symbol := c.GetConfig().Display.CurrencySymbol
	var b strings.Builder
	b.WriteString("# Your Spending Insights\n\n")
	b.WriteString(render.Section("Quick Summary", render.Summary(analysis.Summarize(filtered, filter.From, filter.To), symbol)))
	b.WriteString(render.Section("Daily Spending Trend", render.PeriodTotals("Date", analysis.DailyTotals(filtered), symbol)))
	b.WriteString(render.Section("Monthly Spending Trend", render.PeriodTotals("Month", analysis.MonthlyTotals(filtered), symbol)))
	b.WriteString(render.Section("Spending by Category", render.Shares(analysis.CategoryShares(filtered), symbol)))
	return common.PrintMarkdown(cmd, c.GetRenderer(), b.String())
}
