// Package daily implements the daily command.
package daily

import (
	"fmt"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/analysis"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/render"

	"github.com/spf13/cobra"
)

var date string

// Cmd represents the daily command
var Cmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the expenses of one day",
	Long: `Show the expenses recorded for one date (default today) and their total.
The Row column numbers the day's expenses for the delete command.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Date to show (default today)")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	day, err := common.ParseDay(date)
	if err != nil {
		return err
	}

	table := c.GetTracker().ReadAsTable()
	if table.IsEmpty() {
		common.Println(cmd, "No data available to filter. Please add expenses first.")
		return nil
	}

	iso := dateutils.ToISODate(day)
	daily := analysis.OnDate(table, day)
	if daily.IsEmpty() {
		common.Println(cmd, "No expenses found for %s.", iso)
		return nil
	}

	symbol := c.GetConfig().Display.CurrencySymbol
	body := fmt.Sprintf("%s\nTotal spending on %s: **%s**\n",
		render.Rows(daily.Rows, symbol),
		iso,
		models.FormatMoney(analysis.Total(daily), symbol))
	return common.PrintMarkdown(cmd, c.GetRenderer(), render.Section("Expenses on "+iso, body))
}
