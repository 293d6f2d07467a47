// Package remove implements the delete command.
package remove

import (
	"fmt"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/analysis"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/store"

	"github.com/spf13/cobra"
)

var (
	date     string
	row      int
	position int
)

// Cmd represents the delete command
var Cmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete an expense record",
	Long: `Delete one expense. Either pick a row of one day's view, as numbered by
the daily command, with --date and --row, or give the record's position from
the list command with --position. Records after the deleted one move up by one
position.`,
	Example: `  expense-tracker delete --date 2024-03-01 --row 0
  expense-tracker delete --position 12`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Date whose expenses are numbered by --row (default today)")
	Cmd.Flags().IntVarP(&row, "row", "r", store.NoPosition, "Row number within the day, starting from 0")
	Cmd.Flags().IntVarP(&position, "position", "p", store.NoPosition, "Position of the record in the store, starting from 0")
	Cmd.MarkFlagsMutuallyExclusive("row", "position")
	Cmd.MarkFlagsOneRequired("row", "position")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	tr := c.GetTracker()

	table := tr.ReadAsTable()
	if table.IsEmpty() {
		common.Println(cmd, "No expenses available to delete.")
		return nil
	}

	target := position
	if cmd.Flags().Changed("row") {
		day, err := common.ParseDay(date)
		if err != nil {
			return err
		}
		daily := analysis.OnDate(table, day)
		if daily.IsEmpty() {
			common.Println(cmd, "No expenses found for %s.", dateutils.ToISODate(day))
			return nil
		}
		target = store.NoPosition
		if row >= 0 && row < daily.Len() {
			target = daily.Rows[row].Position
		}
	}

	if !tr.DeleteAt(table, target) {
		return fmt.Errorf("could not delete the record, please check the row number")
	}

	c.GetLogger().Info("Expense deleted", logging.F(logging.FieldPosition, target))
	common.Println(cmd, "Record deleted successfully!")
	return nil
}
