// Package list implements the list command.
package list

import (
	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/render"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List all expenses",
	Long: `List every expense in file order. The first column is the record's
position, which the delete command accepts with --position.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	records := c.GetTracker().ReadAll()
	if len(records) == 0 {
		common.Println(cmd, "No expenses found. Add one with the add command.")
		return nil
	}
	return common.PrintMarkdown(cmd, c.GetRenderer(), render.Section("All Expenses", render.Records(records)))
}
