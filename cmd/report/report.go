// Package report implements the report command.
package report

import (
	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/render"
	"fjacquet/expense-tracker/internal/report"
	"fjacquet/expense-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Show spending by category",
	Long: `Show total spending per category. Categories are compared after trimming
and title-casing, so "food" and " Food " are reported together. Rows whose
amount is not a number are left out.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "o", report.FormatText, "Output format (text, json, yaml, csv)")
}

func run(cmd *cobra.Command, args []string) error {
	if err := validation.OutputFormat(format, report.Formats()); err != nil {
		return err
	}
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	result, err := c.GetAggregator().Run()
	if err != nil {
		return err
	}
	if result.Skipped > 0 {
		c.GetLogger().Warn("Malformed records left out of the report",
			logging.F(logging.FieldSkipped, result.Skipped))
	}

	if format != report.FormatText {
		out, err := c.GetGenerator().Generate(result.Totals, format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	if len(result.Totals) == 0 {
		common.Println(cmd, "No expenses to generate a report.")
		return nil
	}
	out, err := c.GetGenerator().Generate(result.Totals, report.FormatText)
	if err != nil {
		return err
	}
	return common.PrintMarkdown(cmd, c.GetRenderer(), render.Section("Spending Report by Category", string(out)))
}
