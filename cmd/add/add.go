// Package add implements the add command.
package add

import (
	"fmt"

	"fjacquet/expense-tracker/cmd/common"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/dateutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/validation"

	"github.com/spf13/cobra"
)

var (
	date     string
	amount   string
	category string
	method   string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new expense",
	Long: `Add a new expense to the store.

The date defaults to today. The amount must be at least entry.min_amount and is
stored with two decimals. The payment method must be one of entry.payment_methods.`,
	Example: `  expense-tracker add --amount 250 --category Food --method UPI
  expense-tracker add --date 2024-03-01 --amount 1200 --category Rent --method "Bank Transfer"`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&date, "date", "d", "", "Expense date (default today)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount spent")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category, e.g. Food")
	Cmd.Flags().StringVarP(&method, "method", "m", models.PaymentCash, "Payment method")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("category")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	cfg := c.GetConfig()

	day, err := common.ParseDay(date)
	if err != nil {
		return err
	}
	value, err := validation.Amount(amount, cfg.MinimumAmount())
	if err != nil {
		return err
	}
	cat, err := validation.Category(category)
	if err != nil {
		return err
	}
	payment, err := validation.PaymentMethod(method, cfg.Entry.PaymentMethods)
	if err != nil {
		return err
	}

	isoDate := dateutils.ToISODate(day)
	if !c.GetTracker().Append(isoDate, value, cat, payment) {
		return fmt.Errorf("there was an error saving the expense")
	}

	c.GetLogger().Info("Expense added",
		logging.F(logging.FieldDate, isoDate),
		logging.F(logging.FieldCategory, cat))
	common.Println(cmd, "Expense added successfully!")
	return nil
}
