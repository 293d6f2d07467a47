// Package roottest wires the root command to a throwaway store for command tests.
package roottest

import (
	"path/filepath"
	"testing"

	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

// UseTestContainer points root.AppContainer at a plain-text container over a
// fresh store in a temp dir for the duration of the test. It returns the
// container and the store path.
func UseTestContainer(t testing.TB) (*container.Container, string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Store.File = filepath.Join(t.TempDir(), "expenses.csv")
	cfg.Display.CurrencySymbol = "₹"
	cfg.Display.Style = "notty"
	cfg.Entry.MinAmount = "1.00"
	cfg.Entry.PaymentMethods = models.PaymentMethods()

	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	if err != nil {
		t.Fatalf("failed to build test container: %v", err)
	}

	original := root.AppContainer
	root.AppContainer = c
	t.Cleanup(func() { root.AppContainer = original })
	return c, cfg.Store.File
}
