package daily

import (
	"bytes"
	"testing"

	"fjacquet/expense-tracker/cmd/root/roottest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, d string) (string, error) {
	t.Helper()
	original := date
	t.Cleanup(func() { date = original })
	date = d

	var out bytes.Buffer
	Cmd.SetOut(&out)
	t.Cleanup(func() { Cmd.SetOut(nil) })
	err := Cmd.RunE(Cmd, nil)
	return out.String(), err
}

func TestDailyCommand_ShowsDayAndTotal(t *testing.T) {
	c, _ := roottest.UseTestContainer(t)
	tr := c.GetTracker()
	require.True(t, tr.Append("2024-01-01", "10.00", "Food", "Cash"))
	require.True(t, tr.Append("2024-01-02", "3.00", "Tea", "UPI"))
	require.True(t, tr.Append("2024-01-02", "4.50", "Bus", "Card"))

	out, err := execute(t, "2024-01-02")
	require.NoError(t, err)
	assert.Contains(t, out, "Expenses on 2024-01-02")
	assert.Contains(t, out, "Tea")
	assert.Contains(t, out, "Bus")
	assert.NotContains(t, out, "Food")
	assert.Contains(t, out, "7.50")
}

func TestDailyCommand_NoExpensesThatDay(t *testing.T) {
	c, _ := roottest.UseTestContainer(t)
	require.True(t, c.GetTracker().Append("2024-01-01", "10.00", "Food", "Cash"))

	out, err := execute(t, "2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, "No expenses found for 2024-02-01.\n", out)
}

func TestDailyCommand_EmptyStore(t *testing.T) {
	roottest.UseTestContainer(t)
	out, err := execute(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "No data available")
}

func TestDailyCommand_BadDate(t *testing.T) {
	roottest.UseTestContainer(t)
	_, err := execute(t, "the first")
	assert.Error(t, err)
}
