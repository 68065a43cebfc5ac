package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/debtflow-backend/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPayoffCommand(t *testing.T) {
	path := writePortfolio(t, samplePortfolio)

	out, err := run(t, "-f", path, "payoff", "--extra", "50", "--debt", "Big Card", "--debt", "Small Card")
	require.NoError(t, err)
	assert.Contains(t, out, "PAYOFF PLAN")
	assert.Contains(t, out, "AVALANCHE")
	assert.Contains(t, out, "$34.16")
	assert.Contains(t, out, "$634.16")
	assert.Contains(t, out, "Recommended strategy:")

	out, err = run(t, "-f", path, "payoff", "--extra", "50", "--debt", "Big Card", "--debt", "Small Card", "--schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly Breakdown")

	_, err = run(t, "-f", path, "payoff", "--strategy", "fastest")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = run(t, "-f", path, "payoff", "--debt", "Mortgage")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRefinanceCommand(t *testing.T) {
	path := writePortfolio(t, samplePortfolio)

	out, err := run(t, "-f", path, "refinance", "car", "--rate", "7", "--fees", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Car")

	_, err = run(t, "-f", path, "refinance", "car")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate")
}

func TestConsolidateCommand(t *testing.T) {
	path := writePortfolio(t, samplePortfolio)

	out, err := run(t, "-f", path, "consolidate", "--debt", "Big Card", "--debt", "Small Card", "--rate", "8", "--term", "24")
	require.NoError(t, err)
	assert.Contains(t, out, "Current Debts")
	assert.Contains(t, out, "$500.00")
	assert.Contains(t, out, "2y")

	_, err = run(t, "-f", writePortfolio(t, samplePortfolio), "consolidate", "--rate", "8")
	require.Error(t, err)
}

func TestUtilizationCommand(t *testing.T) {
	out, err := run(t, "-f", writePortfolio(t, samplePortfolio), "utilization")
	require.NoError(t, err)
	assert.Contains(t, out, "25.00%")
	assert.Contains(t, out, "Small Card has no credit limit and is not counted")
}

func TestExtraCommand(t *testing.T) {
	path := writePortfolio(t, samplePortfolio)

	out, err := run(t, "-f", path, "--as-of", "2026-01-15", "extra", "Car", "--amount", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "ONE_TIME")
	assert.Contains(t, out, "2y 7m")
	assert.Contains(t, out, "2028-01-15")
	assert.Contains(t, out, "$400.88")
	assert.Contains(t, out, "22.58%")

	_, err = run(t, "-f", path, "--as-of", "15/01/2026", "extra", "Car", "--amount", "1000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")

	_, err = run(t, "-f", path, "extra", "Car", "--amount", "lots")
	require.Error(t, err)
}

func TestBulkCommand(t *testing.T) {
	out, err := run(t, "-f", writePortfolio(t, samplePortfolio), "--as-of", "2026-01-15", "bulk", "--amount", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "LUMP SUM")
	assert.Contains(t, out, "$100.00")
	assert.Contains(t, out, "ONE_TIME")
}

func TestLoanCommand(t *testing.T) {
	out, err := run(t, "loan", "--balance", "1000", "--rate", "12", "--payment", "100", "--schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "$1,000.00 @ 12%")
	assert.Contains(t, out, "11m")
	assert.Contains(t, out, "Schedule")

	out, err = run(t, "loan", "--balance", "1000", "--rate", "12", "--term", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "$88.85")
	assert.Contains(t, out, "1y")

	_, err = run(t, "loan", "--balance", "1000", "--rate", "12")
	require.Error(t, err)

	_, err = run(t, "loan", "--balance", "1000", "--rate", "12", "--payment", "10")
	var insufficient *domain.InsufficientPaymentError
	assert.ErrorAs(t, err, &insufficient)
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "-f", writePortfolio(t, samplePortfolio), "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "$5,600.00")
	assert.Contains(t, out, "$250.00")
	assert.Contains(t, out, "CREDIT_CARD")
	assert.Contains(t, out, "LOAN")
}

func TestMissingPortfolio(t *testing.T) {
	_, err := run(t, "-f", "does-not-exist.toml", "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read portfolio")
}
