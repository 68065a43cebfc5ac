package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/debtflow-backend/internal/usecase/debt"
)

type rootOptions struct {
	portfolio string
	asOf      string
}

// NewRootCommand builds the debtcalc command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "debtcalc",
		Short:         "Debt payoff and amortization calculator",
		Long:          "Simulate payoff strategies, refinancing, consolidation and extra payments for a debt portfolio described in a TOML file.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.portfolio, "portfolio", "f", "debts.toml", "TOML file with [[debt]] tables")
	root.PersistentFlags().StringVar(&opts.asOf, "as-of", "", "Projection start date, YYYY-MM-DD (default today)")

	root.AddCommand(
		newPayoffCommand(opts),
		newRefinanceCommand(opts),
		newConsolidateCommand(opts),
		newUtilizationCommand(opts),
		newExtraCommand(opts),
		newBulkCommand(opts),
		newLoanCommand(),
		newStatsCommand(opts),
	)
	return root
}

// Execute is the main entry point called from main.go.
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), renderError(err))
		os.Exit(1)
	}
}

// load reads the portfolio and wires a service over it
func (o *rootOptions) load(ctx context.Context) (*debt.Service, *Portfolio, error) {
	portfolio, err := LoadPortfolio(ctx, o.portfolio)
	if err != nil {
		return nil, nil, err
	}
	return debt.NewService(portfolio.Repo), portfolio, nil
}

func (o *rootOptions) asOfDate() (time.Time, error) {
	if o.asOf == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, o.asOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of date %q: use YYYY-MM-DD", o.asOf)
	}
	return t, nil
}

// decimalValue lets decimal amounts be cobra flags
type decimalValue struct {
	d *decimal.Decimal
}

func newDecimalValue(d *decimal.Decimal) decimalValue {
	return decimalValue{d: d}
}

func (v decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a decimal amount: %q", s)
	}
	*v.d = d
	return nil
}

func (v decimalValue) Type() string {
	return "decimal"
}
