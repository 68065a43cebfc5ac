package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/debtflow-backend/internal/usecase/refinance"
)

func newRefinanceCommand(root *rootOptions) *cobra.Command {
	var (
		rate decimal.Decimal
		fees decimal.Decimal
		term int
	)

	cmd := &cobra.Command{
		Use:   "refinance <debt>",
		Short: "Compare a debt against a refinancing offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, portfolio, err := root.load(cmd.Context())
			if err != nil {
				return err
			}
			id, err := portfolio.ResolveOne(args[0])
			if err != nil {
				return err
			}

			input := refinance.Input{NewInterestRate: rate, RefinancingFees: fees}
			if cmd.Flags().Changed("term") {
				input.NewTermMonths = &term
			}

			result, err := service.CompareRefinancing(cmd.Context(), id, input)
			if err != nil {
				return err
			}

			current, refinanced := result.CurrentLoan, result.RefinancedLoan
			breakEven := "n/a"
			if result.BreakEvenMonth != nil {
				breakEven = "month " + strconv.Itoa(*result.BreakEvenMonth)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderTitle("REFINANCE  "+portfolio.Name(id)))
			fmt.Fprintln(out)
			fmt.Fprint(out, RenderTable(Table{
				Headers: []string{"", "Current", "Refinanced"},
				Rows: [][]string{
					{"Rate", FormatRate(current.InterestRate), FormatRate(refinanced.InterestRate)},
					{"Monthly Payment", FormatMoney(current.MonthlyPayment), FormatMoney(refinanced.MonthlyPayment)},
					{"Term", FormatMonths(current.TermMonths), FormatMonths(refinanced.TermMonths)},
					{"Total Interest", FormatMoney(current.TotalInterestPaid), FormatMoney(refinanced.TotalInterestPaid)},
					{"Total Paid", FormatMoney(current.TotalPaid), FormatMoney(refinanced.TotalPaid)},
					{"---"},
					{"Fees", "", FormatMoney(result.Fees)},
					{"Total Savings", "", FormatMoney(result.Comparison.TotalSavings)},
					{"Break-even", "", breakEven},
				},
			}))
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderVerdict(result.Recommendation, result.Comparison.IsWorthIt))
			return nil
		},
	}

	cmd.Flags().Var(newDecimalValue(&rate), "rate", "New annual interest rate in percent")
	cmd.Flags().Var(newDecimalValue(&fees), "fees", "Up-front refinancing fees")
	cmd.Flags().IntVar(&term, "term", 0, "New term in months (default: keep the current payoff horizon)")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}
