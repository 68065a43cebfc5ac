package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/debtflow-backend/internal/usecase/amortization"
)

// newLoanCommand amortizes a standalone loan; it needs no portfolio
func newLoanCommand() *cobra.Command {
	var (
		balance  decimal.Decimal
		rate     decimal.Decimal
		payment  decimal.Decimal
		term     int
		schedule bool
	)

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Amortize a single loan",
		Long:  "Amortize a loan with a fixed monthly payment. With --term and no --payment, the level payment for that term is computed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("payment") {
				if term <= 0 {
					return fmt.Errorf("either --payment or --term is required")
				}
				level, err := amortization.CalculateMonthlyPayment(balance, rate, term)
				if err != nil {
					return err
				}
				payment = level
			}

			result, err := amortization.CalculateSchedule(balance, rate, payment, term)
			if err != nil {
				return err
			}
			details := result.Details

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderTitle("LOAN  "+FormatMoney(details.Balance)+" @ "+FormatRate(details.InterestRate)))
			fmt.Fprintln(out)
			fmt.Fprint(out, RenderTable(Table{
				Headers: []string{"Metric", "Value"},
				Rows: [][]string{
					{"Monthly Payment", FormatMoney(details.MonthlyPayment)},
					{"Term", FormatMonths(details.TermMonths)},
					{"Total Interest", FormatMoney(details.TotalInterestPaid)},
					{"Total Paid", FormatMoney(details.TotalPaid)},
				},
			}))
			if schedule {
				fmt.Fprintln(out)
				fmt.Fprint(out, renderPayments("Schedule", result.Payments))
			}
			return nil
		},
	}

	cmd.Flags().Var(newDecimalValue(&balance), "balance", "Loan balance")
	cmd.Flags().Var(newDecimalValue(&rate), "rate", "Annual interest rate in percent")
	cmd.Flags().Var(newDecimalValue(&payment), "payment", "Monthly payment")
	cmd.Flags().IntVar(&term, "term", 0, "Term in months (0 runs until paid off)")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "Print the month-by-month schedule")
	_ = cmd.MarkFlagRequired("balance")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}
