package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/debtflow-backend/internal/usecase/extrapayment"
)

func newExtraCommand(root *rootOptions) *cobra.Command {
	var (
		amount   decimal.Decimal
		payments int
	)

	cmd := &cobra.Command{
		Use:   "extra <debt>",
		Short: "Measure the effect of an extra payment on one debt",
		Long: "Measure a one-time lump sum against a debt, or with --payments a recurring monthly addition.\n" +
			"The projection starts at --as-of, or today.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, portfolio, err := root.load(cmd.Context())
			if err != nil {
				return err
			}
			id, err := portfolio.ResolveOne(args[0])
			if err != nil {
				return err
			}
			asOf, err := root.asOfDate()
			if err != nil {
				return err
			}

			input := extrapayment.Input{ExtraPaymentAmount: amount, AsOf: asOf}
			if cmd.Flags().Changed("payments") {
				input.NumberOfPayments = &payments
			}

			result, err := service.AnalyzeExtraPayment(cmd.Context(), id, input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderTitle("EXTRA PAYMENT  "+result.DebtName))
			fmt.Fprintln(out)
			fmt.Fprint(out, renderExtraPayment(result))
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderVerdict(result.Recommendation, result.Impact.InterestSaved.IsPositive()))
			return nil
		},
	}

	cmd.Flags().Var(newDecimalValue(&amount), "amount", "Extra payment amount")
	cmd.Flags().IntVar(&payments, "payments", 0, "Make the extra payment recurring every month")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func renderExtraPayment(result *extrapayment.Result) string {
	without, with := result.WithoutExtraPayment, result.WithExtraPayment
	return RenderTable(Table{
		Headers: []string{string(result.Mode), "Without", "With"},
		Rows: [][]string{
			{"Monthly Payment", FormatMoney(without.MonthlyPayment), FormatMoney(with.MonthlyPayment)},
			{"Payoff Time", FormatMonths(without.MonthsToPayoff), FormatMonths(with.MonthsToPayoff)},
			{"Payoff Date", formatDate(without.PayoffDate), formatDate(with.PayoffDate)},
			{"Total Interest", FormatMoney(without.TotalInterestPaid), FormatMoney(with.TotalInterestPaid)},
			{"Total Paid", FormatMoney(without.TotalPaid), FormatMoney(with.TotalPaid)},
			{"---"},
			{"Months Saved", "", strconv.Itoa(result.Impact.MonthsSaved)},
			{"Interest Saved", "", FormatMoney(result.Impact.InterestSaved)},
			{"Faster by", "", FormatPercent(result.Impact.PercentageFaster)},
		},
	})
}
