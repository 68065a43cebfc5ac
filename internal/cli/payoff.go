package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/debtflow-backend/internal/domain"
	"github.com/simaogato/debtflow-backend/internal/usecase/payoff"
)

func newPayoffCommand(root *rootOptions) *cobra.Command {
	var (
		strategy string
		extra    decimal.Decimal
		debts    []string
		schedule bool
	)

	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Simulate paying off the portfolio with a strategy",
		Long: "Simulate paying off every active debt (or those named with --debt) with SNOWBALL, AVALANCHE, HIGHEST_RATE or CUSTOM ordering.\n" +
			"CUSTOM pays the debts in the order the --debt flags are given.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, portfolio, err := root.load(cmd.Context())
			if err != nil {
				return err
			}
			ids, err := portfolio.Resolve(debts)
			if err != nil {
				return err
			}

			result, err := service.CalculatePayoff(cmd.Context(), payoff.Input{
				Strategy:            domain.PayoffStrategy(strings.ToUpper(strategy)),
				ExtraMonthlyPayment: extra,
				DebtIDs:             ids,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderTitle("PAYOFF PLAN  "+string(result.Strategy)))
			fmt.Fprintln(out)

			summary := result.Summary
			rows := [][]string{
				{"Debts", strconv.Itoa(summary.TotalDebts)},
				{"Starting Balance", FormatMoney(summary.TotalStartingBalance)},
				{"Extra / month", FormatMoney(extra)},
				{"---"},
				{"Debt-free in", FormatMonths(result.TotalMonths)},
				{"Total Interest", FormatMoney(result.TotalInterestPaid)},
				{"Total Paid", FormatMoney(result.TotalPaid)},
			}
			if summary.BaselineAvailable {
				rows = append(rows,
					[]string{"---"},
					[]string{"Interest Saved", FormatMoney(summary.TotalInterestSaved)},
					[]string{"Months Saved", strconv.Itoa(summary.MonthsSaved)},
				)
			}
			fmt.Fprint(out, RenderTable(Table{Headers: []string{"Metric", "Value"}, Rows: rows}))
			fmt.Fprintln(out)

			order := make([][]string, 0, len(result.PayoffSchedule))
			for _, s := range result.PayoffSchedule {
				order = append(order, []string{
					s.DebtName,
					strconv.Itoa(s.PayoffOrder),
					FormatMoney(s.OriginalBalance),
					FormatRate(s.InterestRate),
					FormatMoney(s.MinimumPayment),
					FormatMonths(s.MonthsToPayoff),
					FormatMoney(s.TotalInterestPaid),
				})
			}
			fmt.Fprint(out, RenderTable(Table{
				Title:   "Payoff Order",
				Headers: []string{"Debt", "#", "Balance", "Rate", "Minimum", "Alone", "Interest Alone"},
				Rows:    order,
			}))

			if schedule {
				fmt.Fprintln(out)
				fmt.Fprint(out, renderPayments("Monthly Breakdown", result.MonthlyBreakdown))
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderNote("Recommended strategy: "+string(summary.RecommendedStrategy)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", string(domain.PayoffStrategyAvalanche), "SNOWBALL, AVALANCHE, HIGHEST_RATE or CUSTOM")
	cmd.Flags().Var(newDecimalValue(&extra), "extra", "Extra amount paid every month on top of the minimums")
	cmd.Flags().StringArrayVar(&debts, "debt", nil, "Debt name to include (repeatable; order for CUSTOM)")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "Print the month-by-month breakdown")
	return cmd
}

func renderPayments(title string, payments []domain.MonthlyPayment) string {
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			strconv.Itoa(p.Month),
			FormatMoney(p.TotalPayment),
			FormatMoney(p.PrincipalPaid),
			FormatMoney(p.InterestPaid),
			FormatMoney(p.RemainingBalance),
		})
	}
	return RenderTable(Table{
		Title:   title,
		Headers: []string{"Month", "Payment", "Principal", "Interest", "Remaining"},
		Rows:    rows,
	})
}
