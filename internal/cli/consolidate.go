package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/debtflow-backend/internal/usecase/consolidation"
)

func newConsolidateCommand(root *rootOptions) *cobra.Command {
	var (
		debts []string
		rate  decimal.Decimal
		term  int
		fees  decimal.Decimal
	)

	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Evaluate consolidating debts into one loan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, portfolio, err := root.load(cmd.Context())
			if err != nil {
				return err
			}
			ids, err := portfolio.Resolve(debts)
			if err != nil {
				return err
			}

			result, err := service.PlanConsolidation(cmd.Context(), consolidation.Input{
				DebtIDs:                  ids,
				ConsolidatedInterestRate: rate,
				ConsolidatedTermMonths:   term,
				ConsolidationFees:        fees,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderTitle("CONSOLIDATION"))
			fmt.Fprintln(out)

			rows := make([][]string, 0, len(result.CurrentDebts))
			for _, d := range result.CurrentDebts {
				rows = append(rows, []string{d.Name, FormatMoney(d.Balance), FormatRate(d.InterestRate), FormatMoney(d.MonthlyPayment)})
			}
			fmt.Fprint(out, RenderTable(Table{
				Title:   "Current Debts",
				Headers: []string{"Debt", "Balance", "Rate", "Payment"},
				Rows:    rows,
			}))
			fmt.Fprintln(out)

			loan, c := result.ConsolidatedLoan, result.Comparison
			fmt.Fprint(out, RenderTable(Table{
				Headers: []string{"", "Current", "Consolidated"},
				Rows: [][]string{
					{"Monthly Payment", FormatMoney(c.CurrentTotalMonthlyPayment), FormatMoney(c.ConsolidatedMonthlyPayment)},
					{"Total Interest", FormatMoney(c.CurrentTotalInterest), FormatMoney(c.ConsolidatedTotalInterest)},
					{"Term", "", FormatMonths(loan.TermMonths)},
					{"Fees", "", FormatMoney(loan.Fees)},
					{"---"},
					{"Outcome", "", string(result.Outcome)},
				},
			}))
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderVerdict(result.Recommendation, result.Outcome == consolidation.OutcomeRecommended))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&debts, "debt", nil, "Debt name to consolidate (repeatable, required)")
	cmd.Flags().Var(newDecimalValue(&rate), "rate", "Consolidated annual interest rate in percent")
	cmd.Flags().IntVar(&term, "term", 60, "Consolidated term in months")
	cmd.Flags().Var(newDecimalValue(&fees), "fees", "Consolidation fees")
	_ = cmd.MarkFlagRequired("debt")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}
