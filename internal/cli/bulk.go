package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/debtflow-backend/internal/usecase/extrapayment"
)

func newBulkCommand(root *rootOptions) *cobra.Command {
	var (
		amount decimal.Decimal
		debts  []string
	)

	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Find where a lump sum does the most good",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, portfolio, err := root.load(cmd.Context())
			if err != nil {
				return err
			}
			ids, err := portfolio.Resolve(debts)
			if err != nil {
				return err
			}
			asOf, err := root.asOfDate()
			if err != nil {
				return err
			}

			result, err := service.AnalyzeBulkExtraPayment(cmd.Context(), extrapayment.BulkInput{
				ExtraPaymentAmount: amount,
				DebtIDs:            ids,
				AsOf:               asOf,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderTitle("LUMP SUM  "+FormatMoney(result.TotalExtraPayment)))
			fmt.Fprintln(out)
			for _, impact := range result.DebtImpacts {
				fmt.Fprint(out, renderExtraPayment(impact))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderVerdict(result.Recommendation, result.TotalInterestSaved.IsPositive()))
			return nil
		},
	}

	cmd.Flags().Var(newDecimalValue(&amount), "amount", "Lump sum to apply")
	cmd.Flags().StringArrayVar(&debts, "debt", nil, "Restrict to these debt names (repeatable)")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
