package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUtilizationCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "utilization",
		Short: "Report credit utilization across credit cards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, _, err := root.load(cmd.Context())
			if err != nil {
				return err
			}

			result, err := service.GetCreditUtilization(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderTitle("CREDIT UTILIZATION"))
			fmt.Fprintln(out)

			rows := make([][]string, 0, len(result.UtilizationByCard)+2)
			for _, c := range result.UtilizationByCard {
				rows = append(rows, []string{c.CardName, FormatMoney(c.CurrentBalance), FormatMoney(c.CreditLimit), FormatPercent(c.Utilization), RenderBand(string(c.Band))})
			}
			rows = append(rows,
				[]string{"---"},
				[]string{"Total", FormatMoney(result.TotalUsedCredit), FormatMoney(result.TotalCreditLimit), FormatPercent(result.UtilizationPercentage), RenderBand(string(result.Band))},
			)
			fmt.Fprint(out, RenderTable(Table{
				Headers: []string{"Card", "Balance", "Limit", "Used", "Band"},
				Rows:    rows,
			}))

			for _, m := range result.CardsMissingLimit {
				fmt.Fprintln(out, RenderNote(m.CardName+" has no credit limit and is not counted"))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderNote(result.Recommendation))
			fmt.Fprintln(out, RenderNote(result.ImpactOnCreditScore))
			return nil
		},
	}
}
