package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStatsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the active debts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, _, err := root.load(cmd.Context())
			if err != nil {
				return err
			}

			stats, err := service.GetDebtStatistics(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderTitle("DEBT OVERVIEW"))
			fmt.Fprintln(out)
			fmt.Fprint(out, RenderTable(Table{
				Headers: []string{"Metric", "Value"},
				Rows: [][]string{
					{"Active Debts", strconv.Itoa(stats.TotalDebts)},
					{"Total Debt", FormatMoney(stats.TotalDebt)},
					{"Minimum Payments", FormatMoney(stats.TotalMinimumPayment)},
					{"Average Rate", FormatRate(stats.AverageInterestRate)},
					{"Highest Rate", FormatRate(stats.HighestInterestRate)},
				},
			}))

			if len(stats.DebtByType) > 0 {
				rows := make([][]string, 0, len(stats.DebtByType))
				for _, b := range stats.DebtByType {
					rows = append(rows, []string{string(b.Type), strconv.Itoa(b.Count), FormatMoney(b.TotalBalance), FormatMoney(b.TotalMinimumPayment)})
				}
				fmt.Fprintln(out)
				fmt.Fprint(out, RenderTable(Table{
					Title:   "By Type",
					Headers: []string{"Type", "Count", "Balance", "Minimums"},
					Rows:    rows,
				}))
			}
			return nil
		},
	}
}
