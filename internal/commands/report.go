package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/desco97/financedashboard/internal/normalize"
	"github.com/desco97/financedashboard/internal/report"
)

func newReportCommand(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show a financial summary of the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*projectDir)
			if err != nil {
				return err
			}

			s := report.Summarize(p.ledger.Transactions())
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Total income:    %s\n", s.TotalIncome.StringFixed(2))
			fmt.Fprintf(out, "Total outgoings: %s\n", s.TotalExpenses.StringFixed(2))
			fmt.Fprintf(out, "Net savings:     %s (%s%%)\n", s.NetSavings.StringFixed(2), s.SavingsRate.StringFixed(1))

			if len(s.ExpenseByCategory) > 0 {
				fmt.Fprintln(out, "\nOutgoings by category:")
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, cat := range sortedKeys(s.ExpenseByCategory) {
					fmt.Fprintf(w, "  %s\t%s\n", cat, s.ExpenseByCategory[cat].StringFixed(2))
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}

			if len(s.MonthlyNet) > 0 {
				fmt.Fprintln(out, "\nMonthly net:")
				for _, month := range sortedKeys(s.MonthlyNet) {
					fmt.Fprintf(out, "  %s  %s\n", month, s.MonthlyNet[month].StringFixed(2))
				}
			}

			if len(s.TopExpenses) > 0 {
				fmt.Fprintln(out, "\nLargest outgoings:")
				for _, tx := range s.TopExpenses {
					fmt.Fprintf(out, "  %s  %-30s  %s\n",
						tx.Date.Format("2006-01-02"),
						normalize.DisplayName(tx.Description),
						tx.Amount.Abs().StringFixed(2))
				}
			}
			return nil
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
