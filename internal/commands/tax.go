package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/desco97/financedashboard/internal/tax"
)

func newTaxCommand(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tax <income>",
		Short: "Estimate tax liability for an annual income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			income, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("parsing income %q: %w", args[0], err)
			}

			p, err := loadProject(*projectDir)
			if err != nil {
				return err
			}
			brackets, err := p.cfg.TaxBrackets()
			if err != nil {
				return err
			}

			liability, err := tax.Compute(income, brackets)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BRACKET\tRATE\tTAXABLE\tTAX")
			for _, b := range liability.Breakdown {
				upper := "and above"
				if b.Bracket.Max != nil {
					upper = b.Bracket.Max.StringFixed(2)
				}
				fmt.Fprintf(w, "%s - %s\t%s%%\t%s\t%s\n",
					b.Bracket.Min.StringFixed(2), upper,
					b.Bracket.Rate.Mul(decimal.NewFromInt(100)).StringFixed(1),
					b.IncomeInBracket.StringFixed(2),
					b.TaxAmount.StringFixed(2))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nTotal tax:      %s\n", liability.TotalTax.StringFixed(2))
			fmt.Fprintf(out, "Effective rate: %s%%\n",
				liability.EffectiveRate.StringFixed(1))
			fmt.Fprintf(out, "After tax:      %s\n", income.Sub(liability.TotalTax).StringFixed(2))
			return nil
		},
	}
}
