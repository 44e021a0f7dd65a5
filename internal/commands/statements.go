package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/desco97/financedashboard/internal/gitops"
)

func newStatementsCommand(projectDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Manage imported statement batches",
	}
	cmd.AddCommand(newStatementsListCommand(projectDir))
	cmd.AddCommand(newStatementsRemoveCommand(projectDir))
	return cmd
}

func newStatementsListCommand(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported statement batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*projectDir)
			if err != nil {
				return err
			}

			batches := p.ledger.Statements()
			if len(batches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No statements imported.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSOURCE\tIMPORTED\tROWS\tPERIOD")
			for _, b := range batches {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s to %s\n",
					b.ID, b.SourceFile,
					b.ImportedAt.Format("2006-01-02 15:04"),
					b.TransactionCount,
					b.DateFrom.Format("2006-01-02"), b.DateTo.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
}

func newStatementsRemoveCommand(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <statement-id>",
		Short: "Remove a statement batch and all its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*projectDir)
			if err != nil {
				return err
			}

			removed, err := p.ledger.RemoveStatement(args[0])
			if err != nil {
				return err
			}

			if p.cfg.Git.AutoCommit && gitops.IsRepo(p.dataDir) {
				if _, err := gitops.CommitAll(p.dataDir, "remove: "+args[0], p.cfg.Git.AuthorName, p.cfg.Git.AuthorEmail); err != nil {
					return fmt.Errorf("committing data dir: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%d transactions)\n", args[0], removed)
			return nil
		},
	}
}
