package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/desco97/financedashboard/internal/gitops"
)

func newRecategorizeCommand(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "recategorize <description> <category> <subcategory>",
		Short: "Reassign every transaction with a matching description",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*projectDir)
			if err != nil {
				return err
			}

			desc, category, subcategory := args[0], args[1], args[2]
			if !p.cfg.Taxonomy().Has(category) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not a configured category\n", category)
			}

			changed, err := p.ledger.Recategorize(desc, category, subcategory)
			if err != nil {
				return err
			}
			if changed == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No transactions match %q\n", desc)
				return nil
			}

			if p.cfg.Git.AutoCommit && gitops.IsRepo(p.dataDir) {
				msg := fmt.Sprintf("recategorize: %s -> %s/%s", desc, category, subcategory)
				if _, err := gitops.CommitAll(p.dataDir, msg, p.cfg.Git.AuthorName, p.cfg.Git.AuthorEmail); err != nil {
					return fmt.Errorf("committing data dir: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recategorized %d transaction(s) as %s/%s\n", changed, category, subcategory)
			return nil
		},
	}
}
