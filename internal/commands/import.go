package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/desco97/financedashboard/internal/classify"
	"github.com/desco97/financedashboard/internal/extract"
	"github.com/desco97/financedashboard/internal/gitops"
	"github.com/desco97/financedashboard/internal/id"
	"github.com/desco97/financedashboard/internal/importlog"
	"github.com/desco97/financedashboard/internal/ingest"
	"github.com/desco97/financedashboard/internal/normalize"
)

const importPreviewRows = 5

func newImportCommand(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <statement>...",
		Short: "Import bank statement files into the ledger",
		Long: `Import one or more bank statement files (CSV, XLSX or PDF) into the
ledger. Column roles are detected automatically; rows already present in the
ledger are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*projectDir)
			if err != nil {
				return err
			}
			for _, path := range args {
				if err := runImport(cmd, p, path); err != nil {
					return fmt.Errorf("importing %s: %w", path, err)
				}
			}
			return nil
		},
	}
}

func runImport(cmd *cobra.Command, p *project, path string) error {
	tables, err := extract.DefaultRegistry().FromFile(path)
	if err != nil {
		return err
	}

	processor := ingest.NewProcessor(classify.NewDefault(p.cfg.Taxonomy()), slog.Default())
	statementID := id.NewStatementID(path, time.Now())

	res, err := processor.Process(tables, path, statementID)
	if err != nil {
		return err
	}

	added, err := p.ledger.Merge(res.Batch, res.Transactions)
	if err != nil {
		return err
	}

	rec := importlog.Record{
		Timestamp:    res.Batch.ImportedAt,
		SourceFile:   path,
		StatementID:  statementID,
		Transactions: len(res.Transactions),
		Added:        added,
		Dropped:      res.Dropped,
	}

	if added > 0 && p.cfg.Git.AutoCommit && gitops.IsRepo(p.dataDir) {
		hash, err := gitops.CommitAll(p.dataDir, "import: "+statementID, p.cfg.Git.AuthorName, p.cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("committing data dir: %w", err)
		}
		rec.CommitHash = hash
	}

	if err := importlog.Append(p.dataDir, rec); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d transactions (%d new, %d duplicate, %d dropped)\n",
		path, len(res.Transactions), added, len(res.Transactions)-added, res.Dropped)

	for i, tx := range res.Transactions {
		if i == importPreviewRows {
			fmt.Fprintf(out, "  ... and %d more\n", len(res.Transactions)-importPreviewRows)
			break
		}
		fmt.Fprintf(out, "  %s  %-30s  %10s  %s/%s\n",
			tx.Date.Format("2006-01-02"),
			normalize.DisplayName(tx.Description),
			tx.Amount.StringFixed(2),
			tx.Category, tx.Subcategory)
	}
	return nil
}
