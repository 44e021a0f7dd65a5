// Package commands wires the financedash CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/desco97/financedashboard/internal/buildinfo"
	"github.com/desco97/financedashboard/internal/config"
	"github.com/desco97/financedashboard/internal/ledger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var projectDir string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "financedash",
		Short:   "Bank statement ingestion and personal finance ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVar(&projectDir, "dir", ".", "project directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics")

	rootCmd.AddCommand(newInitCommand(&projectDir))
	rootCmd.AddCommand(newImportCommand(&projectDir))
	rootCmd.AddCommand(newStatementsCommand(&projectDir))
	rootCmd.AddCommand(newRecategorizeCommand(&projectDir))
	rootCmd.AddCommand(newReportCommand(&projectDir))
	rootCmd.AddCommand(newTaxCommand(&projectDir))

	return rootCmd
}

// project is the loaded state every command after init operates on.
type project struct {
	dir     string
	dataDir string
	cfg     *config.Config
	ledger  *ledger.Service
}

func loadProject(dir string) (*project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.Filename))
	if err != nil {
		return nil, fmt.Errorf("loading project (did you run financedash init?): %w", err)
	}

	dataDir := cfg.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(absDir, dataDir)
	}

	svc := ledger.NewService(dataDir)
	if err := svc.Load(); err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	return &project{dir: absDir, dataDir: dataDir, cfg: cfg, ledger: svc}, nil
}
