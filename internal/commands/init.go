package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/accounts"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/config"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/journal"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new accounting workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name string) error {
	if err := os.MkdirAll(filepath.Join(dir, "accounts"), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, "unified.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the chart override files with the built-in defaults so they can
	// be edited in place.
	if err := writeChart(filepath.Join(dir, cfg.Charts.IncomePath), accounts.DefaultIncomeChart()); err != nil {
		return err
	}
	if err := writeChart(filepath.Join(dir, cfg.Charts.BalancePath), accounts.DefaultBalanceChart()); err != nil {
		return err
	}

	// Empty journal with header.
	journalPath := filepath.Join(dir, cfg.Journal.Path)
	if _, err := os.Stat(journalPath); os.IsNotExist(err) {
		if err := os.WriteFile(journalPath, []byte(journal.Header+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing journal: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized workspace for %q in %s\n", name, dir)
	return nil
}

func writeChart(path string, chart map[string]accounts.Category) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := accounts.WriteChart(f, chart); err != nil {
		return fmt.Errorf("writing chart %s: %w", path, err)
	}
	return nil
}
