package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/accounts"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/buildinfo"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/config"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/journal"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "unified",
		Short:   "Double-entry journal and financial statements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "unified.yaml", "path to unified.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}

// workspace bundles the loaded config and journal for a command invocation.
type workspace struct {
	cfg     *config.Config
	journal *journal.Service
	baseDir string
}

// loadWorkspace reads the config named by --config and loads the journal it
// points at. Relative paths in the config resolve against the config file's
// directory.
func loadWorkspace(cmd *cobra.Command) (*workspace, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(configPath)
	svc := journal.NewService(resolve(baseDir, cfg.Journal.Path))
	if err := svc.Load(); err != nil {
		return nil, err
	}

	return &workspace{cfg: cfg, journal: svc, baseDir: baseDir}, nil
}

// incomeClassifier builds the income-statement classifier, layering the
// configured chart file (if present) over the built-in defaults.
func (ws *workspace) incomeClassifier() (*accounts.Classifier, error) {
	overrides, err := ws.loadChart(ws.cfg.Charts.IncomePath)
	if err != nil {
		return nil, err
	}
	return accounts.NewIncomeClassifier(overrides), nil
}

// balanceClassifier builds the balance-sheet classifier the same way.
func (ws *workspace) balanceClassifier() (*accounts.Classifier, error) {
	overrides, err := ws.loadChart(ws.cfg.Charts.BalancePath)
	if err != nil {
		return nil, err
	}
	return accounts.NewBalanceClassifier(overrides), nil
}

func (ws *workspace) loadChart(path string) (map[string]accounts.Category, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(resolve(ws.baseDir, path))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening chart %s: %w", path, err)
	}
	defer f.Close()

	chart, err := accounts.ReadChart(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart %s: %w", path, err)
	}
	return chart, nil
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// parseDate parses a YYYY-MM-DD flag value. An empty value returns the zero
// time so report generators can reject missing dates themselves.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return d, nil
}
