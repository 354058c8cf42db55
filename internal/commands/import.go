package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/importer"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/journal"
)

func newImportCommand() *cobra.Command {
	var format string
	var createdBy string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank CSV as pending journal entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd)
			if err != nil {
				return err
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			txs, err := parser.Parse(f)
			if err != nil {
				return err
			}

			entries := importer.ToEntries(txs, ws.cfg.Import.CashAccount, createdBy)
			all := append(ws.journal.Entries(), entries...)

			out, err := os.Create(resolve(ws.baseDir, ws.cfg.Journal.Path))
			if err != nil {
				return fmt.Errorf("writing journal: %w", err)
			}
			defer out.Close()

			if err := journal.WriteEntries(out, all); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d pending entries\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "generic", "bank CSV format")
	cmd.Flags().StringVar(&createdBy, "created-by", "import", "creator recorded on imported entries")

	return cmd
}
