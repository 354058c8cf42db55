package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/render"
)

func newListCommand() *cobra.Command {
	var (
		status       string
		createdBy    string
		minAmountStr string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd)
			if err != nil {
				return err
			}

			var minAmount *decimal.Decimal
			if minAmountStr != "" {
				d, err := decimal.NewFromString(minAmountStr)
				if err != nil {
					return fmt.Errorf("invalid minimum amount %q: %w", minAmountStr, err)
				}
				minAmount = &d
			}

			entries := ws.journal.Filter(status, createdBy, minAmount)
			render.Entries(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&createdBy, "created-by", "", "filter by creator")
	cmd.Flags().StringVar(&minAmountStr, "min-amount", "", "filter by minimum amount")

	return cmd
}
