package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/journal"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/model"
)

func newAddCommand() *cobra.Command {
	var (
		dateStr       string
		debitAccount  string
		creditAccount string
		amountStr     string
		createdBy     string
		status        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd)
			if err != nil {
				return err
			}

			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			txnID, err := ws.journal.Add(journal.AddParams{
				Date:          date,
				CreatedBy:     createdBy,
				Status:        model.EntryStatus(status),
				DebitAccount:  debitAccount,
				CreditAccount: creditAccount,
				Amount:        amount,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added journal entry %s\n", txnID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "entry date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&debitAccount, "debit", "", "debit account name (required)")
	cmd.Flags().StringVar(&creditAccount, "credit", "", "credit account name (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "entry amount (required)")
	cmd.Flags().StringVar(&createdBy, "created-by", "", "creator name (required)")
	cmd.Flags().StringVar(&status, "status", string(model.StatusPending), "approved, pending, or rejected")
	for _, flag := range []string{"date", "debit", "credit", "amount", "created-by"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}
