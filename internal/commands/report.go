package commands

import (
	"github.com/spf13/cobra"

	"github.com/jawadberjawi/UnifiedAccountingProject/internal/ledger"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/render"
	"github.com/jawadberjawi/UnifiedAccountingProject/internal/reports"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate financial reports",
	}

	cmd.AddCommand(newTrialBalanceCommand())
	cmd.AddCommand(newLedgerCommand())
	cmd.AddCommand(newIncomeCommand())
	cmd.AddCommand(newBalanceSheetCommand())

	return cmd
}

func newTrialBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trial-balance",
		Short: "Total debits and credits over approved entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd)
			if err != nil {
				return err
			}

			tb := reports.TrialBalance(ws.journal.Entries())
			render.TrialBalance(cmd.OutOrStdout(), tb)
			return nil
		},
	}
}

func newLedgerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger [account]",
		Short: "General ledger with running balances",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd)
			if err != nil {
				return err
			}

			led := ledger.Build(ws.journal.Entries())
			if len(args) == 1 {
				render.LedgerAccount(cmd.OutOrStdout(), led, args[0])
			} else {
				render.GeneralLedger(cmd.OutOrStdout(), led)
			}
			return nil
		},
	}
}

func newIncomeCommand() *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Income statement for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd)
			if err != nil {
				return err
			}

			from, err := parseDate(fromStr)
			if err != nil {
				return err
			}
			to, err := parseDate(toStr)
			if err != nil {
				return err
			}

			clf, err := ws.incomeClassifier()
			if err != nil {
				return err
			}

			is, err := reports.Income(ws.journal.Entries(), from, to, clf)
			if err != nil {
				return err
			}

			render.IncomeStatement(cmd.OutOrStdout(), is)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "period start YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&toStr, "to", "", "period end YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newBalanceSheetCommand() *cobra.Command {
	var asOfStr, incomeFromStr, incomeToStr string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Balance sheet as of a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd)
			if err != nil {
				return err
			}

			asOf, err := parseDate(asOfStr)
			if err != nil {
				return err
			}

			// An accompanying income statement is optional; without one the
			// sheet carries no net-income equity line.
			var is *reports.IncomeStatement
			if incomeFromStr != "" || incomeToStr != "" {
				from, err := parseDate(incomeFromStr)
				if err != nil {
					return err
				}
				to, err := parseDate(incomeToStr)
				if err != nil {
					return err
				}

				incomeClf, err := ws.incomeClassifier()
				if err != nil {
					return err
				}
				is, err = reports.Income(ws.journal.Entries(), from, to, incomeClf)
				if err != nil {
					return err
				}
			}

			clf, err := ws.balanceClassifier()
			if err != nil {
				return err
			}

			bs, err := reports.Balance(ws.journal.Entries(), asOf, is, clf)
			if err != nil {
				return err
			}

			render.BalanceSheet(cmd.OutOrStdout(), bs)
			return nil
		},
	}

	cmd.Flags().StringVar(&asOfStr, "as-of", "", "snapshot date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&incomeFromStr, "income-from", "", "income statement period start")
	cmd.Flags().StringVar(&incomeToStr, "income-to", "", "income statement period end")
	_ = cmd.MarkFlagRequired("as-of")

	return cmd
}
