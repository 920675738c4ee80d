package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neonfinance/neon/internal/cli"
	"github.com/neonfinance/neon/internal/common"
	"github.com/neonfinance/neon/internal/ledger"
	"github.com/neonfinance/neon/internal/ofx"
	"github.com/neonfinance/neon/internal/storage"
)

func importCmd() *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import transactions from an OFX/QFX bank export",
		Long: `Parse a bank statement and record its transactions against a ledger
account. Debits become expenses and credits become income. Statement entries
already present in the log (same ID) are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer file.Close()

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if _, ok := state.Accounts[accountID]; !ok {
				return fmt.Errorf("%w: account %q", common.ErrNotFound, accountID)
			}

			parsed, err := ofx.NewParser().ParseFile(ctx, file, accountID)
			if err != nil {
				return err
			}
			if len(parsed) == 0 {
				fmt.Println(cli.FormatInfo("No transactions found in the file."))
				return nil
			}

			seen := make(map[string]bool, len(state.Transactions))
			for _, tx := range state.Transactions {
				seen[tx.ID] = true
			}

			var imported, skipped int
			for _, tx := range parsed {
				if tx.ID != "" && seen[tx.ID] {
					skipped++
					continue
				}
				state, err = ledger.Record(state, tx)
				if err != nil {
					return fmt.Errorf("failed to record %q: %w", tx.Description, err)
				}
				imported++
			}

			if err := storage.SaveState(ctx, store, state); err != nil {
				return err
			}

			msg := fmt.Sprintf("Imported %d transactions", imported)
			if skipped > 0 {
				msg += fmt.Sprintf(" (%d already present)", skipped)
			}
			fmt.Println(cli.FormatSuccess(msg))
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "ledger account to record against (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
