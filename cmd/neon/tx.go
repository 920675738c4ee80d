package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neonfinance/neon/internal/cli"
	"github.com/neonfinance/neon/internal/common"
	"github.com/neonfinance/neon/internal/ledger"
	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
	"github.com/neonfinance/neon/internal/storage"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and list transactions",
		Long: `Record expenses, income, investments and transfers. Recording a
transaction atomically prepends it to the log and adjusts account balances.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		txType        string
		amountStr     string
		dateStr       string
		accountID     string
		toAccountID   string
		categoryID    string
		subCategoryID string
		description   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record a transaction against the ledger. Amounts are always
non-negative; the type determines the direction. Transfers move money between
two accounts and need --to.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			amount, err := money.Parse(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			date := model.Today()
			if dateStr != "" {
				date, err = model.ParseDate(dateStr)
				if err != nil {
					return err
				}
			}

			tx := model.Transaction{
				Description:   description,
				Amount:        amount,
				Date:          date,
				Type:          model.TransactionType(txType),
				CategoryID:    categoryID,
				SubCategoryID: subCategoryID,
				AccountID:     accountID,
				ToAccountID:   toAccountID,
			}

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			newState, err := ledger.Record(state, tx)
			if err != nil {
				return common.NewUserError("transaction rejected", err)
			}

			if err := storage.SaveState(ctx, store, newState); err != nil {
				return err
			}

			recorded := newState.Transactions[0]
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s (%s)",
				recorded.Type, recorded.Amount, recorded.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "expense", "transaction type (expense, income, investment, transfer)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, e.g. 42.50 (required)")
	cmd.Flags().StringVar(&dateStr, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&accountID, "account", "", "source account ID (required)")
	cmd.Flags().StringVar(&toAccountID, "to", "", "destination account ID (transfers only)")
	cmd.Flags().StringVar(&categoryID, "category", "", "category ID")
	cmd.Flags().StringVar(&subCategoryID, "subcategory", "", "subcategory ID")
	cmd.Flags().StringVar(&description, "desc", "", "free-text description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		limit int
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions := state.Transactions
			var subtitle string
			if month != 0 || year != 0 {
				m, y, err := periodFlags(month, year)
				if err != nil {
					return err
				}
				filtered := make([]model.Transaction, 0, len(transactions))
				for _, tx := range transactions {
					if tx.Date.In(m, y) {
						filtered = append(filtered, tx)
					}
				}
				transactions = filtered
				subtitle = fmt.Sprintf("%s %d", m, y)
			}

			if len(transactions) == 0 {
				fmt.Println(cli.FormatInfo("No transactions found."))
				return nil
			}
			if limit > 0 && len(transactions) > limit {
				transactions = transactions[:limit]
			}

			fmt.Println(cli.FormatTitle("Transactions"))
			if subtitle != "" {
				fmt.Println(cli.SubtitleStyle.Render(subtitle))
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", "Date", "Type", "Amount", "Account", "Category", "Description")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 14),
				strings.Repeat("-", 24))

			for _, tx := range transactions {
				category := tx.CategoryID
				if cat, ok := state.CategoryByID(tx.CategoryID); ok {
					category = cat.Name
				}
				account := tx.AccountID
				if tx.Type == model.TransactionTransfer {
					account = fmt.Sprintf("%s → %s", tx.AccountID, tx.ToAccountID)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					tx.Date, tx.Type, tx.Amount, account, category, tx.Description)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 25, "maximum number of transactions to show (0 for all)")
	cmd.Flags().IntVar(&month, "month", 0, "filter by calendar month (1-12)")
	cmd.Flags().IntVar(&year, "year", 0, "filter by calendar year")

	return cmd
}
