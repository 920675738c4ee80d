package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neonfinance/neon/internal/cli"
	"github.com/neonfinance/neon/internal/common"
	"github.com/neonfinance/neon/internal/report"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage bank accounts",
		Long:  `List accounts and inspect their monthly cash movement. Balances are derived from the transaction log.`,
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(accountFlowCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			accounts := state.AccountList()
			if len(accounts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts found. Run 'neon seed' to load the starter data."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Accounts"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "ID", "Name", "Bank", "Type", "Balance")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 6),
				strings.Repeat("-", 16),
				strings.Repeat("-", 12),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10))

			for _, acc := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					acc.ID, acc.Name, acc.BankName, acc.Type, cli.FormatAmount(acc.Balance))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			total := report.TotalBalance(accounts)
			fmt.Printf("\n%s %s\n", cli.BoldStyle.Render("Total balance:"), cli.FormatAmount(total))
			return nil
		},
	}
}

func accountFlowCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "flow <account-id>",
		Short: "Show an account's inflow and outflow for a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			accountID := args[0]

			m, y, err := periodFlags(month, year)
			if err != nil {
				return err
			}

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			acc, ok := state.Accounts[accountID]
			if !ok {
				return fmt.Errorf("%w: account %q", common.ErrNotFound, accountID)
			}

			flow := report.AccountMonthlyFlow(state.Transactions, accountID, m, y)

			fmt.Println(cli.FormatTitle(fmt.Sprintf("%s — %s %d", acc.Name, m, y)))
			fmt.Printf("  Inflow:  %s\n", cli.SuccessStyle.Render(flow.In.String()))
			fmt.Printf("  Outflow: %s\n", cli.ErrorStyle.Render(flow.Out.String()))
			fmt.Printf("  Balance: %s\n", cli.FormatAmount(acc.Balance))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "calendar month (1-12, default: current)")
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current)")

	return cmd
}
