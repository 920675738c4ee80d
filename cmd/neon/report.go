package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neonfinance/neon/internal/cli"
	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate views over the ledger",
		Long:  `Derived reports: period totals, daily cash flow and per-category spending. Nothing here is stored; everything is computed from the transaction log.`,
	}

	cmd.AddCommand(summaryReportCmd())
	cmd.AddCommand(cashFlowReportCmd())
	cmd.AddCommand(categoriesReportCmd())

	return cmd
}

func summaryReportCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show total balance and monthly totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			m, y, err := periodFlags(month, year)
			if err != nil {
				return err
			}

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			total := report.TotalBalance(state.AccountList())
			income := report.PeriodTotals(state.Transactions, model.TransactionIncome, m, y)
			expenses := report.PeriodTotals(state.Transactions, model.TransactionExpense, m, y)
			invested := report.PeriodTotals(state.Transactions, model.TransactionInvestment, m, y)

			content := fmt.Sprintf("Total balance:  %s\nIncome:         %s\nExpenses:       %s\nInvested:       %s",
				cli.FormatAmount(total),
				cli.SuccessStyle.Render(income.String()),
				cli.ErrorStyle.Render(expenses.String()),
				cli.InfoStyle.Render(invested.String()))
			fmt.Println(cli.RenderBox(fmt.Sprintf("Summary — %s %d", m, y), content))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "calendar month (1-12, default: current)")
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current)")

	return cmd
}

func cashFlowReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cashflow",
		Short: "Show income and expenses grouped by day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			points := report.CashFlowSeries(state.Transactions)
			if len(points) == 0 {
				fmt.Println(cli.InfoStyle.Render("No income or expense transactions recorded."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Cash flow"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n", "Date", "Income", "Expense")
			for _, point := range points {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					point.Date,
					cli.SuccessStyle.Render(point.Income.String()),
					cli.ErrorStyle.Render(point.Expense.String()))
			}

			return nil
		},
	}
}

func categoriesReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show all-time expense totals per category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			totals := report.CategoryDistribution(state.Transactions, state.Categories)
			if len(totals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categorized expenses recorded."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Spending by category"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\n", "Category", "Total")
			for _, ct := range totals {
				fmt.Fprintf(w, "%s\t%s\n", ct.Name, ct.Total)
			}

			return nil
		},
	}
}
