package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neonfinance/neon/internal/cli"
	"github.com/neonfinance/neon/internal/common"
	"github.com/neonfinance/neon/internal/ledger"
	"github.com/neonfinance/neon/internal/money"
	"github.com/neonfinance/neon/internal/report"
	"github.com/neonfinance/neon/internal/storage"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category spending limits",
		Long: `Set monthly spending limits per category and track utilization.
Each category holds at most one budget; setting a limit again replaces it.`,
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(budgetActualCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category-id> <limit>",
		Short: "Set the spending limit for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			categoryID := args[0]

			limit, err := money.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			newState, err := ledger.SetBudgetLimit(state, categoryID, limit)
			if err != nil {
				return common.NewUserError("budget rejected", err)
			}

			if err := storage.SaveState(ctx, store, newState); err != nil {
				return err
			}

			name := categoryID
			if cat, ok := newState.CategoryByID(categoryID); ok {
				name = cat.Name
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s set to %s", name, limit)))
			return nil
		},
	}
}

func listBudgetsCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show budget utilization for a month",
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

			budgets := state.BudgetList()
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'neon budget set' to create one."))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Budgets — %s %d", m, y)))

			for _, budget := range budgets {
				name := budget.CategoryID
				if cat, ok := state.CategoryByID(budget.CategoryID); ok {
					name = cat.Name
				}

				spend := report.CategorySpend(state.Transactions, budget.CategoryID, m, y)
				util := report.BudgetUtilization(budget.Limit, spend)

				line := fmt.Sprintf("%-16s %s %6.1f%%  %s / %s",
					name, cli.ProgressBar(util.Percentage, 20), util.Percentage, spend, budget.Limit)
				if util.IsOverBudget {
					line += "  " + cli.FormatWarning("over budget")
				}
				fmt.Println(line)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "calendar month (1-12, default: current)")
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current)")

	return cmd
}

func budgetActualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actual",
		Short: "Compare each budget against all-time category spend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			lines := report.BudgetVersusActual(state.Transactions, state.Categories, state.BudgetList())
			if len(lines) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Budget vs. actual"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "Category", "Limit", "Actual", "Remaining")
			for _, line := range lines {
				remaining := line.Limit - line.Actual
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					line.CategoryName, line.Limit, line.Actual, cli.FormatAmount(remaining))
			}

			return nil
		},
	}
}
