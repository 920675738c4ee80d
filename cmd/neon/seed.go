package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neonfinance/neon/internal/cli"
	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/storage"
)

func seedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset all collections to the starter data",
		Long: `Overwrite every stored collection with the seed accounts, categories
and goals, and clear all transactions and budgets. This cannot be undone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				return fmt.Errorf("seeding erases all stored data; re-run with --force to confirm")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveTransactions(ctx, []model.Transaction{}); err != nil {
				return err
			}
			if err := store.SaveBudgets(ctx, []model.Budget{}); err != nil {
				return err
			}
			if err := store.SaveAccounts(ctx, storage.SeedAccounts()); err != nil {
				return err
			}
			if err := store.SaveCategories(ctx, storage.SeedCategories()); err != nil {
				return err
			}
			if err := store.SaveGoals(ctx, storage.SeedGoals()); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Ledger reset to starter data"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm erasing all stored data")

	return cmd
}
