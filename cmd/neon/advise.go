package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neonfinance/neon/internal/advisor"
	"github.com/neonfinance/neon/internal/cli"
)

func adviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advise <question>",
		Short: "Ask the smart assistant about your finances",
		Long: `Ask a free-form question. The assistant sees your balances, recent
transactions and category names, but never your raw database. Provider
failures fall back to a fixed message instead of an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			question := strings.Join(args, " ")

			adv, err := newAdvisor()
			if err != nil {
				return err
			}

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			answer, err := adv.Advise(ctx, question, advisor.BuildSnapshot(state))
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Advisor"))
			fmt.Println(answer)
			return nil
		},
	}
}
