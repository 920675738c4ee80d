package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neonfinance/neon/internal/cli"
	"github.com/neonfinance/neon/internal/exchange"
	"github.com/neonfinance/neon/internal/money"
)

func exchangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exchange [amount]",
		Short: "Simulate currency conversion at fixed commercial rates",
		Long: `Show what an amount of ledger currency buys in foreign currencies.
Without an amount, only the rate table is printed. Rates are fixed planning
values, not a market feed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			if len(args) == 0 {
				fmt.Println(cli.FormatTitle("Exchange rates"))
				fmt.Fprintf(w, "%s\t%s\t%s\n", "Code", "Currency", "Rate")
				for _, rate := range exchange.Rates() {
					fmt.Fprintf(w, "%s\t%s\t%s\n", rate.Code, rate.Name, rate.PerUnit)
				}
				return nil
			}

			amount, err := money.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			quotes, err := exchange.Quotes(amount)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Converting %s", amount)))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "Code", "Currency", "Rate", "You get")
			for _, quote := range quotes {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s%s\n",
					quote.Code, quote.Name, quote.PerUnit, quote.Symbol, quote.Converted)
			}
			return nil
		},
	}

	return cmd
}
