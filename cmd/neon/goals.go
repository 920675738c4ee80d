package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neonfinance/neon/internal/cli"
	"github.com/neonfinance/neon/internal/report"
)

func goalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "Show savings goals and their progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, state, err := loadLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(state.Goals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No savings goals found. Run 'neon seed' to load the starter data."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Savings goals"))

			for _, goal := range state.Goals {
				progress := report.GoalProgress(goal)
				fmt.Printf("%s %s\n", goal.Icon, cli.BoldStyle.Render(goal.Name))
				fmt.Printf("  %s %5.1f%%  %s / %s  (by %s)\n",
					cli.ProgressBar(progress, 20), progress,
					goal.CurrentAmount, goal.TargetAmount, goal.Deadline)
			}

			return nil
		},
	}
}
