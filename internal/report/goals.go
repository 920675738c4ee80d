package report

import "github.com/neonfinance/neon/internal/model"

// GoalProgress returns the raw percentage of a goal that has been funded,
// unclamped so numeric displays can exceed 100%. A goal with no target
// reports zero.
func GoalProgress(goal model.Goal) float64 {
	if goal.TargetAmount <= 0 {
		return 0
	}
	return float64(goal.CurrentAmount) / float64(goal.TargetAmount) * 100
}
