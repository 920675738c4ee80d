package advisor

import (
	"github.com/neonfinance/neon/internal/ledger"
	"github.com/neonfinance/neon/internal/report"
	"github.com/neonfinance/neon/internal/service"
)

// recentTransactionLimit caps how much of the log is shared with the
// provider.
const recentTransactionLimit = 20

// BuildSnapshot condenses a ledger state into the context payload for the
// advisory gateway: total balance, the most recent transactions, a compact
// account summary, and the category names.
func BuildSnapshot(state ledger.State) service.Snapshot {
	accounts := state.AccountList()

	recent := state.Transactions
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}

	summaries := make([]service.AccountSummary, 0, len(accounts))
	for _, acc := range accounts {
		summaries = append(summaries, service.AccountSummary{Name: acc.Name, Balance: acc.Balance})
	}

	names := make([]string, 0, len(state.Categories))
	for _, cat := range state.Categories {
		names = append(names, cat.Name)
	}

	return service.Snapshot{
		TotalBalance:       report.TotalBalance(accounts),
		RecentTransactions: recent,
		Accounts:           summaries,
		CategoryNames:      names,
	}
}
