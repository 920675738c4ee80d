package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonfinance/neon/internal/ledger"
	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
	"github.com/neonfinance/neon/internal/service"
)

type stubClient struct {
	answer string
	err    error

	gotSystem string
	gotUser   string
}

func (c *stubClient) Complete(_ context.Context, system, user string) (string, error) {
	c.gotSystem = system
	c.gotUser = user
	return c.answer, c.err
}

func snapshotFixture() service.Snapshot {
	return service.Snapshot{
		TotalBalance: money.MustParse("42350"),
		Accounts: []service.AccountSummary{
			{Name: "Main Account", Balance: money.MustParse("5200")},
		},
		CategoryNames: []string{"Food", "Leisure"},
	}
}

func TestAdviseIncludesSnapshotAndQuery(t *testing.T) {
	client := &stubClient{answer: "Spend less on **Leisure**."}
	svc := NewServiceWithClient(client)

	answer, err := svc.Advise(context.Background(), "How am I doing?", snapshotFixture())
	require.NoError(t, err)
	assert.Equal(t, "Spend less on **Leisure**.", answer)

	assert.Contains(t, client.gotUser, `"totalBalance":42350.00`)
	assert.Contains(t, client.gotUser, "How am I doing?")
	assert.Contains(t, client.gotSystem, "financial advisor")
}

func TestAdviseFallsBackOnProviderError(t *testing.T) {
	svc := NewServiceWithClient(&stubClient{err: errors.New("boom")})

	answer, err := svc.Advise(context.Background(), "anything", snapshotFixture())
	require.NoError(t, err)
	assert.Equal(t, Fallback, answer)
}

func TestAdviseFallsBackOnEmptyAnswer(t *testing.T) {
	svc := NewServiceWithClient(&stubClient{answer: ""})

	answer, err := svc.Advise(context.Background(), "anything", snapshotFixture())
	require.NoError(t, err)
	assert.Equal(t, Fallback, answer)
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "openai", config: Config{Provider: "openai", APIKey: "k"}},
		{name: "anthropic", config: Config{Provider: "Anthropic", APIKey: "k"}},
		{name: "openai without key", config: Config{Provider: "openai"}, wantErr: true},
		{name: "unknown provider", config: Config{Provider: "gemini", APIKey: "k"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestOpenAIComplete(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": " Keep saving. "}},
			},
		})
	}))
	defer server.Close()

	client, err := newOpenAIClient(Config{Provider: "openai", APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	answer, err := client.Complete(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "Keep saving.", answer)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestOpenAICompleteErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := newOpenAIClient(Config{Provider: "openai", APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "system", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestAnthropicComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.True(t, strings.HasSuffix(r.URL.Path, "/messages"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{{"text": "All good."}},
		})
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{Provider: "anthropic", APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	answer, err := client.Complete(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "All good.", answer)
}

func TestBuildSnapshot(t *testing.T) {
	transactions := make([]model.Transaction, 0, 25)
	for i := 0; i < 25; i++ {
		transactions = append(transactions, model.Transaction{
			ID:        "tx",
			Amount:    money.MustParse("1"),
			Date:      model.NewDate(2026, time.August, 1),
			Type:      model.TransactionExpense,
			AccountID: "acc_1",
		})
	}

	state := ledger.NewState(
		transactions,
		[]model.Account{
			{ID: "acc_2", Name: "Savings", Balance: money.MustParse("12000")},
			{ID: "acc_1", Name: "Main", Balance: money.MustParse("5200")},
		},
		[]model.Category{{ID: "cat_food", Name: "Food"}},
		nil,
		nil,
	)

	snapshot := BuildSnapshot(state)

	assert.Equal(t, money.MustParse("17200"), snapshot.TotalBalance)
	assert.Len(t, snapshot.RecentTransactions, recentTransactionLimit)
	require.Len(t, snapshot.Accounts, 2)
	// Account summaries follow the stable id ordering.
	assert.Equal(t, "Main", snapshot.Accounts[0].Name)
	assert.Equal(t, []string{"Food"}, snapshot.CategoryNames)
}
