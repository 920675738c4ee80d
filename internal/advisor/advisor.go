// Package advisor implements the advisory gateway: it sends a ledger
// snapshot plus a user question to a text-generation provider and returns
// the free-text answer. Provider failures never reach the user as errors;
// they collapse into a fixed fallback message.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/neonfinance/neon/internal/common"
	"github.com/neonfinance/neon/internal/service"
)

// Fallback is the fixed reply used whenever the provider cannot be reached
// or returns garbage.
const Fallback = "There was a problem reaching the smart assistant. Check your API key and try again."

// systemPrompt sets the assistant's register. The snapshot is passed as
// JSON but the assistant must answer as if it simply knows the user's
// finances.
const systemPrompt = `You are a smart, forward-looking financial advisor for the NeonFinance app.
Your tone is professional, direct and encouraging.
Use the JSON financial context to answer the user's question.
If the question is generic, give financial tips based on the current balance.
Never mention that you are reading JSON; act as if you know the user's financial life.
Format the answer in simple Markdown.`

// Client is a single-provider completion client.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Config selects and tunes a provider.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// Service turns ledger snapshots and questions into advice. It implements
// service.Advisor.
type Service struct {
	client Client
}

var _ service.Advisor = (*Service)(nil)

// NewService builds an advisory service from provider configuration.
func NewService(cfg Config) (*Service, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Service{client: client}, nil
}

// NewServiceWithClient wires an explicit client, used by tests.
func NewServiceWithClient(client Client) *Service {
	return &Service{client: client}
}

// Advise answers a natural-language question about the snapshot. Provider
// errors are logged and swallowed: the caller always gets usable text.
func (s *Service) Advise(ctx context.Context, query string, snapshot service.Snapshot) (string, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	prompt := fmt.Sprintf("Financial context: %s\n\nUser question: %s", payload, query)

	answer, err := s.client.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		slog.Warn("advisor request failed", "error", fmt.Errorf("%w: %w", common.ErrAdvisorUnavailable, err))
		return Fallback, nil
	}
	if answer == "" {
		slog.Warn("advisor returned an empty answer")
		return Fallback, nil
	}
	return answer, nil
}
