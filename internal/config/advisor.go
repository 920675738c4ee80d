package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/neonfinance/neon/internal/advisor"
	"github.com/neonfinance/neon/internal/common"
)

// LoadAdvisorConfig loads smart-assistant configuration. Precedence:
// 1. Viper configuration (from config file or NEON_ env vars)
// 2. Provider environment variables (OPENAI_API_KEY, ANTHROPIC_API_KEY)
// 3. Default values
func LoadAdvisorConfig() (advisor.Config, error) {
	cfg := advisor.Config{
		Provider:    viper.GetString("advisor.provider"),
		APIKey:      viper.GetString("advisor.api_key"),
		Model:       viper.GetString("advisor.model"),
		BaseURL:     viper.GetString("advisor.base_url"),
		Temperature: viper.GetFloat64("advisor.temperature"),
		MaxTokens:   viper.GetInt("advisor.max_tokens"),
	}

	if cfg.Provider == "" {
		cfg.Provider = "openai"
	}
	switch cfg.Provider {
	case "openai", "anthropic":
	default:
		return advisor.Config{}, fmt.Errorf("%w: unsupported advisor provider %q",
			common.ErrInvalidConfig, cfg.Provider)
	}

	if cfg.APIKey == "" {
		switch cfg.Provider {
		case "openai":
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		case "anthropic":
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}
	if cfg.APIKey == "" {
		return advisor.Config{}, fmt.Errorf("%w: no API key configured for advisor provider %q",
			common.ErrMissingConfig, cfg.Provider)
	}

	return cfg, nil
}
