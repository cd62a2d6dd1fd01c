package llm

import (
	"fmt"
	"os"
)

// ProviderFactory creates providers.
type ProviderFactory func(cfg ProviderConfig) (Provider, error)

// DefaultModels maps provider names to their default models.
var DefaultModels = map[string]string{
	"openai":     "gpt-4o",
	"anthropic":  "claude-sonnet-4-20250514",
	"openrouter": "xiaomi/mimo-v2-flash:free",
	"ollama":     "llama3.2",
}

var registry = map[string]ProviderFactory{
	"openai": func(cfg ProviderConfig) (Provider, error) {
		return NewOpenAIProvider(cfg)
	},
	"anthropic": func(cfg ProviderConfig) (Provider, error) {
		return NewAnthropicProvider(cfg)
	},
	"openrouter": func(cfg ProviderConfig) (Provider, error) {
		return NewOpenRouterProvider(cfg)
	},
	"ollama": func(cfg ProviderConfig) (Provider, error) {
		return NewOllamaProvider(cfg)
	},
}

// NewProvider creates a provider by name.
func NewProvider(name string, cfg ProviderConfig) (Provider, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s (available: openai, anthropic, openrouter, ollama)", name)
	}
	return factory(cfg)
}

// DetectProvider auto-detects the best provider based on available API keys.
// Returns the provider name and API key.
// Priority: OPENAI_API_KEY > ANTHROPIC_API_KEY > OPENROUTER_API_KEY > ollama (no key needed)
func DetectProvider() (provider string, apiKey string) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return "openai", key
	}

	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return "anthropic", key
	}

	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		return "openrouter", key
	}

	// Fall back to Ollama (no key required)
	return "ollama", ""
}

// keyEnvVars maps each keyed provider to the environment variable
// holding its credential. Ollama is absent: it never needs one.
var keyEnvVars = map[string]string{
	"openai":     "OPENAI_API_KEY",
	"anthropic":  "ANTHROPIC_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
}

// KeyFromEnv returns the API key from the environment variable that
// belongs to the named provider. Unlike DetectProvider, the provider
// is already chosen; another provider's key is never substituted.
func KeyFromEnv(provider string) string {
	env, ok := keyEnvVars[provider]
	if !ok {
		return ""
	}
	return os.Getenv(env)
}

// GetDefaultModel returns the default model for a provider.
func GetDefaultModel(provider string) string {
	if model, ok := DefaultModels[provider]; ok {
		return model
	}
	return ""
}
