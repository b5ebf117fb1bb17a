package llm

import (
	"context"
	"errors"

	"github.com/lusakalabs/crucible/internal/model"
)

// Role identifies which debate participant a generation request serves.
// The deterministic fallback provider switches template logic on it.
type Role string

const (
	RoleExtractor Role = "extractor"
	RoleAdversary Role = "adversary"
	RoleProponent Role = "proponent"
	RoleJudge     Role = "judge"
)

// Gateway failure classes. Both are fallback triggers for the caller, never
// fatal to a debate run.
var (
	ErrGatewayUnavailable = errors.New("reasoning gateway unavailable")
	ErrGatewayTimeout     = errors.New("reasoning gateway timeout")
)

// Provider is the single reasoning capability consumed by the debate engine
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate produces text for the given role and prompt
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// GenerateRequest is the input to a single generation call
type GenerateRequest struct {
	// Role selects the system behavior (extractor, adversary, proponent, judge)
	Role Role

	// System is the role's system prompt
	System string

	// Prompt is the user message
	Prompt string

	// Model overrides the configured model (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// GenerateResponse is the output of a generation call
type GenerateResponse struct {
	// Text is the generated content
	Text string

	// Model is the model that produced the response
	Model string

	// TokensUsed tracks token consumption (0 when unknown)
	TokensUsed int
}

// Config holds reasoning-provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// TimeoutMs bounds each call in milliseconds
	TimeoutMs int

	// MaxTokens for response generation
	MaxTokens int

	// Temperature for generation
	Temperature float64

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:    c.Provider,
		Model:       c.Model,
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		TimeoutMs:   c.TimeoutMs,
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		HTTPProxy:   c.HTTPProxy,
		HTTPSProxy:  c.HTTPSProxy,
		NoProxy:     c.NoProxy,
	}
}
