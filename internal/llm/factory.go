package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// NewProvider creates a remote reasoning provider based on configuration.
// An empty provider name returns (nil, nil): the caller runs fallback-only.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown reasoning provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// classifyErr maps transport failures onto the gateway error taxonomy
func classifyErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrGatewayTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrGatewayTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
}
