package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lusakalabs/crucible/internal/cache"
	"github.com/lusakalabs/crucible/internal/debate"
	"github.com/lusakalabs/crucible/internal/facts"
	"github.com/lusakalabs/crucible/internal/llm"
	"github.com/lusakalabs/crucible/internal/model"
)

// resolveAPIKey fills in the provider API key from the environment
func resolveAPIKey(cfg *model.Config) error {
	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}

// newResponseCache builds the gateway response cache, or nil when disabled
func newResponseCache(cfg model.CacheConfig) cache.Cache {
	if !cfg.Enabled {
		return nil
	}

	dir := cfg.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cache.NewMemoryCache(cfg.TTL, cfg.TTL)
		}
		dir = filepath.Join(home, ".crucible", "cache")
	}
	return cache.NewLayeredCache(cfg.TTL, dir, cfg.TTL)
}

// newOrchestrator wires the fact store, gateway, and debate roles from config
func newOrchestrator(cfg model.Config) (*debate.Orchestrator, error) {
	cfg.Normalize()

	if cfg.LLM.Provider != "" {
		if err := resolveAPIKey(&cfg); err != nil {
			return nil, err
		}
	}

	store, err := facts.NewStoreFromConfig(cfg.Facts)
	if err != nil {
		return nil, fmt.Errorf("load facts: %w", err)
	}

	gateway, err := llm.NewGateway(cfg, newResponseCache(cfg.Cache))
	if err != nil {
		return nil, fmt.Errorf("init reasoning gateway: %w", err)
	}

	return debate.NewOrchestrator(store, gateway, cfg.Debate), nil
}
