package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	Debate DebateConfig `json:"debate" yaml:"debate"`
	LLM    LLMConfig    `json:"llm" yaml:"llm"`
	Facts  FactsConfig  `json:"facts" yaml:"facts"`
	Cache  CacheConfig  `json:"cache" yaml:"cache"`
	Output OutputConfig `json:"output" yaml:"output"`
}

// DebateConfig controls the adversarial state machine
type DebateConfig struct {
	// MaxRounds bounds the revise-and-reattack loop per assumption (>= 1)
	MaxRounds int `json:"max_rounds" yaml:"max_rounds"`

	// KillConfidenceThreshold: critiques below this confidence that cite no
	// severe fact are dismissed and the assumption survives (0.0-1.0)
	KillConfidenceThreshold float64 `json:"kill_confidence_threshold" yaml:"kill_confidence_threshold"`

	// RelevanceTopK caps candidate facts per matcher query (>= 1)
	RelevanceTopK int `json:"relevance_top_k" yaml:"relevance_top_k"`

	// Parallelism bounds concurrent per-assumption debates (>= 1)
	Parallelism int `json:"parallelism" yaml:"parallelism"`
}

// LLMConfig configures the reasoning gateway
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama", "" (fallback only)
	Provider string `json:"provider" yaml:"provider"`

	// Model name (provider-specific)
	Model string `json:"model" yaml:"model"`

	// APIKey for OpenAI/Anthropic
	APIKey string `json:"-" yaml:"-"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// TimeoutMs is the per-call gateway timeout in milliseconds
	TimeoutMs int `json:"timeout_ms" yaml:"timeout_ms"`

	// MaxTokens limits response length
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Temperature for generation
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// RequestsPerSecond rate-limits gateway calls (0 = unlimited)
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// Proxy settings
	HTTPProxy  string `json:"http_proxy,omitempty" yaml:"http_proxy,omitempty"`
	HTTPSProxy string `json:"https_proxy,omitempty" yaml:"https_proxy,omitempty"`
	NoProxy    string `json:"no_proxy,omitempty" yaml:"no_proxy,omitempty"`
}

// Timeout returns the per-call gateway timeout as a duration
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// FactsConfig controls fact store loading
type FactsConfig struct {
	// Path to a YAML fact file; empty means the builtin dataset
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// CacheConfig controls gateway response caching
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Dir     string        `json:"dir,omitempty" yaml:"dir,omitempty"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	JSONPath      string `json:"json_path,omitempty" yaml:"json_path,omitempty"`
	MarkdownPath  string `json:"markdown_path,omitempty" yaml:"markdown_path,omitempty"`
	Verbose       bool   `json:"verbose" yaml:"verbose"`
	IncludeFooter bool   `json:"include_footer" yaml:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Debate: DebateConfig{
			MaxRounds:               3,
			KillConfidenceThreshold: 0.55,
			RelevanceTopK:           5,
			Parallelism:             4,
		},
		LLM: LLMConfig{
			Provider:          "", // Fallback-only by default
			TimeoutMs:         30000,
			MaxTokens:         2048,
			Temperature:       0.3,
			RequestsPerSecond: 2,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}

// Normalize clamps invalid values back into the configuration contract
func (c *Config) Normalize() {
	if c.Debate.MaxRounds < 1 {
		c.Debate.MaxRounds = 1
	}
	if c.Debate.KillConfidenceThreshold < 0 {
		c.Debate.KillConfidenceThreshold = 0
	}
	if c.Debate.KillConfidenceThreshold > 1 {
		c.Debate.KillConfidenceThreshold = 1
	}
	if c.Debate.RelevanceTopK < 1 {
		c.Debate.RelevanceTopK = 1
	}
	if c.Debate.Parallelism < 1 {
		c.Debate.Parallelism = 1
	}
	if c.LLM.TimeoutMs < 0 {
		c.LLM.TimeoutMs = 0
	}
}
