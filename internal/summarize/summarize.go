package summarize

import (
	"context"
	"time"
)

// Backend selects which summarization backend a job uses.
type Backend string

const (
	// BackendLocal talks to an Ollama-compatible endpoint.
	BackendLocal Backend = "local"
	// BackendRemote talks to the OpenAI API.
	BackendRemote Backend = "remote"
)

// Summarizer produces a summary for a piece of text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Config holds the per-job backend selection and its credentials.
type Config struct {
	Backend Backend

	// Endpoint is the base URL of the local backend. Required for BackendLocal.
	Endpoint string

	// APIKey authenticates against the remote backend. Required for BackendRemote.
	APIKey string

	// BaseURL overrides the remote API base URL (proxies, tests).
	BaseURL string

	// Model names the model to use. Empty selects the backend's default.
	Model string

	// Timeout bounds a single summarization call.
	Timeout time.Duration
}

const (
	DefaultLocalModel  = "llama3.1"
	DefaultRemoteModel = "gpt-3.5-turbo"
	DefaultTimeout     = 120 * time.Second
)

// Validate checks that the selected backend has the configuration it needs.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendLocal:
		if c.Endpoint == "" {
			return &ConfigError{Reason: "endpoint is required for the local backend"}
		}
	case BackendRemote:
		if c.APIKey == "" {
			return &ConfigError{Reason: "api key is required for the remote backend"}
		}
	default:
		return &ConfigError{Reason: "unknown backend: " + string(c.Backend)}
	}
	return nil
}

// New resolves a Config into a Summarizer, failing fast on missing
// configuration. A nil stats skips call recording.
func New(cfg Config, stats *Stats) (Summarizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	switch cfg.Backend {
	case BackendLocal:
		return newOllamaClient(cfg, stats), nil
	default:
		return newOpenAIClient(cfg, stats), nil
	}
}
