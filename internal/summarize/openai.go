package summarize

import (
	"context"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// openaiClient calls the OpenAI chat completions API.
type openaiClient struct {
	client *openai.Client
	model  string
	stats  *Stats
}

func newOpenAIClient(cfg Config, stats *Stats) *openaiClient {
	model := cfg.Model
	if model == "" {
		model = DefaultRemoteModel
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &openaiClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
		stats:  stats,
	}
}

func (c *openaiClient) Summarize(ctx context.Context, text string) (string, error) {
	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: buildPrompt(text),
		}},
	})
	if c.stats != nil {
		c.stats.Record(time.Since(start).Milliseconds())
	}
	if err != nil {
		return "", &BackendError{Backend: BackendRemote, Message: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return "", &BackendError{Backend: BackendRemote, Message: "empty response from model"}
	}

	summary := resp.Choices[0].Message.Content
	if strings.TrimSpace(summary) == "" {
		return "", &BackendError{Backend: BackendRemote, Message: "blank summary from model"}
	}
	return summary, nil
}
