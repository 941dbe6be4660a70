package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ollamaClient calls an Ollama-compatible /api/generate endpoint.
type ollamaClient struct {
	endpoint   string
	model      string
	httpClient *http.Client
	stats      *Stats
}

func newOllamaClient(cfg Config, stats *Stats) *ollamaClient {
	model := cfg.Model
	if model == "" {
		model = DefaultLocalModel
	}
	return &ollamaClient{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		model:    model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		stats: stats,
	}
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

func (c *ollamaClient) Summarize(ctx context.Context, text string) (string, error) {
	reqBody := ollamaRequest{
		Model:   c.model,
		Prompt:  buildPrompt(text),
		Stream:  false,
		Options: ollamaOptions{Temperature: 0.3},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if c.stats != nil {
		c.stats.Record(time.Since(start).Milliseconds())
	}
	if err != nil {
		return "", &BackendError{Backend: BackendLocal, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &BackendError{Backend: BackendLocal, Message: "read response: " + err.Error()}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &BackendError{
			Backend: BackendLocal,
			Message: fmt.Sprintf("status %d: %s", resp.StatusCode, respBody),
		}
	}

	var apiResp ollamaResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", &BackendError{Backend: BackendLocal, Message: "decode response: " + err.Error()}
	}
	if apiResp.Error != "" {
		return "", &BackendError{Backend: BackendLocal, Message: apiResp.Error}
	}
	if strings.TrimSpace(apiResp.Response) == "" {
		return "", &BackendError{Backend: BackendLocal, Message: "empty response from model"}
	}

	return apiResp.Response, nil
}
