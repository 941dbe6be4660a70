package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth (optional; routes are open when unset)
	APIKey string

	// Backend defaults applied when a job omits them
	DefaultBackend string
	OllamaURL      string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	LocalModel     string
	RemoteModel    string

	SummarizeTimeout time.Duration

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Chunking
	MaxChunkSize int
	ChunkOverlap int

	// Job state
	JobTTL time.Duration

	// Retry policy for failed jobs
	RetryAttempts int
	RetryDelay    time.Duration

	// Stats window for backend call latencies
	StatsWindow time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("DOCSUMM_API_KEY"),

		DefaultBackend: envOr("DEFAULT_BACKEND", "local"),
		OllamaURL:      envOr("OLLAMA_URL", "http://localhost:11434"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		LocalModel:     envOr("LOCAL_MODEL", "llama3.1"),
		RemoteModel:    envOr("REMOTE_MODEL", "gpt-3.5-turbo"),

		SummarizeTimeout: envDuration("SUMMARIZE_TIMEOUT", 120*time.Second),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		MaxChunkSize: envInt("MAX_CHUNK_SIZE", 1250),
		ChunkOverlap: envInt("CHUNK_OVERLAP", 200),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		RetryAttempts: envInt("RETRY_ATTEMPTS", 3),
		RetryDelay:    envDuration("RETRY_DELAY", 60*time.Second),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.MaxChunkSize <= 0 {
		cfg.MaxChunkSize = 1250
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = 200
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 60 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DefaultBackend != "local" && c.DefaultBackend != "remote" {
		return fmt.Errorf("DEFAULT_BACKEND must be \"local\" or \"remote\", got %q", c.DefaultBackend)
	}
	if c.ChunkOverlap >= c.MaxChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP (%d) must be smaller than MAX_CHUNK_SIZE (%d)", c.ChunkOverlap, c.MaxChunkSize)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
