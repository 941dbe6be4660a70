package summarize

import "fmt"

// ConfigError reports missing or invalid backend configuration. It fails a
// job before any summarization work begins and is never retried.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "summarizer configuration: " + e.Reason
}

// BackendError reports a failed or timed-out backend call. It is isolated
// to the chunk being summarized; the job continues with the next section.
type BackendError struct {
	Backend Backend
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s backend: %s", e.Backend, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
