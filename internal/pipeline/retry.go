package pipeline

import (
	"errors"

	"github.com/dgallion1/docsumm/internal/parser"
	"github.com/dgallion1/docsumm/internal/summarize"
)

// IsRetryable reports whether a job-level error is eligible for another
// attempt. Missing backend configuration and unsupported input are terminal;
// anything else that escapes the pipeline is treated as transient.
func IsRetryable(err error) bool {
	var cfgErr *summarize.ConfigError
	if errors.As(err, &cfgErr) {
		return false
	}
	var typeErr *parser.UnsupportedTypeError
	if errors.As(err, &typeErr) {
		return false
	}
	return true
}
