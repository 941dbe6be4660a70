// Package render turns the flattened markdown summary into HTML for
// clients that request it.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// HTML renders a markdown document as an HTML fragment.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
