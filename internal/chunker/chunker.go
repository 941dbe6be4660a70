package chunker

import (
	"strings"
	"unicode"
)

// Config controls chunking behavior.
type Config struct {
	MaxSize int // Maximum chunk size in characters.
	Overlap int // Characters shared between consecutive chunks.
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxSize: 1250,
		Overlap: 200,
	}
}

// normalize clamps invalid values so splitting always makes forward progress.
func (c Config) normalize() Config {
	if c.MaxSize <= 0 {
		c.MaxSize = DefaultConfig().MaxSize
	}
	if c.Overlap < 0 {
		c.Overlap = 0
	}
	if c.Overlap >= c.MaxSize {
		c.Overlap = c.MaxSize - 1
	}
	return c
}

// Chunk is a bounded-size slice of a section's content.
type Chunk struct {
	Text         string
	SectionTitle string
	Index        int
	Total        int
}

// Split breaks text into chunks of at most cfg.MaxSize characters, with
// consecutive chunks sharing cfg.Overlap characters of context. Cuts prefer
// the last whitespace inside the window and fall back to a hard cut for
// unbroken runs. Emitted chunks are trimmed and never empty.
func Split(text string, cfg Config) []string {
	cfg = cfg.normalize()

	var chunks []string
	start := 0

	for start < len(text) {
		if len(text)-start <= cfg.MaxSize {
			if chunk := strings.TrimSpace(text[start:]); chunk != "" {
				chunks = append(chunks, chunk)
			}
			break
		}

		end := start + cfg.MaxSize
		cut := lastWhitespace(text, start, end)
		if cut <= start {
			cut = end
		}
		if chunk := strings.TrimSpace(text[start:cut]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		// Step back by the overlap, but never so far that the offset stops
		// advancing; a stalled offset would loop forever.
		next := cut - cfg.Overlap
		if next <= start {
			next = cut
		}
		start = next
	}

	return chunks
}

// ForSection splits one section's content into ordered chunks carrying the
// section title. Content at or under the size limit becomes a single chunk.
func ForSection(title, content string, cfg Config) []Chunk {
	cfg = cfg.normalize()

	var parts []string
	if trimmed := strings.TrimSpace(content); len(trimmed) <= cfg.MaxSize {
		if trimmed != "" {
			parts = []string{trimmed}
		}
	} else {
		parts = Split(content, cfg)
	}

	chunks := make([]Chunk, 0, len(parts))
	for i, part := range parts {
		chunks = append(chunks, Chunk{
			Text:         part,
			SectionTitle: title,
			Index:        i,
			Total:        len(parts),
		})
	}
	return chunks
}

// lastWhitespace returns the index of the last whitespace byte strictly
// inside (start, end), or -1 if there is none.
func lastWhitespace(text string, start, end int) int {
	for i := end - 1; i > start; i-- {
		if unicode.IsSpace(rune(text[i])) {
			return i
		}
	}
	return -1
}
