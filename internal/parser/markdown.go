package parser

import (
	"bufio"
	"io"
	"strings"
)

// MarkdownParser handles Markdown files. The raw text is kept for markup-mode
// section extraction; only the document title is sniffed from the first
// top-level heading.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(data)

	title := strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown")
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if t, ok := strings.CutPrefix(line, "# "); ok {
			if t = strings.TrimSpace(t); t != "" {
				title = t
			}
			break
		}
		if line != "" {
			break
		}
	}

	return &Document{
		Title: title,
		Text:  text,
	}, nil
}
