package parser

import (
	"io"
	"strings"
)

// TextParser handles plain text files. The text is passed through as-is;
// without a heading signal the whole file becomes a single section.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Document{
		Title: strings.TrimSuffix(filename, ".txt"),
		Text:  string(data),
	}, nil
}
