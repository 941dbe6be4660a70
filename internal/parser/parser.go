package parser

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docsumm/internal/section"
)

// Document is decoded input ready for section extraction. Styled documents
// carry per-paragraph style names; everything else is raw markup text.
type Document struct {
	Title      string
	Text       string
	Paragraphs []section.Paragraph
	Styled     bool
}

// Sections runs the extraction mode matching the document's heading signal.
func (d *Document) Sections() []section.Section {
	if d.Styled {
		return section.FromParagraphs(d.Paragraphs, nil)
	}
	return section.FromMarkup(d.Text)
}

// Parser decodes raw document bytes into a Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*Document, error)
}

// UnsupportedTypeError reports an input the pipeline cannot decode. Jobs
// fail immediately on it, without retry.
type UnsupportedTypeError struct {
	Ext string
}

func (e *UnsupportedTypeError) Error() string {
	return "unsupported file type: " + e.Ext
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, &UnsupportedTypeError{Ext: ext}
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
