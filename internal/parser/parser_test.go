package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/docsumm/internal/section"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantType string
	}{
		{"notes.txt", "*parser.TextParser"},
		{"doc.md", "*parser.MarkdownParser"},
		{"doc.markdown", "*parser.MarkdownParser"},
		{"page.html", "*parser.HTMLParser"},
		{"page.htm", "*parser.HTMLParser"},
		{"report.PDF", "*parser.PDFParser"},
		{"letter.docx", "*parser.DOCXParser"},
	}
	for _, tt := range tests {
		p, err := ForFile(tt.filename)
		if err != nil {
			t.Errorf("ForFile(%q) error: %v", tt.filename, err)
			continue
		}
		if got := fmt.Sprintf("%T", p); got != tt.wantType {
			t.Errorf("ForFile(%q) = %s, want %s", tt.filename, got, tt.wantType)
		}
	}
}

func TestForFile_Unsupported(t *testing.T) {
	_, err := ForFile("data.xyz")
	var typeErr *UnsupportedTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
	if typeErr.Ext != ".xyz" {
		t.Errorf("ext = %q, want .xyz", typeErr.Ext)
	}
}

func TestIsSupportedExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"a.txt", true},
		{"a.md", true},
		{"a.DOCX", true},
		{"a.csv", false},
		{"a.exe", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsSupportedExtension(tt.filename); got != tt.want {
			t.Errorf("IsSupportedExtension(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestTextParser(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("hello\nworld\n"), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "hello\nworld\n" {
		t.Errorf("text = %q", doc.Text)
	}
	if doc.Title != "notes" {
		t.Errorf("title = %q, want notes", doc.Title)
	}
	if doc.Styled {
		t.Error("plain text should not be styled")
	}
}

func TestMarkdownParser_TitleFromHeading(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader("# Project Guide\n\n## Setup\nsteps\n"), "guide.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "Project Guide" {
		t.Errorf("title = %q, want Project Guide", doc.Title)
	}
	if !strings.Contains(doc.Text, "## Setup") {
		t.Errorf("markup text not preserved: %q", doc.Text)
	}
}

func TestMarkdownParser_TitleFallsBackToFilename(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader("no heading here\n"), "guide.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "guide" {
		t.Errorf("title = %q, want guide", doc.Title)
	}
}

func TestHTMLParser(t *testing.T) {
	input := `<html><head><title>Release Notes</title><style>body{}</style></head>
<body>
<nav>skip this</nav>
<h1>Overview</h1>
<p>General changes.</p>
<h2>Fixes</h2>
<p>Bug one.</p>
<li>Bug two.</li>
<script>alert(1)</script>
</body></html>`

	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "Release Notes" {
		t.Errorf("title = %q, want Release Notes", doc.Title)
	}
	for _, want := range []string{"## Overview", "## Fixes", "General changes.", "Bug one.", "Bug two."} {
		if !strings.Contains(doc.Text, want) {
			t.Errorf("text missing %q:\n%s", want, doc.Text)
		}
	}
	for _, skip := range []string{"skip this", "alert", "body{}"} {
		if strings.Contains(doc.Text, skip) {
			t.Errorf("text should not contain %q:\n%s", skip, doc.Text)
		}
	}

	secs := doc.Sections()
	if len(secs) != 2 {
		t.Fatalf("sections = %d, want 2: %+v", len(secs), secs)
	}
	if secs[0].Title != "Overview" || secs[1].Title != "Fixes" {
		t.Errorf("section titles = %q, %q", secs[0].Title, secs[1].Title)
	}
}

func TestDocumentSections_StyledUsesParagraphs(t *testing.T) {
	doc := &Document{
		Styled: true,
		Paragraphs: []section.Paragraph{
			{Text: "Intro", Style: "Heading1"},
			{Text: "Hello world"},
		},
	}
	secs := doc.Sections()
	if len(secs) != 1 {
		t.Fatalf("sections = %d, want 1", len(secs))
	}
	if secs[0].Title != "Intro" {
		t.Errorf("title = %q, want Intro", secs[0].Title)
	}
	if !strings.Contains(secs[0].Content, "Hello world") {
		t.Errorf("content = %q", secs[0].Content)
	}
}

func TestDocumentSections_MarkupUsesText(t *testing.T) {
	doc := &Document{Text: "## A\ncontent a\n## B\ncontent b\n"}
	secs := doc.Sections()
	if len(secs) != 2 {
		t.Fatalf("sections = %d, want 2", len(secs))
	}
}
