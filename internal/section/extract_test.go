package section

import (
	"strings"
	"testing"
)

func TestFromMarkup_BasicSplit(t *testing.T) {
	input := "## Intro\nHello world\n## Body\n" + strings.Repeat("x", 3000)
	sections := FromMarkup(input)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "Intro" {
		t.Errorf("expected title %q, got %q", "Intro", sections[0].Title)
	}
	if strings.TrimSpace(sections[0].Content) != "Hello world" {
		t.Errorf("expected content %q, got %q", "Hello world", sections[0].Content)
	}
	if sections[1].Title != "Body" {
		t.Errorf("expected title %q, got %q", "Body", sections[1].Title)
	}
	if strings.TrimSpace(sections[1].Content) != strings.Repeat("x", 3000) {
		t.Errorf("body content mismatch, got %d chars", len(sections[1].Content))
	}
	for i, sec := range sections {
		if sec.Order != i {
			t.Errorf("section %d: expected order %d, got %d", i, i, sec.Order)
		}
	}
}

func TestFromMarkup_ContentBeforeFirstHeading(t *testing.T) {
	input := "preamble text\n## First\nbody"
	sections := FromMarkup(input)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != DefaultTitle {
		t.Errorf("expected default title %q, got %q", DefaultTitle, sections[0].Title)
	}
	if strings.TrimSpace(sections[0].Content) != "preamble text" {
		t.Errorf("unexpected preamble content %q", sections[0].Content)
	}
}

func TestFromMarkup_NoHeadings(t *testing.T) {
	input := "just some text\nacross two lines"
	sections := FromMarkup(input)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != DefaultTitle {
		t.Errorf("expected default title, got %q", sections[0].Title)
	}
	if strings.TrimSpace(sections[0].Content) != input {
		t.Errorf("unexpected content %q", sections[0].Content)
	}
}

func TestFromMarkup_OnlyDoubleHashIsBoundary(t *testing.T) {
	input := "# top\n### deep\n#### deeper\n## Real\ncontent"
	sections := FromMarkup(input)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != DefaultTitle {
		t.Errorf("expected default title, got %q", sections[0].Title)
	}
	// Deeper and shallower headings stay in the content.
	if !strings.Contains(sections[0].Content, "# top") || !strings.Contains(sections[0].Content, "### deep") {
		t.Errorf("expected other heading depths kept as content, got %q", sections[0].Content)
	}
	if sections[1].Title != "Real" {
		t.Errorf("expected title %q, got %q", "Real", sections[1].Title)
	}
}

func TestFromMarkup_IndentedHeading(t *testing.T) {
	// Heading detection runs on the trimmed line.
	sections := FromMarkup("   ## Padded\ntext")
	if len(sections) != 1 || sections[0].Title != "Padded" {
		t.Fatalf("expected single %q section, got %+v", "Padded", sections)
	}
}

func TestFromMarkup_EmptyDocument(t *testing.T) {
	sections := FromMarkup("")
	if len(sections) != 1 {
		t.Fatalf("expected 1 section for empty input, got %d", len(sections))
	}
	if sections[0].Title != DefaultTitle {
		t.Errorf("expected default title, got %q", sections[0].Title)
	}
	if strings.TrimSpace(sections[0].Content) != "" {
		t.Errorf("expected empty content, got %q", sections[0].Content)
	}
}

func TestFromMarkup_LosslessContent(t *testing.T) {
	// Concatenated section contents reconstruct the document minus the
	// heading-marker lines, up to line-terminator normalization.
	input := "preamble\n## A\na1\na2\n## B\nb1"
	sections := FromMarkup(input)

	var got strings.Builder
	for _, sec := range sections {
		got.WriteString(sec.Content)
	}
	want := "preamble\na1\na2\nb1\n"
	if got.String() != want {
		t.Errorf("expected reconstruction %q, got %q", want, got.String())
	}
}

func TestFromMarkup_HeadingWithEmptySection(t *testing.T) {
	// A heading immediately followed by another heading yields a section
	// with empty content.
	sections := FromMarkup("## One\n## Two\ntext")
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "One" || strings.TrimSpace(sections[0].Content) != "" {
		t.Errorf("expected empty %q section, got %+v", "One", sections[0])
	}
}

func TestFromParagraphs_HeadingStyles(t *testing.T) {
	paras := []Paragraph{
		{Text: "My Document", Style: "Title"},
		{Text: "intro para", Style: "Normal"},
		{Text: "Chapter 1", Style: "Heading1"},
		{Text: "chapter text", Style: "Normal"},
		{Text: "Details", Style: "Heading 2"},
		{Text: "deep heading ignored", Style: "Heading3"},
	}
	sections := FromParagraphs(paras, nil)

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	wantTitles := []string{"My Document", "Chapter 1", "Details"}
	for i, w := range wantTitles {
		if sections[i].Title != w {
			t.Errorf("section %d: expected title %q, got %q", i, w, sections[i].Title)
		}
	}
	if !strings.Contains(sections[2].Content, "deep heading ignored") {
		t.Errorf("expected Heading3 paragraph kept as content, got %q", sections[2].Content)
	}
}

func TestFromParagraphs_BlankHeadingIsContent(t *testing.T) {
	// A heading-styled paragraph with no text is not a boundary.
	paras := []Paragraph{
		{Text: "body", Style: "Normal"},
		{Text: "   ", Style: "Heading1"},
		{Text: "more body", Style: "Normal"},
	}
	sections := FromParagraphs(paras, nil)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != DefaultTitle {
		t.Errorf("expected default title, got %q", sections[0].Title)
	}
}

func TestFromParagraphs_CustomStyleSet(t *testing.T) {
	paras := []Paragraph{
		{Text: "Chapter", Style: "MyHeading"},
		{Text: "body", Style: "Normal"},
	}
	sections := FromParagraphs(paras, map[string]bool{"myheading": true})
	if len(sections) != 1 || sections[0].Title != "Chapter" {
		t.Fatalf("expected single %q section, got %+v", "Chapter", sections)
	}
}

func TestNormalizeStyle(t *testing.T) {
	cases := map[string]string{
		"Heading 1": "heading1",
		"Heading1":  "heading1",
		"TITLE":     "title",
		"":          "",
	}
	for in, want := range cases {
		if got := NormalizeStyle(in); got != want {
			t.Errorf("NormalizeStyle(%q): expected %q, got %q", in, want, got)
		}
	}
}
