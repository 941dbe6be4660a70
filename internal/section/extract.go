package section

import (
	"regexp"
	"strings"
)

// headingPattern matches markup section boundaries: exactly two leading '#'
// characters followed by whitespace and the title. Other heading depths are
// treated as ordinary content.
var headingPattern = regexp.MustCompile(`^##\s+(.*)`)

// DefaultHeadingStyles is the style-name set that marks a section boundary
// in styled documents. Names are compared after NormalizeStyle.
func DefaultHeadingStyles() map[string]bool {
	return map[string]bool{
		"title":    true,
		"heading1": true,
		"heading2": true,
	}
}

// NormalizeStyle lowercases a style name and strips spaces, so that
// "Heading 1" and "Heading1" compare equal.
func NormalizeStyle(style string) string {
	return strings.ToLower(strings.ReplaceAll(style, " ", ""))
}

// FromMarkup splits document text into sections on '## ' heading lines.
// Content before the first heading lands in a default "Introduction" section.
// Malformed input never fails; a document without headings yields a single
// section holding the whole text.
func FromMarkup(text string) []Section {
	acc := newAccumulator()

	for _, line := range strings.Split(text, "\n") {
		if m := headingPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			acc.startSection(strings.TrimSpace(m[1]))
			continue
		}
		acc.addLine(line)
	}

	return acc.finish()
}

// FromParagraphs splits styled paragraphs into sections. A paragraph is a
// boundary when its normalized style is in headingStyles and its trimmed
// text is non-empty. A nil headingStyles uses DefaultHeadingStyles.
func FromParagraphs(paragraphs []Paragraph, headingStyles map[string]bool) []Section {
	if headingStyles == nil {
		headingStyles = DefaultHeadingStyles()
	}

	acc := newAccumulator()

	for _, para := range paragraphs {
		trimmed := strings.TrimSpace(para.Text)
		if headingStyles[NormalizeStyle(para.Style)] && trimmed != "" {
			acc.startSection(trimmed)
			continue
		}
		acc.addLine(para.Text)
	}

	return acc.finish()
}

// accumulator collects lines into the current section and flushes it when
// the next boundary arrives. Untitled leading content gets the default
// title on flush; an untitled blank accumulator is dropped.
type accumulator struct {
	sections []Section
	title    string
	content  strings.Builder
}

func newAccumulator() *accumulator {
	return &accumulator{}
}

func (a *accumulator) addLine(line string) {
	a.content.WriteString(line)
	a.content.WriteByte('\n')
}

func (a *accumulator) startSection(title string) {
	a.flush()
	a.title = title
}

func (a *accumulator) flush() {
	content := a.content.String()
	a.content.Reset()

	title := a.title
	a.title = ""
	if title == "" {
		if strings.TrimSpace(content) == "" {
			return
		}
		title = DefaultTitle
	}

	a.sections = append(a.sections, Section{
		Title:   title,
		Content: content,
		Order:   len(a.sections),
	})
}

func (a *accumulator) finish() []Section {
	a.flush()
	if len(a.sections) == 0 {
		// Boundary-free document: a single default section holds everything,
		// even if that is nothing.
		a.sections = append(a.sections, Section{Title: DefaultTitle})
	}
	return a.sections
}
