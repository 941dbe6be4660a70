package section

// DefaultTitle names content that appears before the first heading.
const DefaultTitle = "Introduction"

// Section is a titled span of document content.
type Section struct {
	Title   string
	Content string
	Order   int
}

// Paragraph is a styled paragraph from a word-processor document.
// Style is the document's style name for the paragraph (e.g. "Heading1").
type Paragraph struct {
	Text  string
	Style string
}
