package summarize

import "fmt"

const summaryPrompt = `You are an assistant that summarizes sections of a document.

Summarize the following section content:

%s

Summary:`

// buildPrompt wraps section content in the summarization instruction.
func buildPrompt(text string) string {
	return fmt.Sprintf(summaryPrompt, text)
}
