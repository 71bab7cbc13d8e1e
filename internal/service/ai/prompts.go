package ai

import (
	"fmt"
	"strings"

	"answerbox/internal/model"
)

// FallbackAnswer is returned to callers when the provider produces no
// content.
const FallbackAnswer = "unable to generate answer at this time"

// SystemPrompt establishes the factual, source-grounded assistant persona
// used for every synthesis call.
const SystemPrompt = `You are a precise research assistant. Answer using only the information in the provided search results. Cite sources with their bracketed number, like [1]. If the results do not contain enough information to answer, say so instead of guessing.`

// ContextBlock renders sources as numbered "[i] title: description" entries
// separated by blank lines. An empty source list yields an empty block.
func ContextBlock(sources []model.SearchSource) string {
	var b strings.Builder
	for i, s := range sources {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[%d] %s: %s", i+1, s.Title, s.Description)
	}
	return b.String()
}

// AnswerPrompt builds the user message embedding the query and the source
// context block.
func AnswerPrompt(query string, sources []model.SearchSource) string {
	return fmt.Sprintf(`Answer the question below using the search results that follow.

Question: %s

Search results:
%s`, query, ContextBlock(sources))
}
