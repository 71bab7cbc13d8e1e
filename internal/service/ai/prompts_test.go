package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"answerbox/internal/model"
	"answerbox/internal/service/ai"
)

func TestContextBlock(t *testing.T) {
	sources := []model.SearchSource{
		{ID: "serp-1", Title: "Speed of light - Wikipedia", Description: "It is exact."},
		{ID: "serp-2", Title: "NIST reference", Description: "299,792,458 m/s"},
	}

	block := ai.ContextBlock(sources)
	require.Equal(t, "[1] Speed of light - Wikipedia: It is exact.\n\n[2] NIST reference: 299,792,458 m/s", block)
}

func TestContextBlock_Empty(t *testing.T) {
	require.Empty(t, ai.ContextBlock(nil))
}

func TestAnswerPrompt(t *testing.T) {
	sources := []model.SearchSource{
		{ID: "serp-1", Title: "Title", Description: "Description"},
	}

	prompt := ai.AnswerPrompt("What is the speed of light?", sources)
	require.Contains(t, prompt, "Question: What is the speed of light?")
	require.Contains(t, prompt, "[1] Title: Description")
}

func TestAnswerPrompt_NoSources(t *testing.T) {
	prompt := ai.AnswerPrompt("anything", nil)
	require.Contains(t, prompt, "Question: anything")
	require.Contains(t, prompt, "Search results:\n")
}
