package prompt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_Deterministic(t *testing.T) {
	questions := []string{"What is a goroutine?", "Explain CAP theorem.", "How do you test APIs?"}

	first := Build("Software Engineer", "Mid-Level", questions)
	second := Build("Software Engineer", "Mid-Level", questions)

	assert.Equal(t, first, second, "identical inputs must produce byte-identical prompts")
}

func TestBuild_Content(t *testing.T) {
	questions := []string{"What is a goroutine?", "Explain CAP theorem."}
	p := Build("Data Scientist", "Junior", questions)

	assert.Contains(t, p, "expert interview coach")
	assert.Contains(t, p, "Junior Data Scientist candidate")
	assert.Contains(t, p, "junior level of technical depth")
	assert.Contains(t, p, "2-3 sentences")
	assert.Contains(t, p, "following 2 interview questions")

	for i, q := range questions {
		assert.Contains(t, p, fmt.Sprintf("%d. %s", i+1, q))
	}

	assert.Contains(t, p, "RESPONSE FORMAT:")
	assert.Contains(t, p, "...and so on for all 2 questions.")
}

func TestBuild_EmptyQuestionList(t *testing.T) {
	p := Build("Software Engineer", "Junior", nil)

	assert.Contains(t, p, "following 0 interview questions")
	assert.NotContains(t, p, "1. ")
}
