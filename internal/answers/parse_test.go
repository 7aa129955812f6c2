package answers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var threeQuestions = []string{
	"What is a goroutine?",
	"Explain the CAP theorem.",
	"How do you monitor a service?",
}

func TestParse_WellFormedNumberedReply(t *testing.T) {
	reply := `1. A goroutine is a lightweight thread managed by the Go runtime.

2. CAP says a distributed store can give at most two of consistency, availability and partition tolerance.

3. I combine metrics, logs and traces with alerting on symptoms.`

	pairs := Parse(reply, threeQuestions)

	require.Len(t, pairs, 3)
	for i, p := range pairs {
		assert.Equal(t, threeQuestions[i], p.Question, "question must be the canonical input string")
		assert.NotContains(t, p.Answer, "Answer not available")
	}
	assert.Equal(t, "A goroutine is a lightweight thread managed by the Go runtime.", pairs[0].Answer)
	assert.Equal(t, "I combine metrics, logs and traces with alerting on symptoms.", pairs[2].Answer)
}

func TestParse_StripsNoise(t *testing.T) {
	reply := "1. **Answer:** AI Model Answer Goroutines are cheap.\n---\n\n2. Second\nline joined.\n\n3. Third answer."

	pairs := Parse(reply, threeQuestions)

	require.Len(t, pairs, 3)
	assert.Equal(t, "Goroutines are cheap.", pairs[0].Answer)
	assert.Equal(t, "Second line joined.", pairs[1].Answer)
}

func TestParse_UnnumberedReplyFallsBackToParagraphs(t *testing.T) {
	reply := `Goroutines are lightweight threads.

The CAP theorem is about trade-offs.`

	pairs := Parse(reply, threeQuestions)

	require.Len(t, pairs, 3)
	assert.Equal(t, "Goroutines are lightweight threads.", pairs[0].Answer)
	assert.Equal(t, "The CAP theorem is about trade-offs.", pairs[1].Answer)
	assert.Equal(t, PlaceholderMissing, pairs[2].Answer)
}

func TestParse_SingleUnstructuredParagraph(t *testing.T) {
	reply := "Here is everything I know about your questions in one block of text."

	pairs := Parse(reply, threeQuestions)

	require.Len(t, pairs, 3)
	for i, p := range pairs {
		assert.Equal(t, threeQuestions[i], p.Question)
	}
	assert.Equal(t, reply, pairs[0].Answer)
	assert.Equal(t, PlaceholderMissing, pairs[1].Answer)
	assert.Equal(t, PlaceholderMissing, pairs[2].Answer)
}

func TestParse_EmptyReply(t *testing.T) {
	for _, reply := range []string{"", "   \n\t  "} {
		pairs := Parse(reply, threeQuestions)

		require.Len(t, pairs, 3)
		for i, p := range pairs {
			assert.Equal(t, threeQuestions[i], p.Question)
			assert.Equal(t, PlaceholderNoResponse, p.Answer)
		}
	}
}

func TestParse_PartialNumberedReplyPadsTail(t *testing.T) {
	questions := []string{"Q1", "Q2", "Q3", "Q4", "Q5"}
	// 4 of 5 numbered answers: 80% clears the tier-1 threshold, tier 3 pads.
	reply := "1. A1\n\n2. A2\n\n3. A3\n\n4. A4"

	pairs := Parse(reply, questions)

	require.Len(t, pairs, 5)
	assert.Equal(t, "A1", pairs[0].Answer)
	assert.Equal(t, "A4", pairs[3].Answer)
	assert.Equal(t, "Q5", pairs[4].Question)
	assert.Equal(t, PlaceholderParseError, pairs[4].Answer)
}

func TestParse_ExcessAnswersTruncated(t *testing.T) {
	reply := "1. A1\n\n2. A2\n\n3. A3"

	pairs := Parse(reply, []string{"Q1", "Q2"})

	require.Len(t, pairs, 2)
	assert.Equal(t, "A1", pairs[0].Answer)
	assert.Equal(t, "A2", pairs[1].Answer)
}

func TestParse_OutOfRangeNumbersIgnored(t *testing.T) {
	reply := "1. First answer.\n\n9. Out of range.\n\n2. Second answer."

	pairs := Parse(reply, []string{"Q1", "Q2"})

	require.Len(t, pairs, 2)
	assert.Equal(t, "First answer.", pairs[0].Answer)
	assert.Equal(t, "Second answer.", pairs[1].Answer)
}

func TestParse_LengthInvariant(t *testing.T) {
	replies := []string{
		"",
		"no numbering at all",
		"1. only one numbered answer",
		"1. a\n\n2. b\n\n3. c\n\n4. d\n\n5. e",
		strings.Repeat("word ", 500),
	}

	for k := 0; k <= 6; k++ {
		questions := make([]string, k)
		for i := range questions {
			questions[i] = fmt.Sprintf("Question %d", i+1)
		}
		for _, reply := range replies {
			pairs := Parse(reply, questions)
			require.Len(t, pairs, k, "reply %q with %d questions", reply, k)
			for i, p := range pairs {
				assert.Equal(t, questions[i], p.Question)
				assert.NotEmpty(t, p.Answer)
			}
		}
	}
}
