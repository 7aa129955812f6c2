// Package answers recovers {question, answer} pairs from the model's
// free-text reply. Three tiers are tried in order: a numbered-section split,
// a blank-line paragraph split, and a final length reconciliation, so a
// malformed reply never yields fewer pairs than questions asked.
package answers

import (
	"regexp"
	"strconv"
	"strings"
)

// Pair is one interview question with its model answer.
type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Placeholder answers used when the reply under-delivers.
const (
	PlaceholderNoResponse = "No response generated."
	PlaceholderMissing    = "Answer not available."
	PlaceholderParseError = "Answer not available due to parsing error."
)

var (
	markerRe     = regexp.MustCompile(`\n?(\d+)\.\s*`)
	boldRe       = regexp.MustCompile(`\*\*.*?\*\*`)
	hrRe         = regexp.MustCompile(`---+`)
	newlinesRe   = regexp.MustCompile(`\n+`)
	paragraphRe  = regexp.MustCompile(`\n\s*\n+`)
	leadNumberRe = regexp.MustCompile(`^\d+\.\s*`)
)

// Parse pairs the reply text with the ordered question list. The output
// always has exactly len(questions) entries, keyed by the canonical question
// strings, never by question text parsed out of the reply.
func Parse(reply string, questions []string) []Pair {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		pairs := make([]Pair, len(questions))
		for i, q := range questions {
			pairs[i] = Pair{Question: q, Answer: PlaceholderNoResponse}
		}
		return pairs
	}

	pairs := splitNumbered(reply, questions)

	// Escalate to the paragraph split when the numbered split recovered
	// less than 80% of the expected answers.
	if float64(len(pairs)) < float64(len(questions))*0.8 {
		pairs = splitParagraphs(reply, questions)
	}

	// Length reconciliation: pad misses, trim excess.
	for i := len(pairs); i < len(questions); i++ {
		pairs = append(pairs, Pair{Question: questions[i], Answer: PlaceholderParseError})
	}
	if len(pairs) > len(questions) {
		pairs = pairs[:len(questions)]
	}
	return pairs
}

// splitNumbered splits the reply on leading "<digits>." markers and pairs
// section N with questions[N-1]. Sections with out-of-range numbers or empty
// bodies are dropped.
func splitNumbered(reply string, questions []string) []Pair {
	markers := markerRe.FindAllStringSubmatchIndex(reply, -1)

	var pairs []Pair
	for i, m := range markers {
		num, err := strconv.Atoi(reply[m[2]:m[3]])
		if err != nil {
			continue
		}

		end := len(reply)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		answer := cleanSection(reply[m[1]:end])

		idx := num - 1
		if idx >= 0 && idx < len(questions) && answer != "" {
			pairs = append(pairs, Pair{Question: questions[idx], Answer: answer})
		}
	}
	return pairs
}

// splitParagraphs pairs the i-th blank-line-separated paragraph with the i-th
// question, ignoring any numbering embedded in the reply.
func splitParagraphs(reply string, questions []string) []Pair {
	var sections []string
	for _, s := range paragraphRe.Split(reply, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sections = append(sections, s)
		}
	}

	pairs := make([]Pair, 0, len(questions))
	for i, question := range questions {
		answer := PlaceholderMissing
		if i < len(sections) {
			if cleaned := cleanParagraph(sections[i]); cleaned != "" {
				answer = cleaned
			}
		}
		pairs = append(pairs, Pair{Question: question, Answer: answer})
	}
	return pairs
}

// cleanSection strips markdown bold spans, the literal "AI Model Answer"
// phrase, horizontal rules, and collapses internal newlines to spaces.
func cleanSection(text string) string {
	text = boldRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "AI Model Answer", "")
	text = hrRe.ReplaceAllString(text, "")
	text = newlinesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// cleanParagraph strips a leading section number plus the same noise
// patterns, keeping paragraph-internal newlines.
func cleanParagraph(text string) string {
	text = leadNumberRe.ReplaceAllString(text, "")
	text = boldRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "AI Model Answer", "")
	return strings.TrimSpace(text)
}
