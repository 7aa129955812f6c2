// Package prompt builds the instruction string sent to the generative model.
package prompt

import (
	"fmt"
	"strings"
)

// Build renders the model-answer prompt for a role, level and question list.
// It is a pure function: byte-identical output for identical inputs. The
// numbered answer template it emits is the structure the tier-1 response
// parser splits on, so the format here and the parser must move together.
func Build(role, level string, questions []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are an expert interview coach preparing model answers for a %s %s candidate.\n\n", level, role)
	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("- Provide concise, professional answers (2-3 sentences each)\n")
	sb.WriteString("- Answer each question with practical examples and specific details\n")
	fmt.Fprintf(&sb, "- Use a %s level of technical depth\n", strings.ToLower(level))
	sb.WriteString("- Format your response EXACTLY as shown below\n")
	sb.WriteString("- Number each answer clearly\n\n")
	fmt.Fprintf(&sb, "Please provide model answers for the following %d interview questions:\n\n", len(questions))

	for i, question := range questions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, question)
	}

	sb.WriteString("\n\nRESPONSE FORMAT:\nAnswer each question in this exact format:\n\n")
	for i := range questions {
		fmt.Fprintf(&sb, "%d. [Your concise answer for question %d - 2-3 sentences with specific examples]\n\n", i+1, i+1)
	}
	fmt.Fprintf(&sb, "...and so on for all %d questions.\n\n", len(questions))
	fmt.Fprintf(&sb, "Remember: Keep answers professional, practical, and appropriate for a %s %s candidate.", level, role)

	return sb.String()
}
