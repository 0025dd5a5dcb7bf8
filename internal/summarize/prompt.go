package summarize

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are writing a daily standup update from a developer's git commits.

Rules:
1. Merge related commits and produce 2-5 bullet points.
2. Write in past tense ("Fixed ...", "Added ...", "Reworked ...").
3. Omit trivial commits: version bumps, typo fixes, merge commits, formatting-only changes.
4. Keep each bullet to a single line in plain language.

Respond with ONLY the bullet points. No preamble, no closing remarks.`

// SystemPrompt returns the fixed system instruction for the LLM.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt constructs the user message from the raw commit text and
// an optional free-text steering hint. The hint, when present, is appended
// as exactly one "Context:" clause.
func BuildUserPrompt(commitText, hint string) string {
	var b strings.Builder

	b.WriteString("Summarize the following commits for a standup update.\n\n")
	b.WriteString(commitText)
	b.WriteString("\n")

	if hint != "" {
		fmt.Fprintf(&b, "\nContext: %s\n", hint)
	}

	return b.String()
}
