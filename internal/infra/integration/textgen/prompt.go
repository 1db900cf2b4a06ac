package textgen

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the outreach instructions for one prospect. Optional
// attributes become extra bullet lines only when present.
func BuildPrompt(input PromptInput) string {
	var b strings.Builder

	b.WriteString("Generate a professional but friendly cold outreach email for:\n")
	fmt.Fprintf(&b, "- Name: %s\n", input.Name)
	fmt.Fprintf(&b, "- Company: %s\n", input.Company)
	fmt.Fprintf(&b, "- Role: %s\n", input.Role)
	if input.Industry != nil {
		fmt.Fprintf(&b, "- Industry: %s\n", *input.Industry)
	}
	if input.PainPoints != nil {
		fmt.Fprintf(&b, "- Pain Points: %s\n", *input.PainPoints)
	}

	b.WriteString(`
Write a personalized email that:
1. Has a compelling subject line
2. Opens with a personalized hook
3. Briefly explains how we can help with their specific challenges
4. Ends with a soft call-to-action
5. Keeps a professional but conversational tone
6. Is concise (150-250 words)

Return the response in this JSON format:
{
  "subject": "email subject line",
  "body": "email body text"
}`)

	return b.String()
}
