package textgen

// PromptInput carries the prospect attributes the prompt is built from.
// Industry and PainPoints are left out of the prompt entirely when nil.
type PromptInput struct {
	Name       string
	Company    string
	Role       string
	Industry   *string
	PainPoints *string
}

// EmailDraft is whatever the parser could extract. No length or content
// validation happens after extraction.
type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
