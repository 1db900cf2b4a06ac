package textgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDraftJSONEmbeddedInProse(t *testing.T) {
	raw := "Sure! Here is the email you asked for:\n" +
		`{"subject":"Hi","body":"Hello there"}` + "\nLet me know if you need anything else."

	draft := ParseDraft(raw)

	assert.Equal(t, "Hi", draft.Subject)
	assert.Equal(t, "Hello there", draft.Body)
}

func TestParseDraftCleanJSON(t *testing.T) {
	draft := ParseDraft(`{"subject":"Quarterly sync","body":"Hi Ana, quick note."}`)

	assert.Equal(t, "Quarterly sync", draft.Subject)
	assert.Equal(t, "Hi Ana, quick note.", draft.Body)
}

func TestParseDraftJSONInsideFence(t *testing.T) {
	raw := "```json\n{\"subject\":\"Hello\",\"body\":\"Fenced body\"}\n```"

	draft := ParseDraft(raw)

	assert.Equal(t, "Hello", draft.Subject)
	assert.Equal(t, "Fenced body", draft.Body)
}

func TestParseDraftJSONMissingFieldsTakenVerbatim(t *testing.T) {
	draft := ParseDraft(`{"subject":"Only a subject"}`)

	assert.Equal(t, "Only a subject", draft.Subject)
	assert.Equal(t, "", draft.Body)
}

func TestParseDraftSubjectLineFallback(t *testing.T) {
	raw := "Subject: Quick question\nHi John,\nI noticed your team is growing fast."

	draft := ParseDraft(raw)

	assert.Equal(t, "Quick question", draft.Subject)
	assert.Equal(t, "Hi John,\nI noticed your team is growing fast.", draft.Body)
}

func TestParseDraftSubjectLineCaseInsensitive(t *testing.T) {
	raw := "SUBJECT Quick question\nBody text here."

	draft := ParseDraft(raw)

	assert.Equal(t, "Quick question", draft.Subject)
	assert.Equal(t, "Body text here.", draft.Body)
}

func TestParseDraftPlaceholderWhenNothingMatches(t *testing.T) {
	raw := "Here is an outreach email for your prospect.\nHope it helps!"

	draft := ParseDraft(raw)

	assert.Equal(t, DefaultSubject, draft.Subject)
	assert.Equal(t, raw, draft.Body)
}

func TestParseDraftInvalidJSONFallsThroughToHeuristics(t *testing.T) {
	raw := "{not valid json\nSubject: Saying hello\nThe actual body follows here."

	draft := ParseDraft(raw)

	assert.Equal(t, "Saying hello", draft.Subject)
	assert.Contains(t, draft.Body, "The actual body follows here.")
}

func TestParseDraftEmptyInput(t *testing.T) {
	draft := ParseDraft("")

	assert.Equal(t, DefaultSubject, draft.Subject)
	assert.Equal(t, "", draft.Body)
}
