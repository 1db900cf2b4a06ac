package textgen

import (
	"encoding/json"
	"regexp"
	"strings"
)

// DefaultSubject is used when no subject can be extracted from the response.
const DefaultSubject = "Personalized Outreach"

var (
	jsonSpanRe    = regexp.MustCompile(`(?s)\{.*\}`)
	subjectLineRe = regexp.MustCompile(`(?i)subject:?\s*(.+?)(?:\n|$)`)
	jsonSubjectRe = regexp.MustCompile(`(?s)\{.*"subject".*?\}`)
	jsonFenceRe   = regexp.MustCompile("(?s)```json.*?```")
	fenceRe       = regexp.MustCompile("(?s)```.*?```")
)

// ParseDraft turns the model's free-form response into a subject/body pair.
// Strategies run in order: structured JSON extraction, then line heuristics,
// then placeholder defaults. The last one cannot fail, so a garbled response
// still yields a usable draft.
func ParseDraft(text string) EmailDraft {
	if draft, ok := parseJSONSpan(text); ok {
		return draft
	}
	return parseHeuristic(text)
}

// parseJSONSpan grabs the greedy first-brace-to-last-brace span and tries it
// as a JSON object. Subject and body are taken verbatim, even when a field is
// missing from the object.
func parseJSONSpan(text string) (EmailDraft, bool) {
	span := jsonSpanRe.FindString(text)
	if span == "" {
		return EmailDraft{}, false
	}

	var draft EmailDraft
	if err := json.Unmarshal([]byte(span), &draft); err != nil {
		return EmailDraft{}, false
	}

	return draft, true
}

func parseHeuristic(text string) EmailDraft {
	subject := DefaultSubject
	if m := subjectLineRe.FindStringSubmatch(text); m != nil {
		subject = strings.TrimSpace(m[1])
	}

	body := removeFirst(subjectLineRe, text)
	body = removeFirst(jsonSubjectRe, body)
	body = removeFirst(jsonFenceRe, body)
	body = removeFirst(fenceRe, body)
	body = strings.TrimSpace(body)

	return EmailDraft{Subject: subject, Body: body}
}

// removeFirst drops only the first match, matching how the reference
// heuristics behave when a fragment appears more than once.
func removeFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
