package generation

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonFence  = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	plainFence = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ExtractJSON returns the contents of the first ```json fenced block in
// text, else of the first fenced block of any kind, trimmed. Text without
// a fence is returned unchanged.
func ExtractJSON(text string) string {
	if m := jsonFence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := plainFence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}

// ParseJSON decodes the JSON payload of model text into v. The fenced
// candidate is tried first, then the raw text. When both fail the result
// is a *ParseError.
func ParseJSON(text string, v interface{}) error {
	candidate := ExtractJSON(text)
	err := json.Unmarshal([]byte(candidate), v)
	if err == nil {
		return nil
	}
	if candidate == text {
		return &ParseError{Candidate: candidate, Err: err}
	}

	if rawErr := json.Unmarshal([]byte(strings.TrimSpace(text)), v); rawErr != nil {
		return &ParseError{Candidate: text, Err: rawErr}
	}
	return nil
}
