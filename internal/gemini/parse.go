package gemini

import (
	"encoding/json"
	"strings"
)

// The model reply arrives inside a provider envelope whose exact shape
// is not guaranteed: the text usually sits under
// candidates[0].content.parts[0].text, but flatter content/data fields
// have been observed. Each extractor tries one fixed path through the
// decoded tree; they run in priority order and the first hit wins.
type extractor func(envelope any) (string, bool)

var extractors = []extractor{
	candidateText,
	flatField("content"),
	flatField("data"),
}

// ParseResponse locates the model's reply text inside envelope, strips
// any surrounding Markdown code fence and decodes it as JSON. It
// returns the decoded value, or the cleaned text verbatim when it is
// not valid JSON, or nil when no text could be located. It never
// panics or returns an error.
func ParseResponse(envelope any) (result any) {
	defer func() {
		if recover() != nil {
			result = nil
		}
	}()

	var text string
	for _, extract := range extractors {
		if s, ok := extract(envelope); ok {
			text = s
			break
		}
	}

	text = stripCodeFence(text)
	if text == "" {
		return nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return text
	}
	return parsed
}

// candidateText walks candidates[0].content.parts[0].text.
func candidateText(envelope any) (string, bool) {
	candidates, ok := field(envelope, "candidates")
	if !ok {
		return "", false
	}
	first, ok := index(candidates, 0)
	if !ok {
		return "", false
	}
	content, ok := field(first, "content")
	if !ok {
		return "", false
	}
	parts, ok := field(content, "parts")
	if !ok {
		return "", false
	}
	part, ok := index(parts, 0)
	if !ok {
		return "", false
	}
	return stringField(part, "text")
}

// flatField reads a top-level string field of the envelope.
func flatField(name string) extractor {
	return func(envelope any) (string, bool) {
		return stringField(envelope, name)
	}
}

func field(v any, name string) (any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	child, ok := m[name]
	if !ok || child == nil {
		return nil, false
	}
	return child, true
}

func index(v any, i int) (any, bool) {
	s, ok := v.([]any)
	if !ok || i >= len(s) {
		return nil, false
	}
	return s[i], true
}

func stringField(v any, name string) (string, bool) {
	child, ok := field(v, name)
	if !ok {
		return "", false
	}
	s, ok := child.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// stripCodeFence removes a leading ```json or ``` marker and a trailing
// ``` marker, trimming whitespace at each step.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if after, ok := strings.CutPrefix(text, "```json"); ok {
		text = strings.TrimSpace(after)
	} else if after, ok := strings.CutPrefix(text, "```"); ok {
		text = strings.TrimSpace(after)
	}
	if before, ok := strings.CutSuffix(text, "```"); ok {
		text = strings.TrimSpace(before)
	}
	return text
}
