package oracle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls a JSON object of type T out of raw oracle text. The
// reply should contain exactly one JSON object, but models wrap it in
// prose and markdown fences, so the first balanced brace-delimited span is
// located and parsed. Failures wrap ErrMalformedResponse and preserve the
// raw text.
func ExtractJSON[T any](raw string) (T, error) {
	var result T

	span := extractObject(stripCodeFences(raw))
	if span == "" {
		return result, &ResponseError{
			Raw: raw,
			Err: fmt.Errorf("%w: no JSON object found", ErrMalformedResponse),
		}
	}

	if err := json.Unmarshal([]byte(span), &result); err != nil {
		var zero T
		return zero, &ResponseError{
			Raw: raw,
			Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err),
		}
	}
	return result, nil
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// extractObject finds the first balanced { ... } span, honoring string
// literals and escapes.
func extractObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
