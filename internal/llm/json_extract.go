package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// fencePattern matches markdown code fences with an optional language tag.
var fencePattern = regexp.MustCompile("(?s)```(\\w*)\\s*\\n(.+?)\\n```")

// ExtractJSON pulls a JSON document out of a model reply that may wrap it in
// markdown fences or surrounding prose. Fenced ```json blocks (or untagged
// fences) win over raw scanning.
func ExtractJSON(response string) (string, error) {
	for _, match := range fencePattern.FindAllStringSubmatch(response, -1) {
		if len(match) < 3 {
			continue
		}
		lang := strings.ToLower(match[1])
		if lang != "" && lang != "json" {
			continue
		}
		content := strings.TrimSpace(match[2])
		if (strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[")) && isValidJSON(content) {
			return content, nil
		}
	}

	if jsonStr, ok := scanRawJSON(response); ok {
		return jsonStr, nil
	}

	return "", fmt.Errorf("no valid JSON object found in response")
}

// scanRawJSON finds the first complete JSON object or array embedded in text.
func scanRawJSON(response string) (string, bool) {
	startObj := strings.Index(response, "{")
	startArr := strings.Index(response, "[")

	start := -1
	closeChar := byte('}')
	if startObj >= 0 && (startArr < 0 || startObj < startArr) {
		start = startObj
	} else if startArr >= 0 {
		start = startArr
		closeChar = ']'
	}
	if start < 0 {
		return "", false
	}

	jsonStr := matchBrackets(response[start:], closeChar)
	if jsonStr != "" && isValidJSON(jsonStr) {
		return jsonStr, true
	}
	return "", false
}

// matchBrackets returns the prefix of s up to the bracket matching s[0],
// honoring strings and escapes. Empty when brackets never balance.
func matchBrackets(s string, closeChar byte) string {
	if len(s) == 0 {
		return ""
	}

	openChar := s[0]
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
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

		if c == openChar {
			depth++
		} else if c == closeChar {
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}

	return ""
}

func isValidJSON(s string) bool {
	var js json.RawMessage
	return json.Unmarshal([]byte(s), &js) == nil
}

// ExtractJSONAs extracts JSON from a model reply and unmarshals it into T.
func ExtractJSONAs[T any](response string) (T, error) {
	var result T

	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return result, nil
}
