package reflection

import (
	"encoding/json"
	"regexp"
	"strings"
)

type reflectionPayload struct {
	Reflection string `json:"reflection"`
}

// reflectionField matches the value of a reflection key, including a value
// cut off before its closing quote.
var reflectionField = regexp.MustCompile(`(?s)"?reflection"?\s*:\s*"((?:[^"\\]|\\.)*)`)

var salvageStripper = strings.NewReplacer("{", "", "}", "", `"`, "", "\n", "")

// ParseReflection extracts the reflection text from a model answer. It tries,
// in order: the whole answer as {"reflection": ...}, the outermost {...}
// object inside surrounding prose, the first quoted reflection value, and
// finally the raw text with JSON punctuation stripped. An empty result means
// nothing usable was found.
func ParseReflection(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if text, ok := decodePayload(raw); ok {
		return text
	}
	if obj, ok := extractJSON(raw); ok {
		if text, ok := decodePayload(obj); ok {
			return text
		}
	}
	if m := reflectionField.FindStringSubmatch(raw); m != nil {
		if text := unescape(m[1]); text != "" {
			return text
		}
	}
	return salvage(raw)
}

func decodePayload(s string) (string, bool) {
	var p reflectionPayload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return "", false
	}
	text := strings.TrimSpace(p.Reflection)
	return text, text != ""
}

// extractJSON returns the substring between the first { and the last }.
func extractJSON(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func unescape(s string) string {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err != nil {
		out = s
	}
	return strings.TrimSpace(out)
}

func salvage(raw string) string {
	s := salvageStripper.Replace(raw)
	s = strings.Replace(s, "reflection:", "", 1)
	return strings.TrimSpace(s)
}
