package genai

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NormalizeJSONResponse strips leading/trailing markdown code fences from a
// model response. Models occasionally wrap the JSON contract output in
// ```json fences despite being told not to; the fenced and unfenced forms
// must parse identically.
func NormalizeJSONResponse(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	return strings.TrimSpace(cleaned)
}

// objectKeyOrder returns the top-level keys of a JSON object in the order
// they appear in the document. Go maps drop this ordering on unmarshal, but
// downstream diffing preserves the model's proposal order, so it is
// recovered here from the raw bytes.
func objectKeyOrder(raw []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)

		// Skip the value, whatever shape it has.
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return keys
		}
	}
	return keys
}
