package mapper

import (
	"bytes"
	"encoding/json"
)

// EncodeDrinkList serializes drinks as a compact JSON array, keeping order and exact values
// (HTML characters are not escaped). nil and empty lists both encode to "[]".
// Values must be valid UTF-8; JSON replaces invalid bytes with U+FFFD, so
// WeddingEvent.Validate rejects such values before they are stored.
func EncodeDrinkList(drinks []string) string {
	if len(drinks) == 0 {
		return "[]"
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(drinks); err != nil {
		// []string always encodes; keep the function total anyway.
		return "[]"
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// DecodeDrinkList parses a column written by EncodeDrinkList. Empty or malformed input
// yields an empty (non-nil) list so display code never has to nil-check.
func DecodeDrinkList(s string) []string {
	if s == "" {
		return []string{}
	}
	var drinks []string
	if err := json.Unmarshal([]byte(s), &drinks); err != nil || drinks == nil {
		return []string{}
	}
	return drinks
}
