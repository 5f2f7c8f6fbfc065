package utils

import (
	"encoding/json"
	"strings"
)

// ListToString encodes a string list as JSON text for a text column.
func ListToString(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(items)
	return string(data)
}

// StringToList decodes a JSON text column back into a string list.
func StringToList(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		// Fallback: treat as comma-separated if invalid JSON
		return SplitCSV(s)
	}
	return items
}

// SplitCSV splits a comma separated value, trimming blanks and dropping empty entries.
func SplitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
