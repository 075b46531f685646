package dataset

import "strings"

const minTextLength = 10

// CleanText trims and collapses whitespace. Non-strings and texts shorter than
// ten characters are rejected.
func CleanText(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.Join(strings.Fields(s), " ")
	if len(s) < minTextLength {
		return "", false
	}
	return s, true
}

// scalarColumns keeps the non-text columns that fit in a flat payload.
func scalarColumns(row map[string]any, textColumn string) map[string]any {
	out := make(map[string]any)
	for k, v := range row {
		if k == textColumn {
			continue
		}
		switch v.(type) {
		case string, bool, float64, int, int64:
			out[k] = v
		}
	}
	return out
}
