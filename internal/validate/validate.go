package validate

// HasAll reports whether every name in fields is present as a key in
// payload. Presence only; values are not inspected.
func HasAll(payload map[string]any, fields ...string) bool {
	for _, f := range fields {
		if _, ok := payload[f]; !ok {
			return false
		}
	}
	return true
}
