// Package parse extracts typed fields from the loosely structured JSON
// documents returned by the upstream providers. Responses are treated as
// opaque trees of maps and slices; a missing key at any level yields the
// zero value, never an error, so partial documents still produce partial
// entities.
package parse

// stringAt returns m[key] as a string, or "" when absent or mistyped.
func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// mapAt returns m[key] as a map, or nil when absent or mistyped.
func mapAt(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

// sliceAt returns m[key] as a slice, or nil when absent or mistyped.
func sliceAt(m map[string]any, key string) []any {
	v, _ := m[key].([]any)
	return v
}

// intAt returns m[key] as an int. JSON numbers decode as float64, so
// both float64 and int are accepted.
func intAt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// int64At is intAt for identifier-sized values.
func int64At(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

// boolAt returns m[key] as a bool, or false when absent or mistyped.
func boolAt(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// includedEntries returns the heterogeneous "included" list of a voyager
// document as a slice of maps, skipping entries of other types.
func includedEntries(doc map[string]any) []map[string]any {
	raw := sliceAt(doc, "included")
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
