package sanitizer

import "strings"

// CleanFilters drops useless entries from a filter map before it is passed
// to a query layer: nil values and empty (or whitespace-only) strings are
// removed, and surviving string values are trimmed. Other value types pass
// through untouched. The input map is not modified.
func CleanFilters(filters map[string]any) map[string]any {
	result := make(map[string]any, len(filters))

	for key, value := range filters {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			trimmed := strings.TrimSpace(v)
			if trimmed == "" {
				continue
			}
			result[key] = trimmed
		default:
			result[key] = value
		}
	}

	return result
}
