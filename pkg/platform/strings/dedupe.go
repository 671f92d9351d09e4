// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
//
// Roster uploads routinely contain the same registration number twice and
// trailing-whitespace cells; callers run this before any identifier set
// reaches a store query.
//
// Example:
//
//	DedupeAndTrim([]string{"  RA231 ", "RA232", "RA231", "", "  "})
//	// Returns: []string{"RA231", "RA232"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}
