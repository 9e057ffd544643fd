package engine

import "strings"

// Matches reports whether a task title fuzzily matches a free-text query.
// The query is split on whitespace and lowercased; the title matches if it
// contains any one word as a case-insensitive substring. Deliberately
// permissive: over-matching a voice command is easier for the user to
// notice and retry than a silent "nothing happened". An empty query never
// matches.
func Matches(title, query string) bool {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return false
	}
	lower := strings.ToLower(title)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
