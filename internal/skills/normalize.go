// Package skills resolves whether a required skill is present in a candidate's
// skill set, using exact, synonym, and approximate matching in that order.
package skills

import "strings"

// Normalize canonicalizes a skill string for comparison: lowercase, trimmed,
// dashes and underscores mapped to spaces, and runs of whitespace collapsed
// to a single space.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}
