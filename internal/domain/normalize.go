package domain

import "strings"

// NormalizeText folds a word or phrase into the form used for case-insensitive
// definition matching: lowercased, trimmed, with every whitespace run
// collapsed to one space. Diacritics, hyphens and apostrophes are kept.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
