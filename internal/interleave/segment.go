// Package interleave splits a text and its translation into aligned sentence
// pairs and breaks each sentence into display tokens.
package interleave

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isTerminal reports whether r ends a sentence.
func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Segment splits text at every whitespace run that directly follows '.', '!'
// or '?'. The mark stays with the preceding sentence and the whitespace run is
// consumed. Whitespace-only segments are dropped. Abbreviations such as "Dr."
// are not special-cased.
func Segment(text string) []string {
	out := make([]string, 0)
	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) || i == start {
			i += size
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(text[start:i])
		if !isTerminal(prev) {
			i += size
			continue
		}
		out = appendSegment(out, text[start:i])
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += size
		}
		start = i
	}
	return appendSegment(out, text[start:])
}

func appendSegment(out []string, s string) []string {
	if strings.TrimSpace(s) == "" {
		return out
	}
	return append(out, s)
}

// Sentences returns a sequence over Segment(text). Each iteration segments
// the text again, so the sequence can be ranged over more than once.
func Sentences(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range Segment(text) {
			if !yield(s) {
				return
			}
		}
	}
}
