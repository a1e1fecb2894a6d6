package interleave

import "strings"

// SentencePair is a source sentence shown together with its translation.
type SentencePair struct {
	Index  int
	Source string
	Target string
}

// Align pairs source[i] with target[i] positionally. The number of pairs is
// the smaller of the two non-blank sentence counts; the tail of the longer
// side is dropped.
func Align(source, target []string) []SentencePair {
	n := min(countNonBlank(source), countNonBlank(target))
	pairs := make([]SentencePair, 0, n)
	for i := range n {
		pairs = append(pairs, SentencePair{
			Index:  i,
			Source: source[i],
			Target: target[i],
		})
	}
	return pairs
}

// AlignTexts segments both texts and aligns the resulting sentences.
func AlignTexts(original, translated string) []SentencePair {
	return Align(Segment(original), Segment(translated))
}

func countNonBlank(ss []string) int {
	n := 0
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
