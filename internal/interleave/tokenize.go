package interleave

import "strings"

// Token is one space-delimited piece of a sentence.
type Token struct {
	// Display is the original piece followed by a single space.
	Display string `json:"display"`
	// LookupKey is the piece with sentence punctuation and quotes removed.
	LookupKey string `json:"lookupKey"`
	Hoverable bool   `json:"hoverable"`
}

var stripPunct = strings.NewReplacer(
	".", "", ",", "", "!", "", "?", "", ";", "", ":", "",
	`"`, "", "“", "", "”", "", "„", "",
)

// LookupKey strips the punctuation set used for dictionary lookups from word.
func LookupKey(word string) string {
	return stripPunct.Replace(word)
}

// Tokenize splits sentence on single spaces. Empty pieces produced by
// consecutive spaces are kept so that joining the Display fields restores the
// sentence plus one trailing space. Tokens are hoverable only when hoverable
// is set and their lookup key is not empty.
func Tokenize(sentence string, hoverable bool) []Token {
	pieces := strings.Split(sentence, " ")
	tokens := make([]Token, 0, len(pieces))
	for _, p := range pieces {
		key := LookupKey(p)
		tokens = append(tokens, Token{
			Display:   p + " ",
			LookupKey: key,
			Hoverable: hoverable && key != "",
		})
	}
	return tokens
}

// Join concatenates the Display of every token.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Display)
	}
	return b.String()
}
