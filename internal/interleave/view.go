package interleave

import "github.com/heartmarshall/bireader/internal/domain"

// PairView is a sentence pair broken into tokens. Only Source tokens can be
// hovered.
type PairView struct {
	Index  int     `json:"index"`
	Source []Token `json:"source"`
	Target []Token `json:"target"`
}

// BuildView aligns the record's texts and tokenizes every pair.
func BuildView(rec domain.TranslationRecord) []PairView {
	pairs := AlignTexts(rec.OriginalText, rec.Translation)
	views := make([]PairView, 0, len(pairs))
	for _, p := range pairs {
		views = append(views, PairView{
			Index:  p.Index,
			Source: Tokenize(p.Source, true),
			Target: Tokenize(p.Target, false),
		})
	}
	return views
}

// LookupKeys returns the distinct non-empty lookup keys of all hoverable
// tokens in views, in first-seen order.
func LookupKeys(views []PairView) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, v := range views {
		for _, t := range v.Source {
			if !t.Hoverable {
				continue
			}
			if _, ok := seen[t.LookupKey]; ok {
				continue
			}
			seen[t.LookupKey] = struct{}{}
			keys = append(keys, t.LookupKey)
		}
	}
	return keys
}

// Document is a translation record together with its aligned pairs and,
// optionally, the meanings of its hoverable words.
type Document struct {
	Translation domain.TranslationRecord `json:"translation"`
	Pairs       []PairView               `json:"pairs"`
	Definitions map[string][]string      `json:"definitions,omitempty"`
}
