package provider

// TranslationResult is the structured result from a translation provider.
type TranslationResult struct {
	Translation string
	// Words maps source words to their meanings, most relevant first.
	Words map[string][]string
}

// DictionaryResult is the structured result from a dictionary API provider.
type DictionaryResult struct {
	Word   string
	Senses []SenseResult
}

// SenseResult represents a single word sense from an external dictionary.
type SenseResult struct {
	Definition   string
	PartOfSpeech *string
}

// Meanings returns up to limit definitions in dictionary order, skipping
// duplicates. A limit <= 0 returns all of them.
func (r *DictionaryResult) Meanings(limit int) []string {
	out := make([]string, 0, len(r.Senses))
	seen := make(map[string]struct{}, len(r.Senses))
	for _, s := range r.Senses {
		if s.Definition == "" {
			continue
		}
		if _, ok := seen[s.Definition]; ok {
			continue
		}
		seen[s.Definition] = struct{}{}
		out = append(out, s.Definition)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Article is readable text extracted from a web page.
type Article struct {
	URL   string
	Title string
	Text  string
}
