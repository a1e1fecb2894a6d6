package definition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bireader/internal/domain"
)

// Lookup returns the meanings of word. A word nobody knows yields an empty
// slice, not an error.
func (s *Service) Lookup(ctx context.Context, word string) ([]string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return []string{}, nil
	}

	def, err := s.definitions.GetByWord(ctx, word)
	switch {
	case err == nil:
		return nonNil(def.Meanings), nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("lookup %q: %w", word, err)
	}

	if s.fallback == nil {
		return []string{}, nil
	}

	meanings, err := s.fallback.Definitions(ctx, word)
	if err != nil {
		// The hover popup degrades to "no result" instead of failing.
		s.log.WarnContext(ctx, "dictionary fallback failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return []string{}, nil
	}

	return nonNil(meanings), nil
}

// LookupMany returns stored meanings for every word in words. Each requested
// word is present in the result; unknown words map to an empty slice. The
// dictionary fallback is not consulted.
func (s *Service) LookupMany(ctx context.Context, words []string) (map[string][]string, error) {
	result := make(map[string][]string, len(words))
	if len(words) == 0 {
		return result, nil
	}

	defs, err := s.definitions.GetByWords(ctx, words)
	if err != nil {
		return nil, fmt.Errorf("lookup many: %w", err)
	}

	exact := make(map[string][]string, len(defs))
	folded := make(map[string][]string, len(defs))
	for _, d := range defs {
		if _, ok := exact[d.Word]; !ok {
			exact[d.Word] = d.Meanings
		}
		key := domain.NormalizeText(d.Word)
		if _, ok := folded[key]; !ok {
			folded[key] = d.Meanings
		}
	}

	for _, w := range words {
		if m, ok := exact[w]; ok {
			result[w] = nonNil(m)
			continue
		}
		result[w] = nonNil(folded[domain.NormalizeText(w)])
	}

	return result, nil
}

func nonNil(m []string) []string {
	if m == nil {
		return []string{}
	}
	return m
}
