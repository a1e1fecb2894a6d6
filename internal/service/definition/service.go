// Package definition resolves the meanings shown for a hovered word.
package definition

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bireader/internal/domain"
)

type definitionRepo interface {
	GetByWord(ctx context.Context, word string) (*domain.WordDefinition, error)
	GetByWords(ctx context.Context, words []string) ([]domain.WordDefinition, error)
}

type dictionary interface {
	Definitions(ctx context.Context, word string) ([]string, error)
}

// Service provides word definition lookups.
type Service struct {
	definitions definitionRepo
	fallback    dictionary
	log         *slog.Logger
}

// NewService creates a new definition service. fallback may be nil, in which
// case only stored definitions are returned.
func NewService(log *slog.Logger, definitions definitionRepo, fallback dictionary) *Service {
	return &Service{
		definitions: definitions,
		fallback:    fallback,
		log:         log.With("service", "definition"),
	}
}
