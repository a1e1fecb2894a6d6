// Package translation creates, lists and deletes translated texts.
package translation

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bireader/internal/domain"
	"github.com/heartmarshall/bireader/internal/provider"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type translationRepo interface {
	Create(ctx context.Context, rec domain.TranslationRecord) (*domain.TranslationRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.TranslationRecord, error)
	List(ctx context.Context, filter domain.TranslationFilter) ([]domain.TranslationRecord, error)
	Delete(ctx context.Context, id int64) error
}

type definitionRepo interface {
	UpsertMany(ctx context.Context, translationID int64, defs map[string][]string) error
}

type translator interface {
	Translate(ctx context.Context, text string) (*provider.TranslationResult, error)
}

type articleFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*provider.Article, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides translation operations.
type Service struct {
	translations translationRepo
	definitions  definitionRepo
	translator   translator
	articles     articleFetcher
	tx           txManager
	language     string
	log          *slog.Logger
}

// NewService creates a new translation service. language is stored on every
// record as the target language name.
func NewService(
	log *slog.Logger,
	translations translationRepo,
	definitions definitionRepo,
	translator translator,
	articles articleFetcher,
	tx txManager,
	language string,
) *Service {
	return &Service{
		translations: translations,
		definitions:  definitions,
		translator:   translator,
		articles:     articles,
		tx:           tx,
		language:     language,
		log:          log.With("service", "translation"),
	}
}

// preview shortens text for log lines.
func preview(text string) string {
	r := []rune(text)
	if len(r) > 50 {
		return string(r[:50])
	}
	return text
}
