package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bireader/internal/domain"
	"github.com/heartmarshall/bireader/internal/provider"
)

// Translate translates input.Text and stores the record together with the
// word meanings the provider returned.
func (s *Service) Translate(ctx context.Context, input TranslateInput) (*domain.TranslationRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)

	result, err := s.translator.Translate(ctx, text)
	if err != nil {
		s.log.ErrorContext(ctx, "translate failed",
			slog.String("text", preview(text)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("translate: %w", err)
	}

	return s.store(ctx, text, result)
}

// ImportURL fetches the article at input.URL and translates its text.
func (s *Service) ImportURL(ctx context.Context, input ImportURLInput) (*domain.TranslationRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	article, err := s.articles.Fetch(ctx, strings.TrimSpace(input.URL))
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}

	s.log.InfoContext(ctx, "article imported",
		slog.String("url", article.URL),
		slog.String("title", article.Title),
	)

	return s.Translate(ctx, TranslateInput{Text: article.Text})
}

func (s *Service) store(ctx context.Context, text string, result *provider.TranslationResult) (*domain.TranslationRecord, error) {
	var rec *domain.TranslationRecord

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.translations.Create(txCtx, domain.TranslationRecord{
			OriginalText: text,
			Translation:  result.Translation,
			Language:     s.language,
		})
		if err != nil {
			return fmt.Errorf("create translation: %w", err)
		}

		if err := s.definitions.UpsertMany(txCtx, created.ID, result.Words); err != nil {
			return fmt.Errorf("store word definitions: %w", err)
		}

		rec = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "translation created",
		slog.Int64("translation_id", rec.ID),
		slog.String("language", rec.Language),
		slog.Int("words", len(result.Words)),
		slog.String("text", preview(text)),
	)

	return rec, nil
}
