package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/bireader/internal/domain"
)

// List returns translation records, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.TranslationRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	records, err := s.translations.List(ctx, domain.TranslationFilter{
		Language: strings.TrimSpace(input.Language),
		Limit:    limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	return records, nil
}

// Get returns a single translation record.
func (s *Service) Get(ctx context.Context, id int64) (*domain.TranslationRecord, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	rec, err := s.translations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get translation: %w", err)
	}

	return rec, nil
}
