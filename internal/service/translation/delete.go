package translation

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a translation record and the word meanings it supplied.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.translations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete translation: %w", err)
	}

	s.log.InfoContext(ctx, "translation deleted", slog.Int64("translation_id", id))

	return nil
}
