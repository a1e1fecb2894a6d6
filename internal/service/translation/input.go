package translation

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/bireader/internal/domain"
)

// TranslateInput holds the text to translate.
type TranslateInput struct {
	Text string
}

// Validate rejects blank and oversized texts. Blank text yields
// domain.ErrEmptyInput.
func (i TranslateInput) Validate() error {
	text := strings.TrimSpace(i.Text)
	if text == "" {
		return domain.ErrEmptyInput
	}
	if utf8.RuneCountInString(text) > domain.MaxTextLength {
		return domain.NewValidationError("text", "max 20000 characters")
	}
	return nil
}

// ImportURLInput holds the address of an article to translate.
type ImportURLInput struct {
	URL string
}

// Validate checks all fields.
func (i ImportURLInput) Validate() error {
	if strings.TrimSpace(i.URL) == "" {
		return domain.ErrEmptyInput
	}
	return nil
}

// ListInput holds the parameters for listing translations.
type ListInput struct {
	Language string
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	return nil
}
