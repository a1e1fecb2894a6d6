package translate

import (
	"context"

	"github.com/heartmarshall/bireader/internal/provider"
)

// Stub is a translation provider for development and tests.
// It echoes the text back unchanged and supplies no word meanings.
type Stub struct{}

// NewStub creates a new echo translation provider.
func NewStub() *Stub { return &Stub{} }

// Translate returns text as its own translation.
func (s *Stub) Translate(ctx context.Context, text string) (*provider.TranslationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &provider.TranslationResult{
		Translation: text,
		Words:       map[string][]string{},
	}, nil
}
