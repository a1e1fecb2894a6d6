// Package dataloader provides per-request DataLoaders that batch the word
// definition lookups of one interleaved view into a single query.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/graph-gophers/dataloader/v7"
)

const (
	maxBatch = 500
	wait     = 2 * time.Millisecond
)

type definitionSource interface {
	LookupMany(ctx context.Context, words []string) (map[string][]string, error)
}

// Loaders contains the per-request DataLoaders. Created per-request via
// NewLoaders.
type Loaders struct {
	DefinitionsByWord *dataloader.Loader[string, []string]
}

// NewLoaders creates a new set of DataLoaders backed by src.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(src definitionSource) *Loaders {
	return &Loaders{
		DefinitionsByWord: dataloader.NewBatchedLoader(
			newDefinitionsBatchFn(src),
			dataloader.WithWait[string, []string](wait),
			dataloader.WithBatchCapacity[string, []string](maxBatch),
		),
	}
}

// Definitions resolves the meanings of every word in one batch. The result
// holds an entry for every word; unknown words map to an empty slice.
func (l *Loaders) Definitions(ctx context.Context, words []string) (map[string][]string, error) {
	result := make(map[string][]string, len(words))
	if len(words) == 0 {
		return result, nil
	}

	values, errs := l.DefinitionsByWord.LoadMany(ctx, words)()
	for i, w := range words {
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		result[w] = values[i]
	}

	return result, nil
}

func newDefinitionsBatchFn(src definitionSource) dataloader.BatchFunc[string, []string] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[[]string] {
		found, err := src.LookupMany(ctx, keys)
		if err != nil {
			return errorResults[[]string](len(keys), err)
		}
		return mapResults(keys, found, emptySlice[string])
	}
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}

// Middleware creates an HTTP middleware that instantiates per-request
// DataLoaders and stores them in the request context.
func Middleware(src definitionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(src))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order, using defaultFn for missing
// keys and nil values.
func mapResults[K comparable, V any](keys []K, found map[K]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := found[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
