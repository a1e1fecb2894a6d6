// Package freedict looks words up in the FreeDictionary API. It serves as the
// fallback for words no translation has supplied meanings for.
package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/bireader/internal/provider"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Provider fetches dictionary data from the FreeDictionary API.
type Provider struct {
	baseURL     string
	maxMeanings int
	httpClient  *http.Client
	log         *slog.Logger
}

// NewProvider creates a Provider with the default FreeDictionary API URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL.
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:     baseURL,
		maxMeanings: 3,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		log:         logger.With("adapter", "freedict"),
	}
}

// WithMaxMeanings sets how many meanings Definitions returns.
func (p *Provider) WithMaxMeanings(n int) *Provider {
	p.maxMeanings = n
	return p
}

// Definitions returns up to the configured number of meanings for word.
// An unknown word yields an empty slice and no error.
func (p *Provider) Definitions(ctx context.Context, word string) ([]string, error) {
	result, err := p.FetchEntry(ctx, word)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return []string{}, nil
	}
	return result.Meanings(p.maxMeanings), nil
}

// FetchEntry fetches a dictionary entry for the given word.
// Returns nil, nil if the word is not found (HTTP 404).
func (p *Provider) FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}

	result := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("senses", len(result.Senses)),
	)

	return result, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "freedict retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}

	return p.httpClient.Do(req)
}

// mapAPIResponse merges all entries (different etymologies) into one result,
// keeping the API's sense order.
func mapAPIResponse(entries []apiEntry) *provider.DictionaryResult {
	result := &provider.DictionaryResult{
		Senses: []provider.SenseResult{},
	}

	if len(entries) == 0 {
		return result
	}

	result.Word = entries[0].Word

	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			pos := meaning.PartOfSpeech
			for _, def := range meaning.Definitions {
				sense := provider.SenseResult{Definition: def.Definition}
				if pos != "" {
					posCopy := pos
					sense.PartOfSpeech = &posCopy
				}
				result.Senses = append(result.Senses, sense)
			}
		}
	}

	return result
}
