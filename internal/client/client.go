// Package client is a typed HTTP client for the bireader API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/bireader/internal/domain"
	"github.com/heartmarshall/bireader/internal/interleave"
)

// maxErrorBody bounds how much of a failed response is kept in StatusError.
const maxErrorBody = 512

// StatusError reports a non-2xx response. It unwraps to
// domain.ErrNetworkFailure.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error { return domain.ErrNetworkFailure }

// Client calls the bireader API. The zero value is not usable; use New.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sends token as a bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithTimeout sets the per-request timeout. Zero means none. It applies to
// a client given with WithHTTPClient too, in any order, without modifying it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.log = logger }
}

// New creates a Client for the API served at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	c.log = c.log.With("adapter", "client")
	return c
}

// List returns all translation records, newest first.
func (c *Client) List(ctx context.Context) ([]domain.TranslationRecord, error) {
	var records []domain.TranslationRecord
	if err := c.do(ctx, http.MethodGet, "/api/translations", "", &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.TranslationRecord{}
	}
	return records, nil
}

// Translate submits text for translation. Blank text is rejected with
// domain.ErrEmptyInput before any request is made.
func (c *Client) Translate(ctx context.Context, text string) (*domain.TranslationRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyInput
	}

	var rec domain.TranslationRecord
	if err := c.do(ctx, http.MethodPost, "/api/newtranslation", text, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ImportURL asks the server to fetch and translate the article at rawURL.
func (c *Client) ImportURL(ctx context.Context, rawURL string) (*domain.TranslationRecord, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, domain.ErrEmptyInput
	}

	var rec domain.TranslationRecord
	if err := c.do(ctx, http.MethodPost, "/api/newtranslation/url", rawURL, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Get returns a single translation record.
func (c *Client) Get(ctx context.Context, id int64) (*domain.TranslationRecord, error) {
	var rec domain.TranslationRecord
	if err := c.do(ctx, http.MethodGet, "/api/translations/"+strconv.FormatInt(id, 10), "", &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes a translation record.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/translations/"+strconv.FormatInt(id, 10), "", nil)
}

// Interleaved returns the aligned view of a translation. withDefinitions
// asks the server to include meanings for every hoverable word.
func (c *Client) Interleaved(ctx context.Context, id int64, withDefinitions bool) (*interleave.Document, error) {
	path := "/api/translations/" + strconv.FormatInt(id, 10) + "/interleaved"
	if withDefinitions {
		path += "?definitions=1"
	}

	var doc interleave.Document
	if err := c.do(ctx, http.MethodGet, path, "", &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Definitions returns the meanings of word. It satisfies
// lookup.DefinitionFetcher.
func (c *Client) Definitions(ctx context.Context, word string) ([]string, error) {
	var meanings []string
	if err := c.do(ctx, http.MethodGet, "/api/definitions/"+url.PathEscape(word), "", &meanings); err != nil {
		return nil, err
	}
	if meanings == nil {
		meanings = []string{}
	}
	return meanings, nil
}

// do sends one request. A non-empty body is sent as text/plain. A nil out
// discards the response body.
func (c *Client) do(ctx context.Context, method, path, body string, out any) error {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", domain.ErrNetworkFailure, err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %s %s: %w", domain.ErrNetworkFailure, method, path, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "request done",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %w", domain.ErrNetworkFailure, method, path, err)
	}

	return nil
}
