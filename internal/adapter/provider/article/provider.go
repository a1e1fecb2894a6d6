// Package article downloads a web page and extracts its readable text.
package article

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/heartmarshall/bireader/internal/domain"
	"github.com/heartmarshall/bireader/internal/provider"
)

// maxBodySize caps the HTML read from untrusted URLs.
const maxBodySize = 10 * 1024 * 1024

// errBlockedAddress is returned by the dialer for hosts that resolve to a
// loopback, private, link-local or unspecified address.
var errBlockedAddress = errors.New("address is not publicly routable")

// Provider fetches articles over HTTP.
type Provider struct {
	httpClient   *http.Client
	allowPrivate bool
	log          *slog.Logger
}

// NewProvider creates a Provider with a 30s request timeout. Only public
// addresses are dialed, including after redirects.
func NewProvider(logger *slog.Logger) *Provider {
	p := &Provider{log: logger.With("adapter", "article")}

	dialer := &net.Dialer{Timeout: 10 * time.Second, Control: p.checkAddress}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	p.httpClient = &http.Client{Timeout: 30 * time.Second, Transport: transport}
	return p
}

// AllowPrivateNetworks lifts the public-address restriction.
func (p *Provider) AllowPrivateNetworks() *Provider {
	p.allowPrivate = true
	return p
}

func (p *Provider) checkAddress(_, address string, _ syscall.RawConn) error {
	if p.allowPrivate {
		return nil
	}
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", errBlockedAddress, host)
	}
	if !isPublic(ip.Unmap()) {
		return fmt.Errorf("%w: %s", errBlockedAddress, ip)
	}
	return nil
}

func isPublic(ip netip.Addr) bool {
	return !(ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsMulticast() ||
		ip.IsUnspecified() ||
		ip.IsInterfaceLocalMulticast())
}

// Fetch downloads rawURL and returns its main text content.
func (p *Provider) Fetch(ctx context.Context, rawURL string) (*provider.Article, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, domain.NewValidationError("url", "must be an absolute http(s) URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("article: create request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, errBlockedAddress) {
			p.log.WarnContext(ctx, "article url blocked", slog.String("url", u.String()))
			return nil, domain.NewValidationError("url", "host must be a public address")
		}
		return nil, fmt.Errorf("article: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("article: unexpected status %d", resp.StatusCode)
	}
	if resp.ContentLength > maxBodySize {
		return nil, fmt.Errorf("article: content length %d exceeds %d bytes", resp.ContentLength, maxBodySize)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("article: read body: %w", err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("article: body exceeds %d bytes", maxBodySize)
	}

	parsed, err := readability.FromReader(bytes.NewReader(body), u)
	if err != nil {
		return nil, fmt.Errorf("article: extract: %w", err)
	}

	text := collapseWhitespace(parsed.TextContent)
	if text == "" {
		return nil, fmt.Errorf("article: no readable text: %w", domain.ErrEmptyInput)
	}

	p.log.InfoContext(ctx, "article fetched",
		slog.String("url", u.String()),
		slog.String("title", parsed.Title),
		slog.Int("chars", len(text)),
	)

	return &provider.Article{
		URL:   u.String(),
		Title: parsed.Title,
		Text:  text,
	}, nil
}

// collapseWhitespace joins the extracted text into single-spaced prose so that
// sentence segmentation sees one space after every terminal mark.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
