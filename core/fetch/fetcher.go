// Package fetch implements the Fetcher interface.
// It performs a plain HTTP GET and parses the body into a goquery document.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/gaurav-prasanna/glosswalk/core"
)

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// New creates an HTTPFetcher. A zero timeout means requests never time out.
// An empty userAgent leaves the transport default in place.
func New(timeout time.Duration, userAgent string, logger *slog.Logger) *HTTPFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		logger:    logger,
	}
}

// Fetch retrieves the given URL and parses it into a document.
// The returned document's Url is the final request URL, after redirects.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request for %s: %v", core.ErrFetch, url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", core.ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d for %s", core.ErrFetch, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body of %s: %v", core.ErrFetch, url, err)
	}

	f.logger.DebugContext(ctx, "fetched page",
		"url", url,
		"status", resp.StatusCode,
		"bytes", len(body),
		"elapsed", time.Since(start),
	)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decode(body, resp.Header.Get("Content-Type"))))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing HTML of %s: %v", core.ErrParse, url, err)
	}
	doc.Url = resp.Request.URL
	return doc, nil
}

// decode converts body to UTF-8. A charset declared by header or BOM wins;
// otherwise a valid UTF-8 body is kept and anything else falls back to the
// sniffed encoding. Remaining invalid sequences become U+FFFD.
func decode(body []byte, contentType string) string {
	enc, name, certain := charset.DetermineEncoding(body, contentType)
	if name != "utf-8" && (certain || !utf8.Valid(body)) {
		if decoded, err := enc.NewDecoder().Bytes(body); err == nil {
			body = decoded
		}
	}
	return strings.ToValidUTF8(string(body), "\uFFFD")
}
