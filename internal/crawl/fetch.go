// Package crawl fetches a web page over plain HTTP and reduces it to the
// title, flattened text and structural items the pipeline consumes.
package crawl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dgallion1/pageflow/internal/content"
	"github.com/dgallion1/pageflow/internal/structure"
)

// Result is one crawled page.
type Result struct {
	URL               string         `json:"url"`
	Title             string         `json:"title"`
	Content           string         `json:"content"`
	StructuredContent []content.Wire `json:"structuredContent"`
	Stats             PageStats      `json:"stats"`

	items []content.Item
}

// PageStats describes how much of a page survived extraction.
type PageStats struct {
	RawTextLength   int `json:"rawTextLength"`
	FinalTextLength int `json:"finalTextLength"`
	StructuredItems int `json:"structuredItems"`
}

// Document returns the page as pipeline input.
func (r *Result) Document() content.Document {
	return content.Document{Title: r.Title, Text: r.Content, Items: r.items}
}

// Fetcher retrieves HTML pages.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64

	Stats *Stats
}

func NewFetcher(timeout time.Duration, maxBytes int64, userAgent string) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		maxBytes:  maxBytes,
		Stats:     NewStats(time.Hour),
	}
}

// Crawl fetches rawURL and extracts its main content.
func (f *Fetcher) Crawl(ctx context.Context, rawURL string) (*Result, error) {
	body, finalURL, err := f.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	page, err := structure.ParseHTML(bytes.NewReader(body))
	if err != nil {
		return nil, wrap(ErrExtractor, "content extraction", err)
	}

	rawText := strings.TrimSpace(page.Root.Text())
	text := structure.BlockText(page.Root)
	items := structure.FromSelection(page.Root)
	if text == "" && len(items) == 0 {
		return nil, wrap(ErrExtractor, "content extraction", errors.New("no readable content"))
	}

	return &Result{
		URL:               finalURL,
		Title:             page.Title,
		Content:           text,
		StructuredContent: content.ToWire(items),
		Stats: PageStats{
			RawTextLength:   len([]rune(rawText)),
			FinalTextLength: len([]rune(text)),
			StructuredItems: len(items),
		},
		items: items,
	}, nil
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, "", wrap(ErrNavigation, "request", fmt.Errorf("invalid url %q", rawURL))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", wrap(ErrNavigation, "request", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.Stats.Record(time.Since(start), true)
		typ := Classify(err)
		return nil, "", wrap(typ, "fetch "+u.Host, &RetryableError{Message: err.Error(), Err: err})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	f.Stats.Record(time.Since(start), err != nil || resp.StatusCode >= 400)
	if err != nil {
		return nil, "", wrap(Classify(err), "read body", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, "", wrap(ErrExtractor, "read body", fmt.Errorf("page exceeds %d bytes", f.maxBytes))
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, "", wrap(ErrNetwork, "fetch "+u.Host, &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		})
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", wrap(ErrNavigation, "fetch "+u.Host, fmt.Errorf("status %d", resp.StatusCode))
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil && !isHTML(mt) {
			return nil, "", wrap(ErrExtractor, "fetch "+u.Host, fmt.Errorf("unsupported content type %s", mt))
		}
	}

	return body, resp.Request.URL.String(), nil
}

func isHTML(mediaType string) bool {
	switch mediaType {
	case "text/html", "application/xhtml+xml", "text/plain":
		return true
	}
	return false
}

// Close releases idle connections.
func (f *Fetcher) Close() {
	f.httpClient.CloseIdleConnections()
}
