// Package fetch implements the Fetcher interface.
// It retrieves saved documents from an HTTP endpoint — hosting editors
// persist documents behind an API, and the CLI can render straight from it.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/blockhead/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "blockhead/1.0 (https://github.com/gaurav-prasanna/blockhead)"
)

// HTTPFetcher fetches saved documents via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch retrieves and decodes the document at the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (core.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return core.Document{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return core.Document{}, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return core.Document{}, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	var doc core.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return core.Document{}, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}
