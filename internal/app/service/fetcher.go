package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUpstream marks a failed page download, transport or status-level.
var ErrUpstream = errors.New("page fetch failed")

// maxPageSize caps how much of a page is read for counting (10 MiB).
const maxPageSize = 10 << 20

// HTTPFetcher downloads pages with a plain HTTP client. The timeout comes
// from configuration and bounds the whole download.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

// Fetch performs a GET of rawURL and returns the body. Any transport
// error or non-2xx status is wrapped in ErrUpstream.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return body, nil
}
