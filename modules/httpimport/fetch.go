package httpimport

import (
	"context"
	"fmt"

	"resty.dev/v3"
)

// ContentFetcher retrieves the body of a remote module as text.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetchError describes a failed module fetch. StatusCode is zero when the
// request never produced a response (transport failure) and holds the HTTP
// status for a non-2xx reply, letting the caller tell the two apart.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher is the resty-backed ContentFetcher used in production. The client
// follows redirects; there is no retry, no timeout beyond the client
// defaults, and no response caching.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a Fetcher with a fresh HTTP client.
func NewFetcher() *Fetcher {
	return &Fetcher{client: resty.New()}
}

// Fetch performs a GET for the given URL and returns the full response body
// as text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	res, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	if !res.IsSuccess() {
		return "", &FetchError{URL: url, StatusCode: res.StatusCode()}
	}
	return res.String(), nil
}

// Close releases the underlying client's idle connections.
func (f *Fetcher) Close() error {
	return f.client.Close()
}
