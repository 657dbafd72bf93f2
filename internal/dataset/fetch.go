package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DefaultSource is the dataset location used when none is configured.
const DefaultSource = "./scriptures.csv"

// Fetcher retrieves the raw dataset from a local file or an http(s) URL.
type Fetcher struct {
	httpClient *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{},
	}
}

// SetHTTPClient replaces the client used for remote sources.
func (f *Fetcher) SetHTTPClient(c *http.Client) {
	f.httpClient = c
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Fetch returns the raw bytes of source. Every failure wraps ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if !isRemote(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: server returned status %d", ErrFetchFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFetchFailed, err)
	}
	return data, nil
}

// Load fetches and parses source.
func (f *Fetcher) Load(ctx context.Context, source string) (*Store, error) {
	data, err := f.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
