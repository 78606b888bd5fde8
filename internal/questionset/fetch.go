package questionset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// FetchError reports a non-success HTTP response from a question-set source.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}

// Fetcher downloads question-set sources over HTTP. A single attempt is
// made per call; there is no retry.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher whose requests give up after timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the document at rawURL and returns its body as text.
// A cache-defeating timestamp parameter is appended to every request so
// that stale CDN copies of an updated question set are bypassed.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	busted := rawURL + sep + "_=" + strconv.FormatInt(time.Now().UnixMilli(), 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, busted, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}
