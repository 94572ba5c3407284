package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
)

// Fetcher retrieves the raw bytes of a source image.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetchOptions configures the HTTP fetcher.
type FetchOptions struct {
	Timeout       time.Duration
	Retries       int
	RetryInterval time.Duration
	MaxSize       int64
}

type httpFetcher struct {
	client  *httpclient.Client
	maxSize int64
}

const minRetryInterval = 100 * time.Millisecond

// NewFetcher creates a Fetcher backed by a heimdall client. Retries apply to
// transport errors and 5xx responses.
func NewFetcher(opts FetchOptions) Fetcher {
	retrier := heimdall.NewNoRetrier()
	if opts.Retries > 0 {
		interval := max(opts.RetryInterval, minRetryInterval)
		retrier = heimdall.NewRetrier(heimdall.NewConstantBackoff(interval, interval/4))
	}

	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(opts.Timeout),
		httpclient.WithRetrier(retrier),
		httpclient.WithRetryCount(opts.Retries),
	)

	return &httpFetcher{
		client:  client,
		maxSize: opts.MaxSize,
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: upstream status %d", ErrFetchFailed, resp.StatusCode)
	}

	body := io.Reader(resp.Body)
	if f.maxSize > 0 {
		body = io.LimitReader(resp.Body, f.maxSize+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if f.maxSize > 0 && int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w: source exceeds %d bytes", ErrFetchFailed, f.maxSize)
	}

	return data, nil
}
