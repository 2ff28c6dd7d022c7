//go:generate mockgen -destination=mocks/fetch.go . Fetcher

// Package fetch downloads the binary payload of a single record and
// classifies its file type. There is deliberately no retry logic: a failed
// item is accounted for by the orchestrator and the batch moves on.
package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/willert-dev/memoria/pkg/errors"
	"github.com/willert-dev/memoria/pkg/model"
)

// DefaultUserAgent identifies the importer on every media request.
const DefaultUserAgent = "memoria/1.0"

// Payload is the downloaded media content plus its detected file extension.
type Payload struct {
	Data      []byte
	Extension string
}

// Fetcher downloads the media payload for one record.
type Fetcher interface {
	Fetch(ctx context.Context, record *model.Record) (Payload, error)
}

// HTTPFetcher is the http.Client-based Fetcher implementation.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a fetcher with the given request timeout and user agent.
func NewFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch issues a single GET to the record's media URL and returns the body
// with its detected extension. No retries, no partial reads.
func (f *HTTPFetcher) Fetch(ctx context.Context, record *model.Record) (Payload, error) {
	parsed, err := url.Parse(record.MediaDownloadURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Payload{}, errors.Wrapf(errors.ErrInvalidURL, "media URL %q", record.MediaDownloadURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), http.NoBody)
	if err != nil {
		return Payload{}, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return Payload{}, errors.Wrapf(errors.ErrDownloadFailed, "fetching %s: %v", parsed.Host, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Payload{}, NewHTTPStatusError(resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, errors.Wrapf(errors.ErrDownloadFailed, "reading body: %v", err)
	}
	if len(data) == 0 {
		return Payload{}, errors.ErrNoData
	}

	return Payload{
		Data:      data,
		Extension: DetectExtension(resp.Header.Get("Content-Type"), data, record.Kind),
	}, nil
}
