package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pkgerrors "github.com/willert-dev/memoria/pkg/errors"
	"github.com/willert-dev/memoria/pkg/model"
)

func testRecord(mediaURL string, kind string) *model.Record {
	return model.NewRecord("2023-04-16 18:06:33 UTC", kind, "https://example.com/dl", mediaURL, "")
}

func TestNewFetcherDefaultUserAgent(t *testing.T) {
	f := NewFetcher(time.Second, "")
	assert.Equal(t, DefaultUserAgent, f.userAgent)

	custom := NewFetcher(time.Second, "test-agent/1.0")
	assert.Equal(t, "test-agent/1.0", custom.userAgent)
}

func TestFetch(t *testing.T) {
	jpegBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46, 0x00, 0x01}

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		kind        string
		wantExt     string
		wantErr     error
		wantStatus  int
		wantPayload []byte
	}{
		{
			name: "successful image download",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
				w.Header().Set("Content-Type", "image/jpeg")
				_, _ = w.Write(jpegBytes)
			},
			kind:        "Image",
			wantExt:     "jpg",
			wantPayload: jpegBytes,
		},
		{
			name: "extension from magic bytes when header unhelpful",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/octet-stream")
				_, _ = w.Write(jpegBytes)
			},
			kind:        "Image",
			wantExt:     "jpg",
			wantPayload: jpegBytes,
		},
		{
			name: "video fallback extension",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not a recognizable container"))
			},
			kind:    "Video",
			wantExt: "mp4",
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			kind:       "Image",
			wantStatus: http.StatusNotFound,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			kind:    "Image",
			wantErr: pkgerrors.ErrNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			f := NewFetcher(time.Second, "")
			payload, err := f.Fetch(context.Background(), testRecord(server.URL, tt.kind))

			if tt.wantStatus != 0 {
				require.Error(t, err)
				var statusErr *HTTPStatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.wantStatus, statusErr.Status)
				return
			}
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, payload.Extension)
			if tt.wantPayload != nil {
				assert.Equal(t, tt.wantPayload, payload.Data)
			}
		})
	}
}

func TestFetchInvalidURL(t *testing.T) {
	f := NewFetcher(time.Second, "")

	for _, raw := range []string{"", "not a url", "relative/path"} {
		_, err := f.Fetch(context.Background(), testRecord(raw, "Image"))
		require.Error(t, err, "url %q", raw)
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidURL)
	}
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close() // connection refused from here on

	f := NewFetcher(time.Second, "")
	_, err := f.Fetch(context.Background(), testRecord(server.URL, "Image"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrDownloadFailed)
}
