// Package testutil builds export-archive fixtures and media servers for
// integration-style tests.
package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/willert-dev/memoria/pkg/archive"
)

// ManifestEntry mirrors one element of a fixture manifest.
type ManifestEntry struct {
	Date             string `json:"Date"`
	MediaType        string `json:"Media Type"`
	DownloadLink     string `json:"Download Link"`
	MediaDownloadURL string `json:"Media Download Url"`
	Location         string `json:"Location,omitempty"`
}

// BuildExportArchive writes a zip export archive containing a manifest with
// the given entries and returns its path.
func BuildExportArchive(t *testing.T, entries []ManifestEntry) string {
	t.Helper()

	document := map[string]interface{}{"Saved Media": entries}
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal fixture manifest: %v", err)
	}

	sourceDir := filepath.Join(t.TempDir(), "export")
	if err := os.MkdirAll(filepath.Join(sourceDir, "json"), 0o755); err != nil {
		t.Fatalf("failed to create fixture directory: %v", err)
	}
	manifestPath := filepath.Join(sourceDir, "json", "memories_history.json")
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		t.Fatalf("failed to write fixture manifest: %v", err)
	}

	archivePath := filepath.Join(t.TempDir(), "export.zip")
	if err := archive.NewManager().Create(context.Background(), sourceDir, archivePath); err != nil {
		t.Fatalf("failed to create fixture archive: %v", err)
	}
	return archivePath
}

// MediaServer serves fixture media payloads keyed by URL path.
type MediaServer struct {
	Server   *httptest.Server
	payloads map[string][]byte
}

// NewMediaServer starts a server returning the payload registered for each
// path; unregistered paths answer 404.
func NewMediaServer(t *testing.T, payloads map[string][]byte) *MediaServer {
	t.Helper()

	ms := &MediaServer{payloads: payloads}
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, ok := ms.payloads[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(payload)
	}))
	t.Cleanup(ms.Server.Close)
	return ms
}

// URL returns the absolute URL for a registered path.
func (ms *MediaServer) URL(path string) string {
	return ms.Server.URL + path
}
