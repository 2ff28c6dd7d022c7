package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willert-dev/memoria/pkg/archive"
	pkgerrors "github.com/willert-dev/memoria/pkg/errors"
	"github.com/willert-dev/memoria/pkg/model"
)

const sampleManifest = `{
  "Saved Media": [
    {
      "Date": "2023-04-16 18:06:33 UTC",
      "Media Type": "Image",
      "Download Link": "https://example.com/dl/1",
      "Media Download Url": "https://example.com/media/1",
      "Location": "Latitude, Longitude: 52.60789, -1.994181"
    },
    {
      "Date": "2023-05-01 09:12:00 UTC",
      "Media Type": "Video",
      "Download Link": "https://example.com/dl/2",
      "Media Download Url": "https://example.com/media/2"
    }
  ]
}`

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	return NewLoader(archive.NewManager(), t.TempDir())
}

func TestExtractAndLocate(t *testing.T) {
	tempDir := t.TempDir()

	// Build a small export archive with the manifest at the primary location.
	sourceDir := filepath.Join(tempDir, "source")
	require.NoError(t, os.MkdirAll(filepath.Join(sourceDir, "json"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "json", FileName), []byte(sampleManifest), 0o644))

	archivePath := filepath.Join(tempDir, "export.zip")
	require.NoError(t, archive.NewManager().Create(context.Background(), sourceDir, archivePath))

	loader := newTestLoader(t)
	dir, err := loader.Extract(context.Background(), archivePath)
	require.NoError(t, err)
	defer loader.Cleanup(dir)

	manifestPath, err := loader.Locate(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "json", FileName), manifestPath)
}

func TestExtractMissingArchive(t *testing.T) {
	loader := newTestLoader(t)
	_, err := loader.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.zip"))
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrExtractionFailed)
}

func TestLocateFallbacks(t *testing.T) {
	loader := newTestLoader(t)

	t.Run("manifest at root", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{}"), 0o644))

		path, err := loader.Locate(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, FileName), path)
	})

	t.Run("manifest in nested directory via scan", func(t *testing.T) {
		dir := t.TempDir()
		nested := filepath.Join(dir, "some", "deep", "place")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(nested, FileName), []byte("{}"), 0o644))

		path, err := loader.Locate(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(nested, FileName), path)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := loader.Locate(t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrManifestNotFound)
	})
}

func TestParse(t *testing.T) {
	loader := newTestLoader(t)
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	records, err := loader.Parse(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, model.MediaKindImage, records[0].Kind)
	require.NotNil(t, records[0].Coordinates)
	assert.InDelta(t, 52.60789, records[0].Coordinates.Latitude, 1e-9)
	assert.Equal(t, "https://example.com/media/1", records[0].MediaDownloadURL)
	assert.Equal(t, "https://example.com/dl/1", records[0].DownloadLink)

	// Manifest order is preserved and the optional location may be absent.
	assert.Equal(t, model.MediaKindVideo, records[1].Kind)
	assert.Nil(t, records[1].Coordinates)
	require.NotNil(t, records[1].ParsedTimestamp)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed JSON",
			content: `{"Saved Media": [`,
		},
		{
			name:    "missing media array",
			content: `{"Other": []}`,
		},
		{
			name: "missing required field",
			content: `{"Saved Media": [
				{"Date": "2023-04-16 18:06:33 UTC", "Media Type": "Image", "Download Link": "https://example.com/dl/1"}
			]}`,
		},
	}

	loader := newTestLoader(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := loader.Parse(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, pkgerrors.ErrManifestParse)
		})
	}
}

func TestCleanupSwallowsErrors(t *testing.T) {
	loader := newTestLoader(t)
	// Removing a nonexistent directory must not panic or error.
	loader.Cleanup(filepath.Join(t.TempDir(), "never-created"))
	loader.Cleanup("")
}
