// Package manifest locates and parses the media manifest inside an extracted
// export archive.
package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/willert-dev/memoria/internal/logger"
	"github.com/willert-dev/memoria/pkg/errors"
	"github.com/willert-dev/memoria/pkg/model"
)

// FileName is the fixed name of the manifest inside an export archive.
const FileName = "memories_history.json"

// savedMediaKey is the single array field of the manifest document.
const savedMediaKey = "Saved Media"

// Extractor is the archive collaborator used to unpack export archives.
type Extractor interface {
	ExtractAll(ctx context.Context, archivePath, destDir string) error
}

// Loader extracts an export archive and parses its manifest into records.
type Loader struct {
	archive  Extractor
	stageDir string
}

// NewLoader creates a loader that stages extracted archives under stageDir.
func NewLoader(archive Extractor, stageDir string) *Loader {
	return &Loader{archive: archive, stageDir: stageDir}
}

// Extract unpacks the archive into a fresh staging directory and returns its
// path. The caller owns the directory and must release it via Cleanup.
func (l *Loader) Extract(ctx context.Context, archivePath string) (string, error) {
	if _, err := os.Stat(archivePath); err != nil {
		return "", fmt.Errorf("cannot access archive %s: %v: %w", archivePath, err, errors.ErrExtractionFailed)
	}
	if err := os.MkdirAll(l.stageDir, 0o700); err != nil {
		return "", fmt.Errorf("cannot create staging dir: %v: %w", err, errors.ErrExtractionFailed)
	}
	destDir, err := os.MkdirTemp(l.stageDir, "import-*")
	if err != nil {
		return "", fmt.Errorf("cannot create extraction dir: %v: %w", err, errors.ErrExtractionFailed)
	}
	if err := l.archive.ExtractAll(ctx, archivePath, destDir); err != nil {
		l.Cleanup(destDir)
		return "", fmt.Errorf("extracting %s: %v: %w", archivePath, err, errors.ErrExtractionFailed)
	}
	return destDir, nil
}

// Locate finds the manifest file under the extracted directory. The two fixed
// locations are checked first, then the whole tree is scanned.
func (l *Loader) Locate(dir string) (string, error) {
	candidates := []string{
		filepath.Join(dir, "json", FileName),
		filepath.Join(dir, FileName),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}

	var found string
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == FileName {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if walkErr == nil && found != "" {
		return found, nil
	}
	return "", fmt.Errorf("no %s under %s: %w", FileName, dir, errors.ErrManifestNotFound)
}

// manifestEntry mirrors one element of the manifest's media array. Pointer
// fields distinguish absent required fields from empty ones.
type manifestEntry struct {
	Date             *string `json:"Date"`
	MediaType        *string `json:"Media Type"`
	DownloadLink     *string `json:"Download Link"`
	MediaDownloadURL *string `json:"Media Download Url"`
	Location         *string `json:"Location"`
}

// Parse reads the manifest file and converts each entry into a record,
// preserving manifest order. A missing required field fails the whole parse;
// a missing optional location does not.
func (l *Loader) Parse(path string) ([]*model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %v: %w", path, err, errors.ErrManifestParse)
	}

	var document map[string]json.RawMessage
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("malformed manifest JSON: %v: %w", err, errors.ErrManifestParse)
	}
	rawEntries, ok := document[savedMediaKey]
	if !ok {
		return nil, fmt.Errorf("manifest is missing the %q field: %w", savedMediaKey, errors.ErrManifestParse)
	}

	var entries []manifestEntry
	if err := json.Unmarshal(rawEntries, &entries); err != nil {
		return nil, fmt.Errorf("malformed %q array: %v: %w", savedMediaKey, err, errors.ErrManifestParse)
	}

	records := make([]*model.Record, 0, len(entries))
	for i, entry := range entries {
		if entry.Date == nil || entry.MediaType == nil || entry.DownloadLink == nil || entry.MediaDownloadURL == nil {
			return nil, fmt.Errorf("entry %d is missing a required field: %w", i, errors.ErrManifestParse)
		}
		location := ""
		if entry.Location != nil {
			location = *entry.Location
		}
		records = append(records, model.NewRecord(*entry.Date, *entry.MediaType, *entry.DownloadLink, *entry.MediaDownloadURL, location))
	}
	return records, nil
}

// Cleanup removes an extracted staging directory. Best-effort: a failed
// cleanup must never fail the surrounding operation.
func (l *Loader) Cleanup(dir string) {
	if dir == "" {
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		logger.Debugf("cleanup of %s failed: %v", dir, err)
	}
}
