// Package ledger provides a JSON-backed persistent set of download
// fingerprints used to deduplicate imports across sessions.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	goversion "github.com/hashicorp/go-version"
	"github.com/willert-dev/memoria/pkg/errors"
	"github.com/willert-dev/memoria/pkg/fsutil"
)

// FormatVersion is the current on-disk format of the ledger file. Files
// written by a newer major version are rejected on load.
const FormatVersion = "1.0"

// ledgerFile is the persisted document. Fingerprints are stored as a flat,
// sorted list and the whole file is rewritten on every mutation.
type ledgerFile struct {
	FormatVersion string    `json:"format_version"`
	LastUpdate    time.Time `json:"last_update"`
	Fingerprints  []string  `json:"fingerprints"`
}

// FileLedger is the file-backed Ledger implementation. It is safe for
// concurrent use.
type FileLedger struct {
	path         string
	fingerprints map[string]struct{}
	rwMutex      sync.RWMutex
}

// New loads the ledger at path, creating an empty one if the file does not
// exist yet.
func New(path string) (*FileLedger, error) {
	cleanPath := filepath.Clean(path)
	if !filepath.IsAbs(cleanPath) {
		return nil, fmt.Errorf("ledger path must be absolute: %s: %w", path, errors.ErrInvalidPath)
	}

	ledger := &FileLedger{
		path:         cleanPath,
		fingerprints: make(map[string]struct{}),
	}
	if err := ledger.load(); err != nil {
		return nil, err
	}
	return ledger, nil
}

func (l *FileLedger) load() error {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read ledger file")
	}

	var file ledgerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return errors.Wrap(err, "failed to parse ledger file")
	}
	if err := checkFormatVersion(file.FormatVersion); err != nil {
		return err
	}
	for _, fp := range file.Fingerprints {
		l.fingerprints[fp] = struct{}{}
	}
	return nil
}

// checkFormatVersion rejects ledger files written by a newer major format.
func checkFormatVersion(raw string) error {
	if raw == "" {
		return nil
	}
	fileVersion, err := goversion.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("ledger format version %q: %w", raw, errors.ErrLedgerVersion)
	}
	supported := goversion.Must(goversion.NewVersion(FormatVersion))
	if fileVersion.Segments()[0] > supported.Segments()[0] {
		return fmt.Errorf("ledger format version %s is newer than supported %s: %w",
			fileVersion, supported, errors.ErrLedgerVersion)
	}
	return nil
}

// IsDuplicate reports whether the fingerprint has been downloaded before.
func (l *FileLedger) IsDuplicate(fingerprint string) bool {
	l.rwMutex.RLock()
	defer l.rwMutex.RUnlock()

	_, ok := l.fingerprints[fingerprint]
	return ok
}

// MarkDownloaded inserts the fingerprint and rewrites the ledger file.
// The check and insert happen under one lock so the same fingerprint cannot
// be marked twice by concurrent callers.
func (l *FileLedger) MarkDownloaded(fingerprint string) error {
	l.rwMutex.Lock()
	defer l.rwMutex.Unlock()

	if _, ok := l.fingerprints[fingerprint]; ok {
		return nil
	}
	l.fingerprints[fingerprint] = struct{}{}
	return l.save()
}

// Clear removes all fingerprints and rewrites the ledger file.
func (l *FileLedger) Clear() error {
	l.rwMutex.Lock()
	defer l.rwMutex.Unlock()

	l.fingerprints = make(map[string]struct{})
	return l.save()
}

// Count returns the number of known fingerprints.
func (l *FileLedger) Count() int {
	l.rwMutex.RLock()
	defer l.rwMutex.RUnlock()

	return len(l.fingerprints)
}

// save atomically rewrites the ledger file via a temp file + rename.
func (l *FileLedger) save() (err error) {
	fingerprints := make([]string, 0, len(l.fingerprints))
	for fp := range l.fingerprints {
		fingerprints = append(fingerprints, fp)
	}
	sort.Strings(fingerprints)

	file := ledgerFile{
		FormatVersion: FormatVersion,
		LastUpdate:    time.Now().UTC(),
		Fingerprints:  fingerprints,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal ledger")
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, fsutil.DirModePrivate); err != nil {
		return errors.Wrap(err, "failed to create ledger directory")
	}
	tmpFile, err := os.CreateTemp(dir, "memoria-ledger-*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary ledger file")
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return errors.Wrap(err, "failed to write ledger file")
	}
	if err = tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return errors.Wrap(err, "failed to sync ledger file")
	}
	if err = tmpFile.Close(); err != nil {
		return errors.Wrap(err, "failed to close ledger file")
	}
	if err = os.Chmod(tmpPath, fsutil.FileModeSecure); err != nil {
		return errors.Wrap(err, "failed to set ledger permissions")
	}
	if err = os.Rename(tmpPath, l.path); err != nil {
		return errors.Wrap(err, "failed to replace ledger file")
	}
	return nil
}
