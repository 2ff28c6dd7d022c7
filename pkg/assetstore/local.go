// Package assetstore writes downloaded media into a local asset library,
// preserving the original capture time as the file modification time and the
// location in a JSON sidecar.
package assetstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/willert-dev/memoria/pkg/errors"
	"github.com/willert-dev/memoria/pkg/fsutil"
	"github.com/willert-dev/memoria/pkg/model"
)

const (
	photosSubdir = "Photos"
	videosSubdir = "Videos"

	assetNameLayout = "20060102-150405"
)

// LocalStore is the filesystem-backed Store implementation.
type LocalStore struct {
	libraryDir string
}

// NewLocalStore creates a store rooted at libraryDir.
func NewLocalStore(libraryDir string) *LocalStore {
	return &LocalStore{libraryDir: libraryDir}
}

// RequestAuthorization ensures the library directory exists and is writable.
func (s *LocalStore) RequestAuthorization() error {
	if s.libraryDir == "" {
		return errors.Wrap(errors.ErrNotAuthorized, "library directory is not configured")
	}
	for _, subdir := range []string{photosSubdir, videosSubdir} {
		if err := os.MkdirAll(filepath.Join(s.libraryDir, subdir), fsutil.DirModeDefault); err != nil {
			return errors.Wrapf(errors.ErrNotAuthorized, "cannot prepare library at %s: %v", s.libraryDir, err)
		}
	}
	probe := filepath.Join(s.libraryDir, ".memoria-write-check")
	if err := os.WriteFile(probe, nil, fsutil.FileModeDefault); err != nil {
		return errors.Wrapf(errors.ErrNotAuthorized, "library at %s is not writable: %v", s.libraryDir, err)
	}
	_ = os.Remove(probe)
	return nil
}

// WritePhoto persists an image payload into the Photos subdirectory.
func (s *LocalStore) WritePhoto(_ context.Context, data []byte, takenAt *time.Time, coords *model.Coordinates, extension string) error {
	if extension == "" {
		extension = "jpg"
	}
	target := s.assetPath(photosSubdir, takenAt, extension)
	if err := os.WriteFile(target, data, fsutil.FileModeDefault); err != nil {
		return errors.Wrapf(errors.ErrSaveFailed, "writing photo %s: %v", target, err)
	}
	return s.applyMetadata(target, takenAt, coords)
}

// WriteVideo moves a staged video file into the Videos subdirectory. The
// source extension is kept.
func (s *LocalStore) WriteVideo(_ context.Context, filePath string, takenAt *time.Time, coords *model.Coordinates) error {
	extension := strings.TrimPrefix(filepath.Ext(filePath), ".")
	if extension == "" {
		extension = "mp4"
	}
	target := s.assetPath(videosSubdir, takenAt, extension)
	if err := fsutil.Copy(filePath, target); err != nil {
		return errors.Wrapf(errors.ErrSaveFailed, "storing video %s: %v", target, err)
	}
	return s.applyMetadata(target, takenAt, coords)
}

// assetPath derives a collision-free asset file name from the capture time.
func (s *LocalStore) assetPath(subdir string, takenAt *time.Time, extension string) string {
	stamp := "undated"
	if takenAt != nil {
		stamp = takenAt.UTC().Format(assetNameLayout)
	}
	name := fmt.Sprintf("%s-%s.%s", stamp, uuid.NewString()[:8], extension)
	return filepath.Join(s.libraryDir, subdir, name)
}

// sidecar carries the asset metadata that the filesystem itself cannot hold.
type sidecar struct {
	TakenAt   *time.Time `json:"taken_at,omitempty"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
}

// applyMetadata sets the file modification time to the capture time and
// writes a location sidecar when coordinates are present.
func (s *LocalStore) applyMetadata(target string, takenAt *time.Time, coords *model.Coordinates) error {
	if takenAt != nil {
		if err := os.Chtimes(target, *takenAt, *takenAt); err != nil {
			return errors.Wrapf(errors.ErrSaveFailed, "setting timestamp on %s: %v", target, err)
		}
	}
	if coords == nil {
		return nil
	}
	data, err := json.MarshalIndent(sidecar{
		TakenAt:   takenAt,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}, "", "  ")
	if err != nil {
		return errors.Wrapf(errors.ErrSaveFailed, "encoding sidecar for %s: %v", target, err)
	}
	sidecarPath := target + ".json"
	if err := os.WriteFile(sidecarPath, data, fsutil.FileModeDefault); err != nil {
		return errors.Wrapf(errors.ErrSaveFailed, "writing sidecar %s: %v", sidecarPath, err)
	}
	return nil
}
