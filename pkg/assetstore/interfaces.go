//go:generate mockgen -destination=mocks/assetstore.go . Store
package assetstore

import (
	"context"
	"time"

	"github.com/willert-dev/memoria/pkg/model"
)

// Store persists downloaded media as assets with their original metadata.
// RequestAuthorization must succeed before any write.
type Store interface {
	// RequestAuthorization verifies the store is writable. Returns
	// ErrNotAuthorized when access is denied.
	RequestAuthorization() error

	// WritePhoto persists an image payload. Timestamp and coordinates are
	// optional; absent values are omitted, never an error.
	WritePhoto(ctx context.Context, data []byte, takenAt *time.Time, coords *model.Coordinates, extension string) error

	// WriteVideo persists a video from a file on disk. The store does not
	// own filePath; the caller removes it afterwards.
	WriteVideo(ctx context.Context, filePath string, takenAt *time.Time, coords *model.Coordinates) error
}
