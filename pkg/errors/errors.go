// Package errors defines the error taxonomy shared across the memoria
// import pipeline. Pipeline-fatal errors abort an import; per-item errors are
// collected by the orchestrator and never stop a batch.
package errors

import "fmt"

// Pipeline-fatal errors. Any of these moves the orchestrator into the
// failed state and aborts the whole import.
var (
	ErrExtractionFailed = fmt.Errorf("archive extraction failed")
	ErrManifestNotFound = fmt.Errorf("manifest file not found in archive")
	ErrManifestParse    = fmt.Errorf("failed to parse manifest")
)

// Per-item errors. The download loop converts these into a failure-count
// increment plus a message and continues with the next record.
var (
	ErrInvalidURL     = fmt.Errorf("invalid media URL")
	ErrNoData         = fmt.Errorf("empty response body")
	ErrDownloadFailed = fmt.Errorf("download failed")
	ErrSaveFailed     = fmt.Errorf("failed to save asset")
	ErrNotAuthorized  = fmt.Errorf("asset library access not authorized")
)

// Guard and state errors.
var (
	ErrNothingSelected = fmt.Errorf("no records selected")
	ErrQuotaExceeded   = fmt.Errorf("import quota exceeded")
	ErrInvalidState    = fmt.Errorf("operation not valid in current state")
	ErrInvalidPath     = fmt.Errorf("invalid path")
	ErrLedgerVersion   = fmt.Errorf("unsupported ledger format version")
)

// Configuration errors.
var (
	ErrEmptyConfigPath  = fmt.Errorf("config path is empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
