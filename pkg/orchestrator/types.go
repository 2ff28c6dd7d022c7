//go:generate mockgen -destination=./mocks/orchestrator.go . ManifestLoader,MediaFetcher,AssetStore,QuotaGate,Ledger,HookRunner

package orchestrator

import (
	"context"
	"time"

	"github.com/willert-dev/memoria/pkg/fetch"
	"github.com/willert-dev/memoria/pkg/hooks"
	"github.com/willert-dev/memoria/pkg/model"
)

// ManifestLoader is the subset of the manifest loader used by the orchestrator.
type ManifestLoader interface {
	Extract(ctx context.Context, archivePath string) (string, error)
	Locate(dir string) (string, error)
	Parse(path string) ([]*model.Record, error)
	Cleanup(dir string)
}

// MediaFetcher downloads the binary payload of one record.
type MediaFetcher interface {
	Fetch(ctx context.Context, record *model.Record) (fetch.Payload, error)
}

// AssetStore is the subset of the asset store used by the orchestrator.
type AssetStore interface {
	RequestAuthorization() error
	WritePhoto(ctx context.Context, data []byte, takenAt *time.Time, coords *model.Coordinates, extension string) error
	WriteVideo(ctx context.Context, filePath string, takenAt *time.Time, coords *model.Coordinates) error
}

// QuotaGate approves the requested batch size before a download starts.
type QuotaGate interface {
	CanProceed(requested int) bool
	RecordCompletion(count int)
}

// Ledger is the subset of the dedup ledger used by the orchestrator.
type Ledger interface {
	IsDuplicate(fingerprint string) bool
	MarkDownloaded(fingerprint string) error
}

// HookRunner executes the optional post-import script.
type HookRunner interface {
	RunPostImport(ctx hooks.Context) error
}

// State is the phase of the import state machine.
type State int

// Import states. StateComplete and StateFailed are terminal until Reset.
const (
	StateIdle State = iota
	StateExtractingArchive
	StateParsingManifest
	StateReady
	StateDownloading
	StateComplete
	StateFailed
)

// String returns the state name used in events and logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExtractingArchive:
		return "extracting"
	case StateParsingManifest:
		return "parsing"
	case StateReady:
		return "ready"
	case StateDownloading:
		return "downloading"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event represents a progress notification emitted by the orchestrator.
type Event struct {
	Phase    string  // extracting|parsing|ready|progress|item-failed|complete|error|reset
	Fraction float64 // progress events: items started / total
	Index    int     // progress events: zero-based index of the item being started
	Total    int     // progress events: selected batch size
	Label    string  // display label of the record being processed
	Msg      string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Summary holds the terminal counters of one download batch.
type Summary struct {
	Success int
	Failed  int
	Skipped int
}

// Started returns how many records the batch has processed so far.
func (s Summary) Started() int {
	return s.Success + s.Failed + s.Skipped
}
