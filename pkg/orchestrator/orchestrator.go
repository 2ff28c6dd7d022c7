// Package orchestrator coordinates the import pipeline: archive extraction,
// manifest parsing, deduplication, selection and the sequential download
// loop. Collaborators are injected as interfaces; there are no package-level
// singletons.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/willert-dev/memoria/internal/logger"
	"github.com/willert-dev/memoria/pkg/errors"
	"github.com/willert-dev/memoria/pkg/hooks"
	"github.com/willert-dev/memoria/pkg/model"
)

// Orchestrator drives one import session through the state machine
// Idle → ExtractingArchive → ParsingManifest → Ready → Downloading → Complete.
type Orchestrator struct {
	Loader     ManifestLoader
	Fetcher    MediaFetcher
	Store      AssetStore
	Quota      QuotaGate
	Ledger     Ledger
	PostImport HookRunner // optional
	Hooks      Hooks
	StagingDir string // scratch space for video payloads
	LibraryDir string // exposed to the post-import hook

	mu           sync.Mutex
	state        State
	stateMessage string
	records      []*model.Record
	selected     map[uuid.UUID]struct{}
	extractedDir string
	counters     Summary
	failures     []string
}

// New constructs an orchestrator from its collaborators. Helper for wiring;
// hooks may be zero-valued if no event handling is needed.
func New(loader ManifestLoader, fetcher MediaFetcher, store AssetStore, quota QuotaGate, ledger Ledger, hooks Hooks) *Orchestrator {
	return &Orchestrator{
		Loader:   loader,
		Fetcher:  fetcher,
		Store:    store,
		Quota:    quota,
		Ledger:   ledger,
		Hooks:    hooks,
		selected: make(map[uuid.UUID]struct{}),
	}
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// State returns the current pipeline state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// StateMessage returns the error message when the state is StateFailed.
func (o *Orchestrator) StateMessage() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stateMessage
}

// Records returns the records of the current session in manifest order.
func (o *Orchestrator) Records() []*model.Record {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]*model.Record, len(o.records))
	copy(out, o.records)
	return out
}

// Counters returns the running batch counters.
func (o *Orchestrator) Counters() Summary {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.counters
}

// Failures returns the per-item failure messages of the last batch.
func (o *Orchestrator) Failures() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.failures))
	copy(out, o.failures)
	return out
}

// ImportArchive extracts the archive and parses its manifest, moving the
// session from Idle to Ready. On failure the session lands in StateFailed and
// any extracted files are cleaned up.
func (o *Orchestrator) ImportArchive(ctx context.Context, archivePath string) error {
	o.mu.Lock()
	if o.state != StateIdle {
		state := o.state
		o.mu.Unlock()
		return fmt.Errorf("import requires the idle state, current state is %s: %w", state, errors.ErrInvalidState)
	}
	o.state = StateExtractingArchive
	o.mu.Unlock()
	emit(o.Hooks, Event{Phase: "extracting", Msg: archivePath})

	dir, err := o.Loader.Extract(ctx, archivePath)
	if err != nil {
		return o.failPipeline("", err)
	}

	o.mu.Lock()
	o.extractedDir = dir
	o.state = StateParsingManifest
	o.mu.Unlock()
	emit(o.Hooks, Event{Phase: "parsing", Msg: dir})

	manifestPath, err := o.Loader.Locate(dir)
	if err != nil {
		return o.failPipeline(dir, err)
	}
	records, err := o.Loader.Parse(manifestPath)
	if err != nil {
		return o.failPipeline(dir, err)
	}

	o.mu.Lock()
	o.records = records
	o.selected = make(map[uuid.UUID]struct{}, len(records))
	for _, r := range records {
		if !o.Ledger.IsDuplicate(r.Fingerprint()) {
			o.selected[r.ID] = struct{}{}
		}
	}
	o.state = StateReady
	count := len(records)
	o.mu.Unlock()

	emit(o.Hooks, Event{Phase: "ready", Total: count, Msg: fmt.Sprintf("%d records loaded", count)})
	return nil
}

// failPipeline records a pipeline-fatal error, cleans up the extracted
// directory and moves the session to StateFailed.
func (o *Orchestrator) failPipeline(dir string, err error) error {
	if dir != "" {
		o.Loader.Cleanup(dir)
	}
	o.mu.Lock()
	o.extractedDir = ""
	o.state = StateFailed
	o.stateMessage = err.Error()
	o.mu.Unlock()
	emit(o.Hooks, Event{Phase: "error", Msg: err.Error()})
	return err
}

// DownloadSelected runs the sequential download loop over the selected
// records in manifest order. An empty selection or a quota denial returns an
// error without any state change; the caller decides how to surface it.
func (o *Orchestrator) DownloadSelected(ctx context.Context) (Summary, error) {
	o.mu.Lock()
	if o.state != StateReady {
		state := o.state
		o.mu.Unlock()
		return Summary{}, fmt.Errorf("download requires the ready state, current state is %s: %w", state, errors.ErrInvalidState)
	}
	batch := o.selectedRecordsLocked()
	if len(batch) == 0 {
		o.mu.Unlock()
		return Summary{}, errors.ErrNothingSelected
	}
	if !o.Quota.CanProceed(len(batch)) {
		o.mu.Unlock()
		return Summary{}, fmt.Errorf("quota denied a batch of %d items: %w", len(batch), errors.ErrQuotaExceeded)
	}
	o.state = StateDownloading
	o.counters = Summary{}
	o.failures = nil
	o.mu.Unlock()

	authErr := o.Store.RequestAuthorization()

	total := len(batch)
	for index, record := range batch {
		emit(o.Hooks, Event{
			Phase:    "progress",
			Fraction: float64(index) / float64(total),
			Index:    index,
			Total:    total,
			Label:    record.DisplayLabel(),
		})

		if o.Ledger.IsDuplicate(record.Fingerprint()) {
			o.bumpSkipped()
			continue
		}
		if authErr != nil {
			o.recordFailure(record, authErr)
			continue
		}
		if err := o.downloadOne(ctx, record); err != nil {
			o.recordFailure(record, err)
			continue
		}
		if err := o.Ledger.MarkDownloaded(record.Fingerprint()); err != nil {
			logger.Warnf("asset saved but ledger update failed for %s: %v", record.DisplayLabel(), err)
		}
		o.Quota.RecordCompletion(1)
		o.bumpSuccess()
	}

	o.mu.Lock()
	summary := o.counters
	o.state = StateComplete
	extractedDir := o.extractedDir
	o.extractedDir = ""
	o.mu.Unlock()

	emit(o.Hooks, Event{
		Phase: "complete",
		Total: total,
		Msg:   fmt.Sprintf("%d downloaded, %d failed, %d skipped", summary.Success, summary.Failed, summary.Skipped),
	})
	o.Loader.Cleanup(extractedDir)
	o.runPostImportHook(summary, total)

	return summary, nil
}

// downloadOne fetches a single record and routes it to the asset store.
// Video payloads are staged to a temporary file which is removed regardless
// of the store outcome.
func (o *Orchestrator) downloadOne(ctx context.Context, record *model.Record) error {
	payload, err := o.Fetcher.Fetch(ctx, record)
	if err != nil {
		return err
	}

	if record.Kind == model.MediaKindVideo {
		staged, err := o.stageVideo(payload.Data, payload.Extension)
		if err != nil {
			return err
		}
		defer func() { _ = os.Remove(staged) }()
		return o.Store.WriteVideo(ctx, staged, record.ParsedTimestamp, record.Coordinates)
	}
	return o.Store.WritePhoto(ctx, payload.Data, record.ParsedTimestamp, record.Coordinates, payload.Extension)
}

// stageVideo writes a video payload to a scoped temporary file.
func (o *Orchestrator) stageVideo(data []byte, extension string) (string, error) {
	if o.StagingDir != "" {
		if err := os.MkdirAll(o.StagingDir, 0o700); err != nil {
			return "", errors.Wrap(err, "failed to create staging dir")
		}
	}
	tmp, err := os.CreateTemp(o.StagingDir, "memoria-video-*."+extension)
	if err != nil {
		return "", errors.Wrap(err, "failed to create staging file")
	}
	path := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(path)
		return "", errors.Wrap(err, "failed to write staging file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(path)
		return "", errors.Wrap(err, "failed to close staging file")
	}
	return path, nil
}

func (o *Orchestrator) bumpSuccess() {
	o.mu.Lock()
	o.counters.Success++
	o.mu.Unlock()
}

func (o *Orchestrator) bumpSkipped() {
	o.mu.Lock()
	o.counters.Skipped++
	o.mu.Unlock()
}

func (o *Orchestrator) recordFailure(record *model.Record, err error) {
	message := fmt.Sprintf("%s: %v", record.DisplayLabel(), err)
	o.mu.Lock()
	o.counters.Failed++
	o.failures = append(o.failures, message)
	o.mu.Unlock()
	emit(o.Hooks, Event{Phase: "item-failed", Label: record.DisplayLabel(), Msg: message})
}

// runPostImportHook runs the optional post-import script. Hook failures are
// logged, never propagated.
func (o *Orchestrator) runPostImportHook(summary Summary, total int) {
	if o.PostImport == nil {
		return
	}
	err := o.PostImport.RunPostImport(hooks.Context{
		Success:    summary.Success,
		Failed:     summary.Failed,
		Skipped:    summary.Skipped,
		Total:      total,
		LibraryDir: o.LibraryDir,
	})
	if err != nil {
		logger.Warnf("post-import hook failed: %v", err)
	}
}

// Reset cleans up any outstanding extracted directory and returns the
// session to Idle.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	extractedDir := o.extractedDir
	o.extractedDir = ""
	o.records = nil
	o.selected = make(map[uuid.UUID]struct{})
	o.counters = Summary{}
	o.failures = nil
	o.stateMessage = ""
	o.state = StateIdle
	o.mu.Unlock()

	if extractedDir != "" {
		o.Loader.Cleanup(extractedDir)
	}
	emit(o.Hooks, Event{Phase: "reset"})
}
