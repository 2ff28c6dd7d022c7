package orchestrator

import (
	"github.com/google/uuid"
	"github.com/willert-dev/memoria/pkg/model"
)

// Selection API. The selection set is only meaningful once the session is
// Ready, but none of these methods check state themselves; they operate on
// whatever records are currently loaded.

// Toggle flips the selection of one record. Unknown ids are ignored, keeping
// the selection a subset of the loaded records.
func (o *Orchestrator) Toggle(id uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.selected[id]; ok {
		delete(o.selected, id)
		return
	}
	for _, r := range o.records {
		if r.ID == id {
			o.selected[id] = struct{}{}
			return
		}
	}
}

// SelectAll selects every loaded record.
func (o *Orchestrator) SelectAll() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.selected = make(map[uuid.UUID]struct{}, len(o.records))
	for _, r := range o.records {
		o.selected[r.ID] = struct{}{}
	}
}

// DeselectAll empties the selection.
func (o *Orchestrator) DeselectAll() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.selected = make(map[uuid.UUID]struct{})
}

// SelectNonDuplicates selects exactly the records whose fingerprint is not in
// the ledger right now. Dedup status is recomputed live, not read from a
// cached value, so records downloaded by other means since load are excluded.
func (o *Orchestrator) SelectNonDuplicates() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.selected = make(map[uuid.UUID]struct{}, len(o.records))
	for _, r := range o.records {
		if !o.Ledger.IsDuplicate(r.Fingerprint()) {
			o.selected[r.ID] = struct{}{}
		}
	}
}

// IsSelected reports whether the record id is currently selected.
func (o *Orchestrator) IsSelected(id uuid.UUID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	_, ok := o.selected[id]
	return ok
}

// SelectedCount returns the size of the selection set.
func (o *Orchestrator) SelectedCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.selected)
}

// selectedRecordsLocked returns the selected records in manifest load order.
// Callers must hold o.mu.
func (o *Orchestrator) selectedRecordsLocked() []*model.Record {
	out := make([]*model.Record, 0, len(o.selected))
	for _, r := range o.records {
		if _, ok := o.selected[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}
