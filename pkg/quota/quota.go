//go:generate mockgen -destination=mocks/quota.go . Gate

// Package quota gates how many items an import batch may download. The
// orchestrator asks the gate before starting a batch and reports each
// completed item back.
package quota

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/willert-dev/memoria/internal/logger"
	"github.com/willert-dev/memoria/pkg/fsutil"
)

// Gate decides whether a requested batch size may proceed.
type Gate interface {
	// CanProceed reports whether requested more items may be downloaded.
	CanProceed(requested int) bool

	// RecordCompletion accounts for count successfully downloaded items.
	RecordCompletion(count int)
}

// Unlimited allows every request. The default when no limit is configured.
type Unlimited struct{}

// CanProceed always allows the request.
func (Unlimited) CanProceed(int) bool { return true }

// RecordCompletion is a no-op.
func (Unlimited) RecordCompletion(int) {}

// usageFile is the persisted download counter for LimitGate.
type usageFile struct {
	LastUpdate time.Time `json:"last_update"`
	Used       int       `json:"used"`
}

// LimitGate enforces a fixed lifetime item limit, persisting the used count
// across sessions.
type LimitGate struct {
	limit int
	used  int
	path  string
	mutex sync.Mutex
}

// NewLimitGate creates a gate allowing at most limit items, with the used
// count persisted at path. A missing usage file means nothing used yet.
func NewLimitGate(limit int, path string) *LimitGate {
	gate := &LimitGate{limit: limit, path: filepath.Clean(path)}
	if data, err := os.ReadFile(gate.path); err == nil {
		var file usageFile
		if err := json.Unmarshal(data, &file); err == nil {
			gate.used = file.Used
		}
	}
	return gate
}

// CanProceed reports whether requested more items fit within the limit.
func (g *LimitGate) CanProceed(requested int) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.used+requested <= g.limit
}

// RecordCompletion adds count to the used total and persists it. Persistence
// failures are logged and swallowed: losing a counter update must not fail an
// otherwise successful download.
func (g *LimitGate) RecordCompletion(count int) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.used += count
	data, err := json.Marshal(usageFile{LastUpdate: time.Now().UTC(), Used: g.used})
	if err != nil {
		logger.Warnf("failed to encode quota usage: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(g.path), fsutil.DirModePrivate); err != nil {
		logger.Warnf("failed to create quota state dir: %v", err)
		return
	}
	if err := os.WriteFile(g.path, data, fsutil.FileModeSecure); err != nil {
		logger.Warnf("failed to persist quota usage: %v", err)
	}
}

// Used returns the persisted number of downloaded items.
func (g *LimitGate) Used() int {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.used
}
