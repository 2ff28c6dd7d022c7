package ledger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pkgerrors "github.com/willert-dev/memoria/pkg/errors"
)

func newTestLedger(t *testing.T) (*FileLedger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")
	l, err := New(path)
	require.NoError(t, err)
	return l, path
}

func TestNewRequiresAbsolutePath(t *testing.T) {
	_, err := New("relative/ledger.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrInvalidPath)
}

func TestMarkDownloadedAndIsDuplicate(t *testing.T) {
	l, _ := newTestLedger(t)

	assert.False(t, l.IsDuplicate("aabbccdd"))
	require.NoError(t, l.MarkDownloaded("aabbccdd"))
	assert.True(t, l.IsDuplicate("aabbccdd"))
	assert.Equal(t, 1, l.Count())

	// Idempotent insert.
	require.NoError(t, l.MarkDownloaded("aabbccdd"))
	assert.Equal(t, 1, l.Count())
}

func TestPersistenceAcrossReload(t *testing.T) {
	l, path := newTestLedger(t)
	require.NoError(t, l.MarkDownloaded("11111111"))
	require.NoError(t, l.MarkDownloaded("22222222"))

	reloaded, err := New(path)
	require.NoError(t, err)
	assert.True(t, reloaded.IsDuplicate("11111111"))
	assert.True(t, reloaded.IsDuplicate("22222222"))
	assert.Equal(t, 2, reloaded.Count())
}

func TestClear(t *testing.T) {
	l, path := newTestLedger(t)
	require.NoError(t, l.MarkDownloaded("11111111"))
	require.NoError(t, l.Clear())

	assert.False(t, l.IsDuplicate("11111111"))
	assert.Equal(t, 0, l.Count())

	reloaded, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Count())
}

func TestFileFormat(t *testing.T) {
	l, path := newTestLedger(t)
	require.NoError(t, l.MarkDownloaded("bbbb0000"))
	require.NoError(t, l.MarkDownloaded("aaaa0000"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var file ledgerFile
	require.NoError(t, json.Unmarshal(data, &file))
	assert.Equal(t, FormatVersion, file.FormatVersion)
	// Flat sorted list, fully rewritten on each mutation.
	assert.Equal(t, []string{"aaaa0000", "bbbb0000"}, file.Fingerprints)
}

func TestRejectsNewerFormatVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	data, err := json.Marshal(ledgerFile{FormatVersion: "2.0", Fingerprints: []string{"aaaa0000"}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o640))

	_, err = New(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrLedgerVersion)
}

func TestLoadsLegacyFileWithoutVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fingerprints":["deadbeef"]}`), 0o640))

	l, err := New(path)
	require.NoError(t, err)
	assert.True(t, l.IsDuplicate("deadbeef"))
}
