//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willert-dev/memoria/test/testutil"
)

// writeTempConfig writes a minimal config YAML pointing the library and state
// directories into the test's temp space.
func writeTempConfig(t *testing.T, root string) string {
	t.Helper()

	libraryDir := filepath.Join(root, "library")
	stateDir := filepath.Join(root, "state")

	yamlContent := "settings:\n" +
		"  library_dir: " + strings.ReplaceAll(libraryDir, "\\", "\\\\") + "\n" +
		"  state_dir: " + strings.ReplaceAll(stateDir, "\\", "\\\\") + "\n"

	path := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o600))
	return path
}

// runCLI executes the root command with args and returns captured stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	cmd := newRootCmd()
	cmd.SetArgs(args)
	execErr := cmd.ExecuteContext(context.Background())

	_ = w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), execErr
}

func TestDownloadCommand(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeTempConfig(t, root)

	server := testutil.NewMediaServer(t, map[string][]byte{
		"/media/1": {0xFF, 0xD8, 0xFF, 0xE0},
		"/media/2": []byte("video payload"),
	})
	archivePath := testutil.BuildExportArchive(t, []testutil.ManifestEntry{
		{
			Date:             "2023-04-16 18:06:33 UTC",
			MediaType:        "Image",
			DownloadLink:     server.URL("/dl/1"),
			MediaDownloadURL: server.URL("/media/1"),
		},
		{
			Date:             "2023-06-20 14:30:05 UTC",
			MediaType:        "Video",
			DownloadLink:     server.URL("/dl/2"),
			MediaDownloadURL: server.URL("/media/2"),
		},
	})

	out, err := runCLI(t, "--config", cfgPath, "download", archivePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Downloaded: 2")
	assert.Contains(t, out, "Failed: 0")

	photos, err := filepath.Glob(filepath.Join(root, "library", "Photos", "*.jpg"))
	require.NoError(t, err)
	assert.Len(t, photos, 1)
	videos, err := filepath.Glob(filepath.Join(root, "library", "Videos", "*.mp4"))
	require.NoError(t, err)
	assert.Len(t, videos, 1)

	// A second run skips everything via the dedup ledger.
	out, err = runCLI(t, "--config", cfgPath, "download", archivePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to download.")
}

func TestImportCommand(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeTempConfig(t, root)

	server := testutil.NewMediaServer(t, map[string][]byte{})
	archivePath := testutil.BuildExportArchive(t, []testutil.ManifestEntry{
		{
			Date:             "2023-04-16 18:06:33 UTC",
			MediaType:        "Image",
			DownloadLink:     server.URL("/dl/1"),
			MediaDownloadURL: server.URL("/media/1"),
		},
	})

	out, err := runCLI(t, "--config", cfgPath, "import", archivePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Records: 1")
	assert.Contains(t, out, "New: 1")
}

func TestLedgerCommands(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeTempConfig(t, root)

	out, err := runCLI(t, "--config", cfgPath, "ledger", "count")
	require.NoError(t, err)
	assert.Contains(t, out, "0")

	server := testutil.NewMediaServer(t, map[string][]byte{
		"/media/1": {0xFF, 0xD8, 0xFF, 0xE0},
	})
	archivePath := testutil.BuildExportArchive(t, []testutil.ManifestEntry{
		{
			Date:             "2023-04-16 18:06:33 UTC",
			MediaType:        "Image",
			DownloadLink:     server.URL("/dl/1"),
			MediaDownloadURL: server.URL("/media/1"),
		},
	})
	_, err = runCLI(t, "--config", cfgPath, "download", archivePath)
	require.NoError(t, err)

	out, err = runCLI(t, "--config", cfgPath, "ledger", "count")
	require.NoError(t, err)
	assert.Contains(t, out, "1")

	_, err = runCLI(t, "--config", cfgPath, "ledger", "clear")
	require.NoError(t, err)

	out, err = runCLI(t, "--config", cfgPath, "ledger", "count")
	require.NoError(t, err)
	assert.Contains(t, out, "0")
}

func TestResetCommand(t *testing.T) {
	root := t.TempDir()
	cfgPath := writeTempConfig(t, root)

	stagingDir := filepath.Join(root, "state", "staging")
	require.NoError(t, os.MkdirAll(filepath.Join(stagingDir, "import-leftover"), 0o700))

	_, err := runCLI(t, "--config", cfgPath, "reset")
	require.NoError(t, err)

	_, err = os.Stat(stagingDir)
	assert.True(t, os.IsNotExist(err))
}
