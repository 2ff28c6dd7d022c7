package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willert-dev/memoria/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.Settings.LibraryDir)
	assert.NotEmpty(t, cfg.Settings.StateDir)
	assert.Equal(t, DefaultHTTPTimeout, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Zero(t, cfg.Settings.MaxImportItems)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromReader(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full config",
			yaml: `settings:
  library_dir: /data/library
  state_dir: /data/state
  user_agent: test-agent/1.0
  max_import_items: 250
  post_import_hook: /data/hook.tengo
  log_level: debug
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/data/library", cfg.Settings.LibraryDir)
				assert.Equal(t, "/data/state", cfg.Settings.StateDir)
				assert.Equal(t, DefaultHTTPTimeout, cfg.Settings.HTTPTimeout)
				assert.Equal(t, "test-agent/1.0", cfg.Settings.UserAgent)
				assert.Equal(t, 250, cfg.Settings.MaxImportItems)
				assert.Equal(t, "/data/hook.tengo", cfg.Settings.PostImportHook)
				assert.Equal(t, "debug", cfg.Settings.LogLevel)
			},
		},
		{
			name: "partial config gets defaults",
			yaml: `settings:
  library_dir: /data/library
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/data/library", cfg.Settings.LibraryDir)
				assert.NotEmpty(t, cfg.Settings.StateDir)
				assert.Equal(t, DefaultHTTPTimeout, cfg.Settings.HTTPTimeout)
				assert.Equal(t, "info", cfg.Settings.LogLevel)
			},
		},
		{
			name:    "malformed yaml",
			yaml:    "settings: [not a mapping",
			wantErr: errors.ErrConfigParse,
		},
		{
			name: "invalid log level",
			yaml: `settings:
  log_level: loud
`,
			wantErr: errors.ErrConfigValidation,
		},
		{
			name: "negative item limit",
			yaml: `settings:
  max_import_items: -1
`,
			wantErr: errors.ErrConfigValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfigFromReader(strings.NewReader(tt.yaml))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().Settings.HTTPTimeout, cfg.Settings.HTTPTimeout)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		require.ErrorIs(t, err, errors.ErrEmptyConfigPath)
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "settings:\n  library_dir: /tmp/lib\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/lib", cfg.Settings.LibraryDir)
	})
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Settings.LibraryDir = "/data/library"
	cfg.Settings.MaxImportItems = 42
	require.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Settings.LibraryDir, loaded.Settings.LibraryDir)
	assert.Equal(t, cfg.Settings.MaxImportItems, loaded.Settings.MaxImportItems)
}

func TestStatePaths(t *testing.T) {
	cfg := &Config{Settings: Settings{StateDir: "/var/state"}}

	assert.Equal(t, filepath.Join("/var/state", "ledger.json"), cfg.GetLedgerPath())
	assert.Equal(t, filepath.Join("/var/state", "quota.json"), cfg.GetQuotaPath())
	assert.Equal(t, filepath.Join("/var/state", "staging"), cfg.GetStagingDir())
}
