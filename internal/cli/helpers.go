// Package cli implements the memoria command line interface.
package cli

import (
	"fmt"
	"time"

	"github.com/willert-dev/memoria/internal/logger"
	"github.com/willert-dev/memoria/pkg/archive"
	"github.com/willert-dev/memoria/pkg/assetstore"
	"github.com/willert-dev/memoria/pkg/config"
	"github.com/willert-dev/memoria/pkg/fetch"
	"github.com/willert-dev/memoria/pkg/hooks"
	"github.com/willert-dev/memoria/pkg/ledger"
	"github.com/willert-dev/memoria/pkg/manifest"
	"github.com/willert-dev/memoria/pkg/orchestrator"
	"github.com/willert-dev/memoria/pkg/quota"
)

// These variables will be set by the main package.
var (
	ConfigPath *string
	Verbose    *bool
)

// loadConfig resolves the configuration from the --config flag or the default
// location and initializes logging.
func loadConfig() (*config.Config, error) {
	path := ""
	if ConfigPath != nil {
		path = *ConfigPath
	}
	if path == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		path = defaultPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Settings.LogLevel
	if Verbose != nil && *Verbose {
		logLevel = "debug"
	}
	logger.InitLogger(logLevel)

	return cfg, nil
}

// loadLedger opens the dedup ledger at its configured location.
func loadLedger(cfg *config.Config) (*ledger.FileLedger, error) {
	l, err := ledger.New(cfg.GetLedgerPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open dedup ledger: %w", err)
	}
	return l, nil
}

// loadQuotaGate returns the configured quota gate: a lifetime item limit when
// max_import_items is set, otherwise unlimited.
func loadQuotaGate(cfg *config.Config) quota.Gate {
	if cfg.Settings.MaxImportItems > 0 {
		return quota.NewLimitGate(cfg.Settings.MaxImportItems, cfg.GetQuotaPath())
	}
	return quota.Unlimited{}
}

// buildOrchestrator wires the full import pipeline from the configuration.
func buildOrchestrator(cfg *config.Config, eventHooks orchestrator.Hooks) (*orchestrator.Orchestrator, *ledger.FileLedger, error) {
	dedup, err := loadLedger(cfg)
	if err != nil {
		return nil, nil, err
	}

	hookRunner, err := hooks.NewTengoRunner(cfg.Settings.PostImportHook)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load post-import hook: %w", err)
	}

	timeout := cfg.Settings.HTTPTimeout
	if timeout <= 0 {
		timeout = config.DefaultHTTPTimeout
	}

	orch := orchestrator.New(
		manifest.NewLoader(archive.NewManager(), cfg.GetStagingDir()),
		fetch.NewFetcher(timeout, cfg.Settings.UserAgent),
		assetstore.NewLocalStore(cfg.Settings.LibraryDir),
		loadQuotaGate(cfg),
		dedup,
		eventHooks,
	)
	orch.PostImport = hookRunner
	orch.StagingDir = cfg.GetStagingDir()
	orch.LibraryDir = cfg.Settings.LibraryDir
	return orch, dedup, nil
}

// progressHooks returns event hooks that render pipeline progress as simple,
// human-friendly lines.
func progressHooks() orchestrator.Hooks {
	return orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
		switch e.Phase {
		case "progress":
			fmt.Printf("[%d/%d] %s\n", e.Index+1, e.Total, e.Label)
		case "item-failed":
			fmt.Printf("  failed: %s\n", e.Msg)
		case "extracting", "parsing":
			logger.Debugf("%s: %s", e.Phase, e.Msg)
		case "ready", "complete":
			fmt.Printf("%s\n", e.Msg)
		case "error":
			logger.Errorf("pipeline error: %s", e.Msg)
		}
	}}
}

// formatDateRange renders the oldest and newest parsed timestamps of a record
// batch, falling back when nothing carries a date.
func formatDateRange(oldest, newest *time.Time) string {
	if oldest == nil || newest == nil {
		return "unknown"
	}
	const layout = "2006-01-02"
	return fmt.Sprintf("%s to %s", oldest.Format(layout), newest.Format(layout))
}
