package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/willert-dev/memoria/pkg/model"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import ARCHIVE",
		Short: "Inspect an export archive",
		Long: `Extract an export archive, parse its media manifest and report what it
contains without downloading anything. Use the download command to fetch the
media afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), args[0])
		},
	}

	return cmd
}

func runImport(ctx context.Context, archivePath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	orch, _, err := buildOrchestrator(cfg, progressHooks())
	if err != nil {
		return err
	}
	defer orch.Reset()

	if err := orch.ImportArchive(ctx, archivePath); err != nil {
		return fmt.Errorf("failed to import archive: %w", err)
	}

	records := orch.Records()
	oldest, newest := dateRange(records)
	duplicates := len(records) - orch.SelectedCount()

	fmt.Printf("Records: %d\n", len(records))
	fmt.Printf("Date range: %s\n", formatDateRange(oldest, newest))
	fmt.Printf("Already downloaded: %d\n", duplicates)
	fmt.Printf("New: %d\n", orch.SelectedCount())
	return nil
}

// dateRange finds the oldest and newest parsed timestamps in a batch. Records
// with unparseable dates are ignored.
func dateRange(records []*model.Record) (*time.Time, *time.Time) {
	var oldest, newest *time.Time
	for _, r := range records {
		ts := r.ParsedTimestamp
		if ts == nil {
			continue
		}
		if oldest == nil || ts.Before(*oldest) {
			oldest = ts
		}
		if newest == nil || ts.After(*newest) {
			newest = ts
		}
	}
	return oldest, newest
}
