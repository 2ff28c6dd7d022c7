package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/willert-dev/memoria/internal/logger"
	"github.com/willert-dev/memoria/pkg/errors"
	"github.com/willert-dev/memoria/pkg/orchestrator"
)

// NewDownloadCmd creates the download command.
func NewDownloadCmd() *cobra.Command {
	var (
		selectMode string
		toggle     []int
	)

	cmd := &cobra.Command{
		Use:   "download ARCHIVE",
		Short: "Download media from an export archive",
		Long: `Extract an export archive, parse its media manifest and download the
selected records into the library. Records already present in the dedup
ledger are skipped. Individual download failures are reported but do not
abort the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(cmd.Context(), args[0], selectMode, toggle)
		},
	}

	cmd.Flags().StringVar(&selectMode, "select", "new", "initial selection: all, new or none")
	cmd.Flags().IntSliceVar(&toggle, "toggle", nil, "1-based record indices to toggle after the initial selection")

	return cmd
}

func runDownload(ctx context.Context, archivePath, selectMode string, toggle []int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	orch, _, err := buildOrchestrator(cfg, progressHooks())
	if err != nil {
		return err
	}

	if err := orch.ImportArchive(ctx, archivePath); err != nil {
		return fmt.Errorf("failed to import archive: %w", err)
	}

	if err := applySelection(orch, selectMode, toggle); err != nil {
		orch.Reset()
		return err
	}

	summary, err := orch.DownloadSelected(ctx)
	if err != nil {
		orch.Reset()
		if stderrors.Is(err, errors.ErrNothingSelected) {
			fmt.Println("Nothing to download.")
			return nil
		}
		return fmt.Errorf("download failed: %w", err)
	}

	fmt.Printf("Downloaded: %d\n", summary.Success)
	fmt.Printf("Skipped: %d\n", summary.Skipped)
	fmt.Printf("Failed: %d\n", summary.Failed)
	for _, failure := range orch.Failures() {
		logger.Warnf("failed: %s", failure)
	}
	return nil
}

// applySelection applies the --select mode and then the --toggle indices.
func applySelection(orch *orchestrator.Orchestrator, mode string, toggle []int) error {
	switch mode {
	case "all":
		orch.SelectAll()
	case "new":
		orch.SelectNonDuplicates()
	case "none":
		orch.DeselectAll()
	default:
		return fmt.Errorf("unknown selection mode %q, want all, new or none", mode)
	}

	records := orch.Records()
	for _, index := range toggle {
		if index < 1 || index > len(records) {
			return fmt.Errorf("toggle index %d out of range 1..%d", index, len(records))
		}
		orch.Toggle(records[index-1].ID)
	}
	return nil
}
