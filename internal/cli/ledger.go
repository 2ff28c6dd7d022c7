package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/willert-dev/memoria/internal/logger"
)

// NewLedgerCmd creates the ledger command with subcommands.
func NewLedgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Manage the dedup ledger",
		Long:  "Inspect and manage the ledger of already downloaded media fingerprints",
	}

	cmd.AddCommand(
		newLedgerCountCmd(),
		newLedgerClearCmd(),
	)

	return cmd
}

func newLedgerCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show the number of recorded downloads",
		RunE:  runLedgerCount,
	}
}

func newLedgerClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget all recorded downloads",
		Long: `Remove every fingerprint from the dedup ledger. The next import will
treat all records as new and download them again.`,
		RunE: runLedgerClear,
	}
}

func runLedgerCount(*cobra.Command, []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dedup, err := loadLedger(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%d\n", dedup.Count())
	return nil
}

func runLedgerClear(*cobra.Command, []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dedup, err := loadLedger(cfg)
	if err != nil {
		return err
	}

	count := dedup.Count()
	if err := dedup.Clear(); err != nil {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}

	logger.Successf("cleared %d fingerprints from %s", count, cfg.GetLedgerPath())
	return nil
}
