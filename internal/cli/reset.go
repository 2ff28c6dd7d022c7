package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/willert-dev/memoria/internal/logger"
)

// NewResetCmd creates the reset command.
func NewResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove leftover staging data",
		Long: `Remove the staging directory holding extracted archives and temporary
video payloads. Safe to run between imports; the library and the dedup
ledger are untouched.`,
		RunE: runReset,
	}
}

func runReset(*cobra.Command, []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stagingDir := cfg.GetStagingDir()
	if _, err := os.Stat(stagingDir); os.IsNotExist(err) {
		logger.Info("staging directory is already clean")
		return nil
	}

	if err := os.RemoveAll(stagingDir); err != nil {
		return fmt.Errorf("failed to remove staging directory %s: %w", stagingDir, err)
	}

	logger.Successf("removed staging directory %s", stagingDir)
	return nil
}
