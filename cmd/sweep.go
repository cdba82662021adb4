package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oncare/care-report-api/internal/services/cleanup"
	"github.com/oncare/care-report-api/pkg/logger"
	"github.com/oncare/care-report-api/pkg/tempfile"
)

var sweepMaxAge time.Duration

// sweepCmd removes stale temp files once and exits
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove stale temporary files",
	Long: `Remove transient audio, chunk and report files older than the configured
maximum age from the temp directory, then exit.

Files kept after a failed publish are removed by this sweep as well.

Example:
  care-report-api sweep
  care-report-api sweep --max-age 1h`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().DurationVar(&sweepMaxAge, "max-age", 0, "remove files older than this (overrides storage.max_temp_age)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	maxAge := cfg.Storage.MaxTempAge
	if sweepMaxAge > 0 {
		maxAge = sweepMaxAge
	}

	temp := tempfile.NewManager(cfg.Storage.TempDir, logger.Component(log, "tempfile"))
	removed := cleanup.NewService(temp, maxAge, cfg.Storage.CleanupInterval, logger.Component(log, "cleanup")).RunOnce()

	fmt.Fprintf(cmd.OutOrStdout(), "removed %d stale file(s) from %s\n", removed, temp.Dir())
	return nil
}
