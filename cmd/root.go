package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/oncare/care-report-api/pkg/config"
	"github.com/oncare/care-report-api/pkg/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "care-report-api",
	Short: "Care Report API server",
	Long: `Care Report API - transcription and care document generation for care facilities

Features:
  • Audio transcription of recorded counseling sessions
  • Counseling journal generation (docx + pdf)
  • Weekly care report generation from journal entries
  • Presigned download links for published documents`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Persistent flags for logging configuration; they override the logging section
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "force JSON formatted logs")
}

// loadConfig initializes configuration for commands that need it.
// version and help never call it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, err
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	applyLogFlags(cmd, &cfg.Logging)
	return cfg, nil
}

// applyLogFlags lets --log-level and --json-logs override the config file
func applyLogFlags(cmd *cobra.Command, cfg *config.LoggingConfig) {
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Level = strings.ToLower(level)
	}
	if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
		cfg.Format = logger.FormatJSON
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(cfg.Logging).With().Str("env", cfg.Environment).Logger()
}
