package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"github.com/oncare/care-report-api/api"
	"github.com/oncare/care-report-api/api/types"
	"github.com/oncare/care-report-api/internal/services/cleanup"
	"github.com/oncare/care-report-api/internal/services/narrative"
	"github.com/oncare/care-report-api/internal/services/report"
	"github.com/oncare/care-report-api/internal/services/storage"
	"github.com/oncare/care-report-api/internal/services/transcription"
	"github.com/oncare/care-report-api/pkg/config"
	"github.com/oncare/care-report-api/pkg/convert"
	"github.com/oncare/care-report-api/pkg/ffmpeg"
	"github.com/oncare/care-report-api/pkg/logger"
	"github.com/oncare/care-report-api/pkg/tempfile"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Care Report API server with the configured settings.

The server accepts raw audio for transcription and JSON requests for
counseling journals and weekly care reports, and publishes the generated
documents to object storage.

Example:
  care-report-api serve
  care-report-api serve --port 9090
  care-report-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

// application is everything serve starts and stops
type application struct {
	server  *api.Server
	cleanup *cleanup.Service
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Use config values if flags not provided
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	log := newLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := buildApplication(ctx, cfg, log)
	if err != nil {
		return err
	}
	app.cleanup.Start(ctx)
	defer app.cleanup.Stop()

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := app.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Info().Str("addr", app.server.Addr()).Str("version", Version).Msg("server is ready to handle requests")

	var runErr error
	select {
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	case runErr = <-serverErr:
		log.Error().Err(runErr).Msg("shutting down server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server gracefully stopped")
	return runErr
}

// buildApplication wires every service from the config
func buildApplication(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*application, error) {
	temp := tempfile.NewManager(cfg.Storage.TempDir, logger.Component(log, "tempfile"))

	ff := ffmpeg.New(cfg.Processing.FFmpegPath, cfg.Processing.FFprobePath, cfg.Processing.FFmpegTimeout)
	if err := ff.ValidateBinaries(); err != nil {
		log.Warn().Err(err).Msg("ffmpeg unavailable, transcription requests will fail")
	}

	client := newOpenAIClient(cfg.OpenAI)

	backend, err := newBackend(cfg, client)
	if err != nil {
		return nil, err
	}
	log.Info().Str("backend", backend.Name()).Msg("speech backend selected")

	transcriber := transcription.NewService(temp, ff, backend, transcription.Options{
		Language:      cfg.Transcription.Language,
		ChunkDuration: cfg.Transcription.ChunkDuration,
		Concurrency:   cfg.Transcription.Concurrency,
		SampleRate:    cfg.Processing.SampleRate,
	}, logger.Component(log, "transcription"))

	store, err := storage.NewS3Store(ctx, cfg.S3)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	publisher := storage.NewPublisher(store, cfg.S3.PresignTTL, logger.Component(log, "storage"))

	converter := convert.New(cfg.Converter.LibreOfficePath, cfg.Converter.Docx2PDFPath)
	if err := converter.Validate(); err != nil {
		log.Warn().Err(err).Str("strategy", converter.Strategy()).Msg("pdf converter unavailable, report requests will fail")
	}

	narrator := narrative.NewGenerator(narrative.NewOpenAICompleter(client), narrative.Models{
		Summary: cfg.OpenAI.SummaryModel,
		Report:  cfg.OpenAI.ReportModel,
	}, logger.Component(log, "narrative"))

	reports := report.NewService(narrator, converter, publisher, temp, report.Options{
		JournalTemplate: cfg.Templates.JournalPath,
		WeeklyTemplate:  cfg.Templates.WeeklyPath,
		JournalPrefix:   cfg.S3.JournalPrefix,
		WeeklyPrefix:    cfg.S3.WeeklyPrefix,
	}, logger.Component(log, "report"))

	deps := &types.Dependencies{
		Transcriber:  transcriber,
		Reports:      reports,
		HealthChecks: healthChecks(cfg, ff, converter, store, backend),
		Version:      Version,
		Logger:       logger.Component(log, "http"),
	}

	server := api.NewServer(cfg, deps)
	if err := server.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	return &application{
		server:  server,
		cleanup: cleanup.NewService(temp, cfg.Storage.MaxTempAge, cfg.Storage.CleanupInterval, logger.Component(log, "cleanup")),
	}, nil
}

func newOpenAIClient(cfg config.OpenAIConfig) *openai.Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientCfg)
}

// newBackend selects the speech backend named by transcription.provider
func newBackend(cfg *config.Config, client transcription.AudioTranscriber) (transcription.Backend, error) {
	switch cfg.Transcription.Provider {
	case config.ProviderOpenAI, "":
		return transcription.NewOpenAIBackend(client, cfg.OpenAI.TranscriptionModel), nil
	case config.ProviderWhisperCPP:
		return transcription.NewWhisperCPPBackend(cfg.WhisperCPP.BinaryPath, cfg.WhisperCPP.ModelPath, cfg.WhisperCPP.Threads), nil
	default:
		return nil, fmt.Errorf("unknown transcription provider: %q", cfg.Transcription.Provider)
	}
}

type validator interface {
	Validate() error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// healthChecks lists the probes reported by /health
func healthChecks(cfg *config.Config, ff *ffmpeg.FFmpeg, converter validator, store pinger, backend transcription.Backend) []types.HealthCheck {
	checks := []types.HealthCheck{
		{Name: "ffmpeg", Check: func(context.Context) error { return ff.ValidateBinaries() }},
		{Name: "converter", Check: func(context.Context) error { return converter.Validate() }},
		{Name: "storage", Check: store.Ping},
		{Name: "templates", Check: func(context.Context) error {
			for _, p := range []string{cfg.Templates.JournalPath, cfg.Templates.WeeklyPath} {
				if _, err := os.Stat(p); err != nil {
					return err
				}
			}
			return nil
		}},
	}
	if v, ok := backend.(validator); ok {
		checks = append(checks, types.HealthCheck{
			Name:  "speech_" + backend.Name(),
			Check: func(context.Context) error { return v.Validate() },
		})
	}
	return checks
}
