package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/oncare/care-report-api/pkg/errors"
)

// EnvPrefix is the prefix for environment variable overrides (ONCARE_SERVER_PORT etc.)
const EnvPrefix = "ONCARE"

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load()
	})

	return initErr
}

func load() error {
	// A local .env is optional; real environment variables win over it
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	bindProviderEnv()

	configPath := filepath.Clean("./config/settings.yaml")
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		// Missing file is fine, defaults and env vars still apply
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// bindProviderEnv lets the conventional provider variables work without the prefix
func bindProviderEnv() {
	_ = viper.BindEnv("openai.api_key", EnvPrefix+"_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = viper.BindEnv("openai.base_url", EnvPrefix+"_OPENAI_BASE_URL", "OPENAI_BASE_URL")
	_ = viper.BindEnv("s3.region", EnvPrefix+"_S3_REGION", "AWS_REGION")
	_ = viper.BindEnv("s3.access_key", EnvPrefix+"_S3_ACCESS_KEY", "AWS_ACCESS_KEY_ID")
	_ = viper.BindEnv("s3.secret_key", EnvPrefix+"_S3_SECRET_KEY", "AWS_SECRET_ACCESS_KEY")
	_ = viper.BindEnv("s3.bucket", EnvPrefix+"_S3_BUCKET", "AWS_S3_BUCKET")
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("must be between 1 and 65535, got %d", port))
	}

	if viper.GetDuration("transcription.chunk_duration") <= 0 {
		return apperrors.ConfigError("transcription.chunk_duration", fmt.Sprintf("must be positive, got %q", viper.GetString("transcription.chunk_duration")))
	}

	switch provider := viper.GetString("transcription.provider"); provider {
	case ProviderOpenAI, ProviderWhisperCPP:
	default:
		return apperrors.ConfigError("transcription.provider", fmt.Sprintf("unknown provider %q", provider))
	}

	// Auto-correct invalid chunk concurrency
	if viper.GetInt("transcription.concurrency") <= 0 {
		viper.Set("transcription.concurrency", 1)
	}

	if viper.GetInt("processing.sample_rate") <= 0 {
		viper.Set("processing.sample_rate", 16000)
	}

	return validateAPIKeys()
}

// validateAPIKeys validates that API keys are not using placeholder values
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
		"",
	}

	openaiKey := viper.GetString("openai.api_key")
	for _, placeholder := range placeholders {
		if openaiKey == placeholder {
			if isProduction {
				return apperrors.ConfigError("openai.api_key", "placeholder values are not allowed in production")
			}
			fmt.Fprintln(os.Stderr, "Warning: OpenAI API key is using a placeholder value")
			break
		}
	}

	if viper.GetString("s3.bucket") == "" {
		return apperrors.ConfigError("s3.bucket", "is required")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("must be between 1 and 65535, got %d", c.Server.Port))
	}

	if c.Transcription.ChunkDuration <= 0 {
		return apperrors.ConfigError("transcription.chunk_duration", fmt.Sprintf("must be positive, got %s", c.Transcription.ChunkDuration))
	}

	if c.S3.Bucket == "" {
		return apperrors.ConfigError("s3.bucket", "is required")
	}

	if c.Transcription.Concurrency <= 0 {
		c.Transcription.Concurrency = 1
	}

	if c.Processing.SampleRate <= 0 {
		c.Processing.SampleRate = 16000
	}

	return nil
}

// Transcription providers
const (
	ProviderOpenAI     = "openai"
	ProviderWhisperCPP = "whisper_cpp"
)

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.read_timeout", 60*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Minute)
	viper.SetDefault("server.shutdown_timeout", 30*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 2*1024*1024)

	// Storage defaults
	viper.SetDefault("storage.temp_dir", "./temp")
	viper.SetDefault("storage.max_temp_age", 24*time.Hour)
	viper.SetDefault("storage.cleanup_interval", 1*time.Hour)

	// Processing defaults
	viper.SetDefault("processing.ffmpeg_path", "ffmpeg")
	viper.SetDefault("processing.ffprobe_path", "ffprobe")
	viper.SetDefault("processing.ffmpeg_timeout", 5*time.Minute)
	viper.SetDefault("processing.sample_rate", 16000)

	// Transcription defaults
	viper.SetDefault("transcription.provider", ProviderOpenAI)
	viper.SetDefault("transcription.language", "ko")
	viper.SetDefault("transcription.chunk_duration", 20*time.Second)
	viper.SetDefault("transcription.concurrency", 1)
	viper.SetDefault("transcription.max_upload_bytes", 100*1024*1024)

	// whisper.cpp defaults
	viper.SetDefault("whisper_cpp.binary_path", "whisper-cli")
	viper.SetDefault("whisper_cpp.model_path", "./models/ggml-small.bin")
	viper.SetDefault("whisper_cpp.threads", 4)

	// OpenAI defaults
	viper.SetDefault("openai.base_url", "")
	viper.SetDefault("openai.transcription_model", "whisper-1")
	viper.SetDefault("openai.summary_model", "gpt-3.5-turbo")
	viper.SetDefault("openai.report_model", "gpt-4.1")

	// Template defaults
	viper.SetDefault("templates.journal_path", "./templates/journal.docx")
	viper.SetDefault("templates.weekly_path", "./templates/weekly_report.docx")

	// Converter defaults
	viper.SetDefault("converter.libreoffice_path", "libreoffice")
	viper.SetDefault("converter.docx2pdf_path", "docx2pdf")

	// S3 defaults
	viper.SetDefault("s3.bucket", "oncare-backend")
	viper.SetDefault("s3.region", "ap-northeast-2")
	viper.SetDefault("s3.endpoint", "")
	viper.SetDefault("s3.force_path_style", false)
	viper.SetDefault("s3.public_base_url", "")
	viper.SetDefault("s3.presign_ttl", 10*time.Minute)
	viper.SetDefault("s3.journal_prefix", "journal")
	viper.SetDefault("s3.weekly_prefix", "weekly-report")

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.endpoints.reports.rps", 2)
	viper.SetDefault("rate_limiting.endpoints.reports.burst", 5)
	viper.SetDefault("rate_limiting.endpoints.downloads.rps", 10)
	viper.SetDefault("rate_limiting.endpoints.downloads.burst", 20)
	viper.SetDefault("rate_limiting.endpoints.transcribe.rps", 2)
	viper.SetDefault("rate_limiting.endpoints.transcribe.burst", 4)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Content-Type", "Authorization", "X-Request-ID"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
	viper.SetDefault("logging.file_path", "./logs/app.log")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 10)
	viper.SetDefault("logging.max_age", 30)
	viper.SetDefault("logging.compress", true)
	viper.SetDefault("logging.enable_caller", false)

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
	viper.SetDefault("monitoring.health_path", "/health")
}
