package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment   string              `mapstructure:"environment"`
	Server        ServerConfig        `mapstructure:"server"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Processing    ProcessingConfig    `mapstructure:"processing"`
	Transcription TranscriptionConfig `mapstructure:"transcription"`
	WhisperCPP    WhisperCPPConfig    `mapstructure:"whisper_cpp"`
	OpenAI        OpenAIConfig        `mapstructure:"openai"`
	Templates     TemplatesConfig     `mapstructure:"templates"`
	Converter     ConverterConfig     `mapstructure:"converter"`
	S3            S3Config            `mapstructure:"s3"`
	RateLimiting  RateLimitConfig     `mapstructure:"rate_limiting"`
	Security      SecurityConfig      `mapstructure:"security"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Monitoring    MonitoringConfig    `mapstructure:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// StorageConfig contains local temp file settings
type StorageConfig struct {
	TempDir         string        `mapstructure:"temp_dir"`
	MaxTempAge      time.Duration `mapstructure:"max_temp_age"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// ProcessingConfig contains audio decoding settings
type ProcessingConfig struct {
	FFmpegPath    string        `mapstructure:"ffmpeg_path"`
	FFprobePath   string        `mapstructure:"ffprobe_path"`
	FFmpegTimeout time.Duration `mapstructure:"ffmpeg_timeout"`
	SampleRate    int           `mapstructure:"sample_rate"`
}

// TranscriptionConfig contains speech-to-text pipeline settings
type TranscriptionConfig struct {
	Provider       string        `mapstructure:"provider"` // openai or whisper_cpp
	Language       string        `mapstructure:"language"`
	ChunkDuration  time.Duration `mapstructure:"chunk_duration"`
	Concurrency    int           `mapstructure:"concurrency"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes"`
}

// WhisperCPPConfig contains settings for the local whisper.cpp CLI backend
type WhisperCPPConfig struct {
	BinaryPath string `mapstructure:"binary_path"`
	ModelPath  string `mapstructure:"model_path"`
	Threads    int    `mapstructure:"threads"`
}

// OpenAIConfig contains settings for the OpenAI-compatible API
type OpenAIConfig struct {
	APIKey             string `mapstructure:"api_key"`
	BaseURL            string `mapstructure:"base_url"`
	TranscriptionModel string `mapstructure:"transcription_model"`
	SummaryModel       string `mapstructure:"summary_model"`
	ReportModel        string `mapstructure:"report_model"`
}

// TemplatesConfig points at the docx templates
type TemplatesConfig struct {
	JournalPath string `mapstructure:"journal_path"`
	WeeklyPath  string `mapstructure:"weekly_path"`
}

// ConverterConfig contains docx to pdf conversion settings
type ConverterConfig struct {
	LibreOfficePath string `mapstructure:"libreoffice_path"`
	Docx2PDFPath    string `mapstructure:"docx2pdf_path"`
}

// S3Config contains object storage settings
type S3Config struct {
	Bucket         string        `mapstructure:"bucket"`
	Region         string        `mapstructure:"region"`
	Endpoint       string        `mapstructure:"endpoint"`
	AccessKey      string        `mapstructure:"access_key"`
	SecretKey      string        `mapstructure:"secret_key"`
	ForcePathStyle bool          `mapstructure:"force_path_style"`
	PublicBaseURL  string        `mapstructure:"public_base_url"`
	PresignTTL     time.Duration `mapstructure:"presign_ttl"`
	JournalPrefix  string        `mapstructure:"journal_prefix"`
	WeeklyPrefix   string        `mapstructure:"weekly_prefix"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled   bool                      `mapstructure:"enabled"`
	Endpoints map[string]EndpointLimits `mapstructure:"endpoints"`
}

// EndpointLimits is a token bucket for one route group
type EndpointLimits struct {
	RPS   int `mapstructure:"rps"`
	Burst int `mapstructure:"burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	CORSMethods []string `mapstructure:"cors_methods"`
	CORSHeaders []string `mapstructure:"cors_headers"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level        string `mapstructure:"level"`
	Format       string `mapstructure:"format"`
	Output       string `mapstructure:"output"`
	FilePath     string `mapstructure:"file_path"`
	MaxSize      int    `mapstructure:"max_size"`
	MaxBackups   int    `mapstructure:"max_backups"`
	MaxAge       int    `mapstructure:"max_age"`
	Compress     bool   `mapstructure:"compress"`
	EnableCaller bool   `mapstructure:"enable_caller"`
}

// MonitoringConfig contains monitoring settings
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
	HealthPath  string `mapstructure:"health_path"`
}
