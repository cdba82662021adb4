package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/oncare/care-report-api/pkg/errors"
)

// withWorkdir runs the test from an empty directory so no settings.yaml or .env leaks in
func withWorkdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func writeSettings(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "settings.yaml"), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string)
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name:  "missing config file with defaults",
			setup: func(t *testing.T, dir string) {},
			check: func(t *testing.T) {
				assert.Equal(t, 5000, GetInt("server.port"))
				assert.Equal(t, 20*time.Second, GetDuration("transcription.chunk_duration"))
				assert.Equal(t, "oncare-backend", GetString("s3.bucket"))
				assert.Equal(t, 10*time.Minute, GetDuration("s3.presign_ttl"))
			},
		},
		{
			name: "load from settings.yaml",
			setup: func(t *testing.T, dir string) {
				writeSettings(t, dir, `
server:
  port: 8081
transcription:
  chunk_duration: 30s
  language: en
`)
			},
			check: func(t *testing.T) {
				assert.Equal(t, 8081, GetInt("server.port"))
				assert.Equal(t, 30*time.Second, GetDuration("transcription.chunk_duration"))
				assert.Equal(t, "en", GetString("transcription.language"))
			},
		},
		{
			name: "environment variable override",
			setup: func(t *testing.T, dir string) {
				writeSettings(t, dir, "server:\n  port: 8081\n")
				t.Setenv("ONCARE_SERVER_PORT", "9090")
			},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
			},
		},
		{
			name: "provider aliases",
			setup: func(t *testing.T, dir string) {
				t.Setenv("OPENAI_API_KEY", "sk-test")
				t.Setenv("AWS_REGION", "us-west-2")
			},
			check: func(t *testing.T) {
				assert.Equal(t, "sk-test", GetString("openai.api_key"))
				assert.Equal(t, "us-west-2", GetString("s3.region"))
			},
		},
		{
			name: "dotenv file",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ONCARE_TRANSCRIPTION_LANGUAGE=ja\n"), 0o644))
				t.Cleanup(func() { os.Unsetenv("ONCARE_TRANSCRIPTION_LANGUAGE") })
			},
			check: func(t *testing.T) {
				assert.Equal(t, "ja", GetString("transcription.language"))
			},
		},
		{
			name: "invalid port",
			setup: func(t *testing.T, dir string) {
				t.Setenv("ONCARE_SERVER_PORT", "70000")
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			setup: func(t *testing.T, dir string) {
				t.Setenv("ONCARE_TRANSCRIPTION_PROVIDER", "carrier-pigeon")
			},
			wantErr: true,
		},
		{
			name: "placeholder key in production",
			setup: func(t *testing.T, dir string) {
				t.Setenv("ONCARE_ENVIRONMENT", "production")
				t.Setenv("OPENAI_API_KEY", "changeme")
			},
			wantErr: true,
		},
		{
			name: "non-positive concurrency is corrected",
			setup: func(t *testing.T, dir string) {
				t.Setenv("ONCARE_TRANSCRIPTION_CONCURRENCY", "0")
			},
			check: func(t *testing.T) {
				assert.Equal(t, 1, GetInt("transcription.concurrency"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := withWorkdir(t)
			tt.setup(t, dir)

			err := load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	withWorkdir(t)
	require.NoError(t, load())

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.Transcription.Provider)
	assert.Equal(t, "./templates/weekly_report.docx", cfg.Templates.WeeklyPath)
	assert.Equal(t, "weekly-report", cfg.S3.WeeklyPrefix)
	assert.Equal(t, 2, cfg.RateLimiting.Endpoints["reports"].RPS)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:        ServerConfig{Host: "localhost", Port: 8080},
			Transcription: TranscriptionConfig{ChunkDuration: 20 * time.Second, Concurrency: 2},
			S3:            S3Config{Bucket: "bucket"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		key     string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "invalid port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true, key: "server.port"},
		{name: "zero chunk duration", mutate: func(c *Config) { c.Transcription.ChunkDuration = 0 }, wantErr: true, key: "transcription.chunk_duration"},
		{name: "missing bucket", mutate: func(c *Config) { c.S3.Bucket = "" }, wantErr: true, key: "s3.bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
				appErr, ok := apperrors.As(err)
				require.True(t, ok)
				assert.Equal(t, apperrors.ErrCodeConfigInvalid, appErr.Code)
				assert.Equal(t, tt.key, appErr.Details["key"])
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("defaults concurrency and sample rate", func(t *testing.T) {
		c := valid()
		c.Transcription.Concurrency = 0
		require.NoError(t, c.Validate())
		assert.Equal(t, 1, c.Transcription.Concurrency)
		assert.Equal(t, 16000, c.Processing.SampleRate)
	})
}

func TestLoadReportsInvalidKey(t *testing.T) {
	withWorkdir(t)
	t.Setenv("ONCARE_SERVER_PORT", "70000")

	err := load()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfigInvalid))
	assert.Contains(t, err.Error(), "server.port")
}
