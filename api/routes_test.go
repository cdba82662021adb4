package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncare/care-report-api/api/types"
	"github.com/oncare/care-report-api/internal/models"
	"github.com/oncare/care-report-api/internal/services/report"
	"github.com/oncare/care-report-api/pkg/config"
)

type stubTranscriber struct{}

func (stubTranscriber) Transcribe(ctx context.Context, raw []byte, format string) (string, error) {
	return "text", nil
}

type stubReports struct{}

func (stubReports) GenerateJournal(ctx context.Context, req models.JournalRequest) (*models.JournalResponse, error) {
	return &models.JournalResponse{File: "journal-1.docx"}, nil
}

func (stubReports) GenerateWeekly(ctx context.Context, req models.WeeklyReportRequest) (*models.WeeklyReportResponse, error) {
	return &models.WeeklyReportResponse{File: "weekly-report-1.docx"}, nil
}

func (stubReports) ConvertJournalPDF(ctx context.Context, fileName string) (string, error) {
	return "https://b/journal/pdf/x.pdf", nil
}

func (stubReports) DownloadURL(ctx context.Context, kind report.Kind, asset, fileName string) (string, error) {
	return "https://signed/" + fileName, nil
}

func testConfig(reportsBurst int) *config.Config {
	return &config.Config{
		Server:        config.ServerConfig{Host: "127.0.0.1", Port: 5000, MaxBodyBytes: 1024},
		Transcription: config.TranscriptionConfig{MaxUploadBytes: 4096},
		RateLimiting: config.RateLimitConfig{
			Enabled: true,
			Endpoints: map[string]config.EndpointLimits{
				LimitReports:    {RPS: 1, Burst: reportsBurst},
				LimitDownloads:  {RPS: 10, Burst: 10},
				LimitTranscribe: {RPS: 10, Burst: 10},
			},
		},
		Security:   config.SecurityConfig{EnableCORS: true, CORSOrigins: []string{"*"}},
		Monitoring: config.MonitoringConfig{Enabled: true, MetricsPath: "/metrics", HealthPath: "/health"},
	}
}

func newTestServer(t *testing.T, reportsBurst int) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := NewServer(testConfig(reportsBurst), &types.Dependencies{
		Transcriber: stubTranscriber{},
		Reports:     stubReports{},
		Version:     "test",
		Logger:      zerolog.Nop(),
	})
	require.NoError(t, srv.Initialize())
	t.Cleanup(srv.limiter.Stop)
	return srv
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, 10)
	assert.Equal(t, "127.0.0.1:5000", srv.Addr())

	tests := []struct {
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/docs", "", http.StatusMovedPermanently},
		{http.MethodPost, "/transcribe", "audio", http.StatusOK},
		{http.MethodPost, "/generate-journal-docx", `{"text":"t","client":"c"}`, http.StatusOK},
		{http.MethodPost, "/generate-journal-docx/convert-journal-pdf", `{"file_name":"x.docx"}`, http.StatusOK},
		{http.MethodPost, "/generate-journal-docx/download-docx-url", `{"file_name":"x.docx"}`, http.StatusOK},
		{http.MethodPost, "/generate-journal-docx/download-pdf-url", `{"file_name":"x.pdf"}`, http.StatusOK},
		{http.MethodPost, "/generate-weekly-report/download-weekly-docx-url", `{"file_name":"x.docx"}`, http.StatusOK},
		{http.MethodPost, "/generate-weekly-report/download-weekly-pdf-url", `{"file_name":"x.pdf"}`, http.StatusOK},
		{http.MethodGet, "/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			srv.Engine().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}
}

func TestRoutesLimits(t *testing.T) {
	srv := newTestServer(t, 1)

	do := func(path string, body string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.0.0.1:1000"
		srv.Engine().ServeHTTP(w, req)
		return w.Code
	}

	// the weekly and journal generators share the reports bucket
	weeklyBody := `{"journalSummary":[{"date":"d"}]}`
	assert.Equal(t, http.StatusOK, do("/generate-weekly-report", weeklyBody))
	assert.Equal(t, http.StatusTooManyRequests, do("/generate-weekly-report", weeklyBody))

	assert.Equal(t, http.StatusRequestEntityTooLarge, do("/generate-journal-docx/download-docx-url", `{"file_name":"`+strings.Repeat("a", 2048)+`"}`))
	assert.Equal(t, http.StatusOK, do("/transcribe", strings.Repeat("a", 2048)), "audio uses the larger upload limit")
}

func TestRegisterRoutesRequiresDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	err := RegisterRoutes(gin.New(), &types.Dependencies{}, testConfig(1), NewRateLimiter())
	assert.Error(t, err)
}
