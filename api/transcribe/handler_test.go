package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncare/care-report-api/api/types"
	apperrors "github.com/oncare/care-report-api/pkg/errors"
)

type fakeTranscriber struct {
	text   string
	err    error
	raw    []byte
	format string
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, raw []byte, format string) (string, error) {
	f.raw, f.format = raw, format
	return f.text, f.err
}

func newRouter(tr *fakeTranscriber, limit int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/transcribe", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	})
	RegisterRoutes(group, &types.Dependencies{Transcriber: tr, Logger: zerolog.Nop()})
	return router
}

func TestPost(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		contentType    string
		transcriber    *fakeTranscriber
		expectedStatus int
		expectedCode   string
		expectedFormat string
	}{
		{
			name:           "webm upload",
			body:           "webm-bytes",
			contentType:    "audio/webm;codecs=opus",
			transcriber:    &fakeTranscriber{text: "안녕하세요 오늘은 식사를 하셨어요"},
			expectedStatus: http.StatusOK,
			expectedFormat: ".webm",
		},
		{
			name:           "wav upload",
			body:           "wav-bytes",
			contentType:    "audio/wav",
			transcriber:    &fakeTranscriber{text: "text"},
			expectedStatus: http.StatusOK,
			expectedFormat: ".wav",
		},
		{
			name:           "empty body",
			transcriber:    &fakeTranscriber{err: apperrors.EmptyInput()},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "EMPTY_INPUT",
			expectedFormat: ".webm",
		},
		{
			name:           "empty transcript",
			body:           "silence",
			contentType:    "audio/webm",
			transcriber:    &fakeTranscriber{err: apperrors.EmptyTranscript(2)},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "EMPTY_TRANSCRIPT",
			expectedFormat: ".webm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(tt.transcriber, 1024)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedFormat, tt.transcriber.format)
			assert.Equal(t, tt.body, string(tt.transcriber.raw))

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, body["error"])
				assert.Equal(t, "error", body["status"])
				return
			}
			assert.Equal(t, tt.transcriber.text, body["text"])
		})
	}
}

func TestPostTooLarge(t *testing.T) {
	tr := &fakeTranscriber{text: "unused"}
	router := newRouter(tr, 8)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcribe", bytes.NewReader(make([]byte, 64)))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Nil(t, tr.raw, "transcriber must not be called")
}
