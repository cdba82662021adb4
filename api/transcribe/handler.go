package transcribe

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oncare/care-report-api/api/types"
	"github.com/oncare/care-report-api/internal/models"
	"github.com/oncare/care-report-api/internal/services/transcription"
	apperrors "github.com/oncare/care-report-api/pkg/errors"
)

// Post transcribes the raw audio request body
// @Summary      Transcribe recorded audio
// @Description  The body is the raw recording (browser MediaRecorder webm by default). It is decoded, split into
// @Description  fixed windows, and each window is transcribed in order. The joined text is returned.
// @Tags         transcription
// @Accept       audio/webm
// @Accept       audio/wav
// @Accept       application/octet-stream
// @Produce      json
// @Success      200 {object} models.TranscriptionResponse "Joined transcript"
// @Failure      413 {object} types.ErrorResponse "Upload larger than transcription.max_upload_bytes"
// @Failure      500 {object} types.ErrorResponse "EMPTY_INPUT, STORAGE_ERROR, TRANSCRIPTION_ERROR or EMPTY_TRANSCRIPT"
// @Router       /transcribe [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Audio upload too large",
					Error:   string(apperrors.ErrCodeInvalidInput),
					Details: gin.H{"limit_bytes": tooLarge.Limit},
				})
				return
			}
			types.SendBadRequest(c, "Failed to read request body")
			return
		}

		format := transcription.FormatFromContentType(c.GetHeader("Content-Type"))
		text, err := deps.Transcriber.Transcribe(c.Request.Context(), raw, format)
		if err != nil {
			types.SendError(c, deps.Logger, err)
			return
		}

		types.SendSuccess(c, models.TranscriptionResponse{Text: text})
	}
}
