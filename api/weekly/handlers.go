package weekly

import (
	"github.com/gin-gonic/gin"

	"github.com/oncare/care-report-api/api/journal"
	"github.com/oncare/care-report-api/api/types"
	"github.com/oncare/care-report-api/internal/models"
	"github.com/oncare/care-report-api/internal/services/report"
	"github.com/oncare/care-report-api/internal/services/storage"
)

// Generate creates the weekly care report docx and pdf
// @Summary      Generate a weekly care report
// @Description  Drafts the narrative fields from the journal rows, merges them with the supplied values,
// @Description  renders one table row per journal entry, converts to pdf and uploads both files.
// @Description  Supplied optional fields always win over generated ones.
// @Tags         weekly
// @Accept       json
// @Produce      json
// @Param        request body models.WeeklyReportRequest true "Weekly report input"
// @Success      200 {object} models.WeeklyReportResponse
// @Failure      400 {object} types.ErrorResponse "Malformed body or empty journalSummary"
// @Failure      500 {object} types.ErrorResponse "NARRATIVE_FORMAT_ERROR, RENDER_ERROR, PERSIST_ERROR, CONVERSION_ERROR or PUBLISH_ERROR"
// @Failure      502 {object} types.ErrorResponse "Narrative backend unavailable"
// @Router       /generate-weekly-report [post]
func Generate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.WeeklyReportRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		resp, err := deps.Reports.GenerateWeekly(c.Request.Context(), req)
		if err != nil {
			types.SendError(c, deps.Logger, err)
			return
		}
		types.SendSuccess(c, resp)
	}
}

// DownloadDocxURL presigns a weekly report docx
// @Summary      Presign a weekly report docx
// @Tags         weekly
// @Accept       json
// @Produce      json
// @Param        request body models.FileRequest true "Weekly report docx file name"
// @Success      200 {object} models.DownloadURLResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse "PUBLISH_ERROR"
// @Router       /generate-weekly-report/download-weekly-docx-url [post]
func DownloadDocxURL(deps *types.Dependencies) gin.HandlerFunc {
	return journal.DownloadURL(deps, report.KindWeekly, storage.AssetDocx)
}

// DownloadPDFURL presigns a weekly report pdf
// @Summary      Presign a weekly report pdf
// @Tags         weekly
// @Accept       json
// @Produce      json
// @Param        request body models.FileRequest true "Weekly report pdf file name"
// @Success      200 {object} models.DownloadURLResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse "PUBLISH_ERROR"
// @Router       /generate-weekly-report/download-weekly-pdf-url [post]
func DownloadPDFURL(deps *types.Dependencies) gin.HandlerFunc {
	return journal.DownloadURL(deps, report.KindWeekly, storage.AssetPDF)
}
