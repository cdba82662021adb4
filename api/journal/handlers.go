package journal

import (
	"github.com/gin-gonic/gin"

	"github.com/oncare/care-report-api/api/types"
	"github.com/oncare/care-report-api/internal/models"
	"github.com/oncare/care-report-api/internal/services/report"
	"github.com/oncare/care-report-api/internal/services/storage"
)

// Generate creates the counseling journal docx and pdf
// @Summary      Generate a counseling journal
// @Description  Summarizes the counseling text, drafts the follow-up action, fills the journal template,
// @Description  converts it to pdf and uploads both files. Caller-supplied fields are written verbatim.
// @Tags         journal
// @Accept       json
// @Produce      json
// @Param        request body models.JournalRequest true "Counseling record"
// @Success      200 {object} models.JournalResponse
// @Failure      400 {object} types.ErrorResponse "Malformed body or missing text/client"
// @Failure      500 {object} types.ErrorResponse "RENDER_ERROR, PERSIST_ERROR, CONVERSION_ERROR or PUBLISH_ERROR"
// @Failure      502 {object} types.ErrorResponse "Narrative backend unavailable"
// @Router       /generate-journal-docx [post]
func Generate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.JournalRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		resp, err := deps.Reports.GenerateJournal(c.Request.Context(), req)
		if err != nil {
			types.SendError(c, deps.Logger, err)
			return
		}
		types.SendSuccess(c, resp)
	}
}

// ConvertPDF converts a previously published journal docx to pdf
// @Summary      Convert a journal docx to pdf
// @Description  Downloads the named journal docx from storage, converts it and uploads the pdf.
// @Tags         journal
// @Accept       json
// @Produce      json
// @Param        request body models.FileRequest true "Journal docx file name, key or URL"
// @Success      200 {object} models.PDFResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse "CONVERSION_ERROR or PUBLISH_ERROR"
// @Router       /generate-journal-docx/convert-journal-pdf [post]
func ConvertPDF(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.FileRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		pdfURL, err := deps.Reports.ConvertJournalPDF(c.Request.Context(), req.FileName)
		if err != nil {
			types.SendError(c, deps.Logger, err)
			return
		}
		types.SendSuccess(c, models.PDFResponse{PdfURL: pdfURL})
	}
}

// DownloadDocxURL presigns a journal docx
// @Summary      Presign a journal docx
// @Tags         journal
// @Accept       json
// @Produce      json
// @Param        request body models.FileRequest true "Journal docx file name"
// @Success      200 {object} models.DownloadURLResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse "PUBLISH_ERROR"
// @Router       /generate-journal-docx/download-docx-url [post]
func DownloadDocxURL(deps *types.Dependencies) gin.HandlerFunc {
	return DownloadURL(deps, report.KindJournal, storage.AssetDocx)
}

// DownloadPDFURL presigns a journal pdf
// @Summary      Presign a journal pdf
// @Tags         journal
// @Accept       json
// @Produce      json
// @Param        request body models.FileRequest true "Journal pdf file name"
// @Success      200 {object} models.DownloadURLResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      500 {object} types.ErrorResponse "PUBLISH_ERROR"
// @Router       /generate-journal-docx/download-pdf-url [post]
func DownloadPDFURL(deps *types.Dependencies) gin.HandlerFunc {
	return DownloadURL(deps, report.KindJournal, storage.AssetPDF)
}

// DownloadURL returns a handler that presigns one asset kind of one report kind
func DownloadURL(deps *types.Dependencies, kind report.Kind, asset string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.FileRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		u, err := deps.Reports.DownloadURL(c.Request.Context(), kind, asset, req.FileName)
		if err != nil {
			types.SendError(c, deps.Logger, err)
			return
		}
		types.SendSuccess(c, models.DownloadURLResponse{DownloadURL: u})
	}
}
