package report

import (
	"context"

	"github.com/oncare/care-report-api/internal/models"
	"github.com/oncare/care-report-api/internal/services/storage"
	"github.com/oncare/care-report-api/pkg/tempfile"
)

// Generator is what the HTTP layer needs from this package
type Generator interface {
	GenerateJournal(ctx context.Context, req models.JournalRequest) (*models.JournalResponse, error)
	GenerateWeekly(ctx context.Context, req models.WeeklyReportRequest) (*models.WeeklyReportResponse, error)
	ConvertJournalPDF(ctx context.Context, fileName string) (string, error)
	DownloadURL(ctx context.Context, kind Kind, asset, fileName string) (string, error)
}

// Converter turns a docx into a pdf
type Converter interface {
	Convert(ctx context.Context, source, target string) error
}

// Publisher uploads assets and issues links
type Publisher interface {
	Publish(ctx context.Context, asset, localPath, key string) (string, error)
	PublishPair(ctx context.Context, prefix string, docx, pdf *tempfile.Handle, docxName, pdfName string) (storage.Published, storage.Published, error)
	Presign(ctx context.Context, asset, key string) (string, error)
	Fetch(ctx context.Context, asset, key, localPath string) error
}
