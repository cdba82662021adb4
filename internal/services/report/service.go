// Package report assembles, renders, converts and publishes care reports.
package report

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oncare/care-report-api/internal/metrics"
	"github.com/oncare/care-report-api/internal/models"
	"github.com/oncare/care-report-api/internal/services/narrative"
	"github.com/oncare/care-report-api/internal/services/storage"
	"github.com/oncare/care-report-api/pkg/convert"
	"github.com/oncare/care-report-api/pkg/docx"
	apperrors "github.com/oncare/care-report-api/pkg/errors"
	"github.com/oncare/care-report-api/pkg/tempfile"
)

// Kind selects the report type
type Kind string

const (
	KindJournal Kind = "journal"
	KindWeekly  Kind = "weekly"
)

// file name prefixes of generated documents; the stale sweep matches on them too
const (
	JournalFilePrefix = "journal-"
	WeeklyFilePrefix  = "weekly-report-"
)

// Options holds template paths and storage prefixes
type Options struct {
	JournalTemplate string
	WeeklyTemplate  string
	JournalPrefix   string
	WeeklyPrefix    string
}

// Service implements Generator
type Service struct {
	narrator  narrative.Narrator
	converter Converter
	publisher Publisher
	temp      *tempfile.Manager
	opts      Options
	log       zerolog.Logger
	newID     func() string
}

// NewService creates a new report service
func NewService(narrator narrative.Narrator, converter Converter, publisher Publisher, temp *tempfile.Manager, opts Options, log zerolog.Logger) *Service {
	return &Service{
		narrator:  narrator,
		converter: converter,
		publisher: publisher,
		temp:      temp,
		opts:      opts,
		log:       log,
		newID:     uuid.NewString,
	}
}

func (s *Service) prefix(kind Kind) string {
	if kind == KindWeekly {
		return s.opts.WeeklyPrefix
	}
	return s.opts.JournalPrefix
}

// GenerateJournal summarizes the counseling text, fills the journal template and publishes docx and pdf
func (s *Service) GenerateJournal(ctx context.Context, req models.JournalRequest) (resp *models.JournalResponse, err error) {
	defer func() { metrics.RecordReport(string(KindJournal), err == nil) }()

	summary, err := s.narrator.Summarize(ctx, req.Text, req.Client)
	if err != nil {
		return nil, err
	}
	action, err := s.narrator.RecommendAction(ctx, summary)
	if err != nil {
		return nil, err
	}

	fields := Merge(FieldSet{models.JournalKeyAction: action}, models.JournalKeySummary, summary, req.Authoritative())

	docxName := JournalFilePrefix + s.newID() + ".docx"
	d, p, err := s.produce(ctx, KindJournal, s.opts.JournalTemplate, fields, docxName)
	if err != nil {
		return nil, err
	}

	return &models.JournalResponse{
		File:            docxName,
		DocxURL:         d.URL,
		PdfURL:          p.URL,
		Summary:         summary,
		Recommendations: action,
		Opinion:         req.Opinion,
		Result:          req.Result,
		Note:            req.Note,
	}, nil
}

// GenerateWeekly drafts the weekly report fields from the journal rows and publishes docx and pdf
func (s *Service) GenerateWeekly(ctx context.Context, req models.WeeklyReportRequest) (resp *models.WeeklyReportResponse, err error) {
	defer func() { metrics.RecordReport(string(KindWeekly), err == nil) }()

	if len(req.JournalSummary) == 0 {
		return nil, apperrors.MissingFieldError("journalSummary")
	}

	var generated models.WeeklyReportFields
	if err := s.narrator.ExtractFields(ctx, weeklySource(req.JournalSummary), weeklySchema, req.Authoritative(), &generated); err != nil {
		return nil, err
	}

	fields := weeklyContext(req, generated)

	docxName := WeeklyFilePrefix + s.newID() + ".docx"
	d, p, err := s.produce(ctx, KindWeekly, s.opts.WeeklyTemplate, fields, docxName)
	if err != nil {
		return nil, err
	}

	resp = weeklyResponse(fields, req)
	resp.File = docxName
	resp.DocxURL, resp.ExportedDocx = d.URL, d.URL
	resp.PdfURL, resp.ExportedPdf = p.URL, p.URL
	return resp, nil
}

// produce renders, strips empty rows, saves, converts and publishes one report
func (s *Service) produce(ctx context.Context, kind Kind, template string, fields FieldSet, docxName string) (storage.Published, storage.Published, error) {
	scope := s.temp.NewScope("report")
	defer scope.Close()

	pdfName := strings.TrimSuffix(docxName, ".docx") + ".pdf"

	start := time.Now()
	doc, err := docx.Render(template, fields)
	metrics.ObserveStage("render", start)
	if err != nil {
		return storage.Published{}, storage.Published{}, apperrors.RenderError(template, err)
	}
	if n := doc.RemoveEmptyTableRows(); n > 0 {
		s.log.Debug().Int("rows", n).Str("kind", string(kind)).Msg("removed empty table rows")
	}

	docxFile, err := scope.AcquireNamed(docxName)
	if err != nil {
		return storage.Published{}, storage.Published{}, apperrors.PersistError(docxName, err)
	}
	if err := doc.Save(docxFile.Path()); err != nil {
		return storage.Published{}, storage.Published{}, apperrors.PersistError(docxFile.Path(), err)
	}

	pdfFile, err := scope.AcquireNamed(pdfName)
	if err != nil {
		return storage.Published{}, storage.Published{}, apperrors.PersistError(pdfName, err)
	}
	if err := s.convert(ctx, docxFile.Path(), pdfFile.Path()); err != nil {
		return storage.Published{}, storage.Published{}, err
	}

	return s.publisher.PublishPair(ctx, s.prefix(kind), docxFile, pdfFile, docxName, pdfName)
}

func (s *Service) convert(ctx context.Context, source, target string) error {
	start := time.Now()
	err := s.converter.Convert(ctx, source, target)
	metrics.ObserveStage("convert", start)
	if err == nil {
		return nil
	}

	var cerr *convert.Error
	if errors.As(err, &cerr) {
		return apperrors.ConversionError(source, err, cerr.Output)
	}
	return apperrors.ConversionError(source, err, "")
}

// ConvertJournalPDF downloads a published journal docx, converts it and publishes the pdf
func (s *Service) ConvertJournalPDF(ctx context.Context, fileName string) (string, error) {
	name, err := CleanFileName(fileName)
	if err != nil {
		return "", err
	}
	pdfName := strings.TrimSuffix(name, path.Ext(name)) + ".pdf"

	scope := s.temp.NewScope("convert")
	defer scope.Close()

	src, err := scope.Acquire(".docx")
	if err != nil {
		return "", apperrors.PersistError(name, err)
	}
	if err := s.publisher.Fetch(ctx, storage.AssetDocx, storage.Key(s.opts.JournalPrefix, storage.AssetDocx, name), src.Path()); err != nil {
		return "", err
	}

	dst, err := scope.Acquire(".pdf")
	if err != nil {
		return "", apperrors.PersistError(pdfName, err)
	}
	if err := s.convert(ctx, src.Path(), dst.Path()); err != nil {
		return "", err
	}

	return s.publisher.Publish(ctx, storage.AssetPDF, dst.Path(), storage.Key(s.opts.JournalPrefix, storage.AssetPDF, pdfName))
}

// DownloadURL presigns a published asset of the given kind
func (s *Service) DownloadURL(ctx context.Context, kind Kind, asset, fileName string) (string, error) {
	name, err := CleanFileName(fileName)
	if err != nil {
		return "", err
	}
	return s.publisher.Presign(ctx, asset, storage.Key(s.prefix(kind), asset, name))
}

// CleanFileName reduces a file name, key or URL to its base name
func CleanFileName(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		raw = u.Path
	} else if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}

	name := path.Base(strings.ReplaceAll(raw, `\`, "/"))
	if name == "" || name == "." || name == "/" || name == ".." {
		return "", apperrors.ValidationError("file_name", fmt.Sprintf("%q is not a file name", raw))
	}
	return name, nil
}
