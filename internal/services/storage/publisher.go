// Package storage publishes generated documents to object storage.
package storage

import (
	"context"
	"path"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/oncare/care-report-api/internal/metrics"
	apperrors "github.com/oncare/care-report-api/pkg/errors"
	"github.com/oncare/care-report-api/pkg/tempfile"
)

// Asset kinds; each maps to a key segment and content type
const (
	AssetDocx = "docx"
	AssetPDF  = "pdf"
)

var contentTypes = map[string]string{
	AssetDocx: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	AssetPDF:  "application/pdf",
}

// Published describes one uploaded asset
type Published struct {
	Key string
	URL string
}

// Publisher uploads report assets and issues links
type Publisher struct {
	store BlobStore
	ttl   time.Duration
	log   zerolog.Logger
}

// NewPublisher creates a publisher. A non-positive ttl falls back to ten minutes.
func NewPublisher(store BlobStore, presignTTL time.Duration, log zerolog.Logger) *Publisher {
	if presignTTL <= 0 {
		presignTTL = 10 * time.Minute
	}
	return &Publisher{store: store, ttl: presignTTL, log: log}
}

// Key builds <prefix>/<asset>/<file>
func Key(prefix, asset, file string) string {
	return path.Join(prefix, asset, filepath.Base(file))
}

// Publish uploads one local file and returns its public URL
func (p *Publisher) Publish(ctx context.Context, asset, localPath, key string) (string, error) {
	start := time.Now()
	err := p.store.Upload(ctx, key, localPath, contentTypes[asset])
	metrics.ObserveStage("publish", start)
	metrics.RecordPublish(asset, err == nil)
	if err != nil {
		return "", apperrors.PublishError(asset, key, err)
	}

	p.log.Debug().Str("asset", asset).Str("key", key).Msg("asset uploaded")
	return p.store.PublicURL(key), nil
}

// PublishPair uploads the docx, then the pdf. Both local files are released only
// after both uploads succeed; on any failure both are retained for the stale sweep.
func (p *Publisher) PublishPair(ctx context.Context, prefix string, docx, pdf *tempfile.Handle, docxName, pdfName string) (Published, Published, error) {
	docxKey := Key(prefix, AssetDocx, docxName)
	pdfKey := Key(prefix, AssetPDF, pdfName)

	retain := func() {
		docx.Retain()
		pdf.Retain()
		p.log.Warn().Str("docx_key", docxKey).Str("pdf_key", pdfKey).Msg("publish failed, keeping local files")
	}

	docxURL, err := p.Publish(ctx, AssetDocx, docx.Path(), docxKey)
	if err != nil {
		retain()
		return Published{}, Published{}, err
	}

	pdfURL, err := p.Publish(ctx, AssetPDF, pdf.Path(), pdfKey)
	if err != nil {
		retain()
		return Published{}, Published{}, err
	}

	docx.Release()
	pdf.Release()

	return Published{Key: docxKey, URL: docxURL}, Published{Key: pdfKey, URL: pdfURL}, nil
}

// Presign returns a temporary download link for key
func (p *Publisher) Presign(ctx context.Context, asset, key string) (string, error) {
	u, err := p.store.Presign(ctx, key, p.ttl)
	if err != nil {
		return "", apperrors.PublishError(asset, key, err)
	}
	return u, nil
}

// Fetch downloads key into a local file
func (p *Publisher) Fetch(ctx context.Context, asset, key, localPath string) error {
	if err := p.store.Download(ctx, key, localPath); err != nil {
		return apperrors.PublishError(asset, key, err)
	}
	return nil
}
