package types

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/oncare/care-report-api/internal/services/report"
	"github.com/oncare/care-report-api/internal/services/transcription"
)

// HealthCheck probes one external collaborator
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Transcriber  transcription.Transcriber
	Reports      report.Generator
	HealthChecks []HealthCheck
	Version      string
	Logger       zerolog.Logger
}
