// Package narrative turns transcripts and journal notes into report prose and structured fields.
package narrative

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/oncare/care-report-api/internal/metrics"
	apperrors "github.com/oncare/care-report-api/pkg/errors"
)

// Models selects the chat model per task
type Models struct {
	Summary string
	Report  string
}

// Generator implements Narrator on top of a Completer
type Generator struct {
	completer Completer
	models    Models
	log       zerolog.Logger
}

// NewGenerator creates a new narrative generator
func NewGenerator(completer Completer, models Models, log zerolog.Logger) *Generator {
	return &Generator{completer: completer, models: models, log: log}
}

// Summarize writes a one-paragraph third-person summary of the transcript about subject.
// The reply is returned as is.
func (g *Generator) Summarize(ctx context.Context, transcript, subject string) (string, error) {
	defer metrics.ObserveStage("narrative", time.Now())

	out, err := g.completer.Complete(ctx, g.models.Summary, summaryPrompt(subject), transcript)
	if err != nil {
		return "", apperrors.ExternalServiceError("openai", err)
	}
	return out, nil
}

// RecommendAction writes a one-sentence follow-up action for the summary
func (g *Generator) RecommendAction(ctx context.Context, summary string) (string, error) {
	defer metrics.ObserveStage("narrative", time.Now())

	out, err := g.completer.Complete(ctx, g.models.Summary, actionPrompt, summary)
	if err != nil {
		return "", apperrors.ExternalServiceError("openai", err)
	}
	return out, nil
}

// ExtractFields asks for every schema key as JSON and decodes the reply into out.
// Values in fixed are requested verbatim; enforcing them is the caller's merge step.
func (g *Generator) ExtractFields(ctx context.Context, source string, schema []Field, fixed map[string]string, out any) error {
	defer metrics.ObserveStage("narrative", time.Now())

	raw, err := g.completer.Complete(ctx, g.models.Report, extractionPrompt(source, schema, fixed), "")
	if err != nil {
		return apperrors.ExternalServiceError("openai", err)
	}

	if err := json.Unmarshal([]byte(UnwrapFence(raw)), out); err != nil {
		g.log.Warn().Err(err).Int("length", len(raw)).Msg("structured reply is not valid JSON")
		return apperrors.NarrativeFormatError(err, raw)
	}
	return nil
}
