package transcription

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/oncare/care-report-api/internal/metrics"
	"github.com/oncare/care-report-api/pkg/audio"
	apperrors "github.com/oncare/care-report-api/pkg/errors"
	"github.com/oncare/care-report-api/pkg/tempfile"
)

// Temp file kinds owned by this service
const (
	KindAudio = "audio"
	KindChunk = "chunk"
)

// DefaultFormat is the container suffix used when the request does not declare one
const DefaultFormat = ".webm"

// Options configures the chunked transcription pipeline
type Options struct {
	Language      string
	ChunkDuration time.Duration
	Concurrency   int
	SampleRate    int
}

// Service implements Transcriber
type Service struct {
	temp    *tempfile.Manager
	decoder Decoder
	backend Backend
	opts    Options
	log     zerolog.Logger
}

// NewService creates a new transcription service
func NewService(temp *tempfile.Manager, decoder Decoder, backend Backend, opts Options, log zerolog.Logger) *Service {
	if opts.ChunkDuration <= 0 {
		opts.ChunkDuration = 20 * time.Second
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 16000
	}
	return &Service{
		temp:    temp,
		decoder: decoder,
		backend: backend,
		opts:    opts,
		log:     log,
	}
}

// Transcribe persists the upload, splits it into chunks, transcribes each and joins the text in chunk order.
// Every temp file created here is gone when it returns.
func (s *Service) Transcribe(ctx context.Context, raw []byte, format string) (text string, err error) {
	if len(raw) == 0 {
		metrics.RecordTranscription(metrics.StatusEmpty)
		return "", apperrors.EmptyInput()
	}

	defer func() {
		switch {
		case err == nil:
			metrics.RecordTranscription(metrics.StatusSuccess)
		case apperrors.Is(err, apperrors.ErrCodeEmptyTranscript):
			metrics.RecordTranscription(metrics.StatusEmpty)
		default:
			metrics.RecordTranscription(metrics.StatusError)
		}
	}()

	audioScope := s.temp.NewScope(KindAudio)
	defer audioScope.Close()

	path, err := s.persist(audioScope, raw, format)
	if err != nil {
		return "", err
	}

	start := time.Now()
	pcm, err := s.decoder.Decode(ctx, path, s.opts.SampleRate)
	metrics.ObserveStage("decode", start)
	if err != nil {
		return "", apperrors.TranscriptionError(err)
	}

	seq := audio.Split(pcm, s.opts.ChunkDuration)
	s.log.Debug().
		Str("scope", audioScope.Name()).
		Dur("audio", pcm.Duration()).
		Int("chunks", seq.Len()).
		Msg("transcribing audio")

	if seq.Len() == 0 {
		return "", apperrors.EmptyTranscript(0)
	}

	chunkScope := s.temp.NewScope(KindChunk)
	defer chunkScope.Close()

	texts := make([]string, seq.Len())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, chunk := range seq.All() {
		g.Go(func() error {
			t, err := s.transcribeChunk(gctx, chunkScope, chunk)
			if err != nil {
				return err
			}
			texts[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", apperrors.TranscriptionError(err)
	}

	text = join(texts)
	if text == "" {
		return "", apperrors.EmptyTranscript(seq.Len())
	}
	return text, nil
}

// persist writes the raw upload and checks it actually landed on disk
func (s *Service) persist(scope *tempfile.Scope, raw []byte, format string) (string, error) {
	h, err := scope.Acquire(normalizeFormat(format))
	if err != nil {
		return "", apperrors.StorageError("", err)
	}

	f, err := os.OpenFile(h.Path(), os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", apperrors.StorageError(h.Path(), err)
	}
	if _, err := f.Write(raw); err != nil {
		f.Close()
		return "", apperrors.StorageError(h.Path(), err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return "", apperrors.StorageError(h.Path(), err)
	}
	if err := f.Close(); err != nil {
		return "", apperrors.StorageError(h.Path(), err)
	}

	info, err := os.Stat(h.Path())
	if err != nil {
		return "", apperrors.StorageError(h.Path(), err)
	}
	if info.Size() == 0 {
		return "", apperrors.StorageError(h.Path(), fmt.Errorf("file is empty after write"))
	}
	return h.Path(), nil
}

func (s *Service) transcribeChunk(ctx context.Context, scope *tempfile.Scope, chunk audio.Chunk) (string, error) {
	h, err := scope.Acquire(".wav")
	if err != nil {
		return "", fmt.Errorf("chunk %d: %w", chunk.Index, err)
	}
	defer h.Release()

	f, err := os.OpenFile(h.Path(), os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("chunk %d: %w", chunk.Index, err)
	}
	if err := audio.WriteWAV(f, chunk); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("chunk %d: %w", chunk.Index, err)
	}

	start := time.Now()
	text, err := s.backend.Transcribe(ctx, h.Path(), s.opts.Language)
	metrics.ObserveStage("transcribe_chunk", start)
	if err != nil {
		metrics.RecordChunk(metrics.StatusError)
		return "", fmt.Errorf("chunk %d via %s: %w", chunk.Index, s.backend.Name(), err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		metrics.RecordChunk(metrics.StatusEmpty)
	} else {
		metrics.RecordChunk(metrics.StatusSuccess)
	}
	return text, nil
}

// join concatenates non-empty texts with single spaces, in order
func join(texts []string) string {
	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// normalizeFormat turns "webm", ".webm" or "" into a file suffix
func normalizeFormat(format string) string {
	format = strings.TrimSpace(strings.ToLower(format))
	if format == "" {
		return DefaultFormat
	}
	if !strings.HasPrefix(format, ".") {
		format = "." + format
	}
	if strings.ContainsAny(format, `/\`) {
		return DefaultFormat
	}
	return format
}

// FormatFromContentType maps a request Content-Type to a container suffix
func FormatFromContentType(contentType string) string {
	mediaType, _, _ := strings.Cut(strings.ToLower(contentType), ";")
	switch strings.TrimSpace(mediaType) {
	case "audio/wav", "audio/x-wav", "audio/wave":
		return ".wav"
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/ogg":
		return ".ogg"
	case "audio/mp4", "audio/m4a", "audio/x-m4a":
		return ".m4a"
	case "audio/flac":
		return ".flac"
	default:
		return DefaultFormat
	}
}
