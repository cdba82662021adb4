package transcription

import (
	"context"

	"github.com/oncare/care-report-api/pkg/audio"
)

// Transcriber turns an uploaded audio buffer into text
type Transcriber interface {
	Transcribe(ctx context.Context, raw []byte, format string) (string, error)
}

// Backend transcribes one audio file on disk. Implementations must be safe for concurrent use.
type Backend interface {
	Transcribe(ctx context.Context, path, language string) (string, error)
	Name() string
}

// Decoder decodes a container file to mono PCM
type Decoder interface {
	Decode(ctx context.Context, path string, sampleRate int) (audio.PCM, error)
}
