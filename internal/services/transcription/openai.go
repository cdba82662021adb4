package transcription

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// AudioTranscriber is the slice of the go-openai client this backend uses
type AudioTranscriber interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

// OpenAIBackend sends each chunk to an OpenAI-compatible transcription endpoint
type OpenAIBackend struct {
	client AudioTranscriber
	model  string
}

// NewOpenAIBackend creates a backend around an existing client
func NewOpenAIBackend(client AudioTranscriber, model string) *OpenAIBackend {
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAIBackend{client: client, model: model}
}

// Name identifies the backend in logs and errors
func (b *OpenAIBackend) Name() string {
	return "openai"
}

// Transcribe uploads the file and returns the recognized text
func (b *OpenAIBackend) Transcribe(ctx context.Context, path, language string) (string, error) {
	resp, err := b.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    b.model,
		FilePath: path,
		Language: language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
