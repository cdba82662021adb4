package narrative

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNoChoices is returned when the model answers with an empty choice list
var ErrNoChoices = errors.New("completion returned no choices")

// ChatClient is the slice of the go-openai client used here
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAICompleter implements Completer with the chat completions API
type OpenAICompleter struct {
	client ChatClient
}

// NewOpenAICompleter wraps a go-openai client
func NewOpenAICompleter(client ChatClient) *OpenAICompleter {
	return &OpenAICompleter{client: client}
}

// Complete issues a single completion. An empty userPrompt sends only the system message.
func (c *OpenAICompleter) Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}
	if userPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userPrompt})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
