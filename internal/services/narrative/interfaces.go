package narrative

import "context"

// Completer sends one system+user prompt pair to a chat model and returns the reply text
type Completer interface {
	Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
}

// Narrator produces the free-text and structured parts of a report
type Narrator interface {
	Summarize(ctx context.Context, transcript, subject string) (string, error)
	RecommendAction(ctx context.Context, summary string) (string, error)
	ExtractFields(ctx context.Context, source string, schema []Field, fixed map[string]string, out any) error
}
