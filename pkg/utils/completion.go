package utils

import "context"

// CompletionClientInterface is the single capability the chat flow needs
// from an AI provider: prompt in, text out.
type CompletionClientInterface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
