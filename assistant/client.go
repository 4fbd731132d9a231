package assistant

import (
	"context"
	"errors"
)

// CompletionClient abstracts the hosted text-generation endpoint: prompt in,
// generated text out. Everything beyond the two known failure kinds is
// treated as transient/unknown.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Settings configure a concrete client.
type Settings struct {
	Model   string
	APIKey  string
	BaseURL string
}

// The two failure kinds callers are allowed to distinguish. Invalid
// credential forces the client to drop its stored key and re-prompt;
// quota exceeded is informational.
var (
	ErrInvalidCredential = errors.New("completion: invalid credential")
	ErrQuotaExceeded     = errors.New("completion: quota exceeded")
)
