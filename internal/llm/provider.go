// Package llm provides the text-completion capability used by the
// agent pipeline. The model is treated as an opaque service: given a
// role persona and a task description it returns free text.
package llm

import "context"

// Provider generates text completions.
type Provider interface {
	// Complete runs a single completion with the given system persona
	// and task prompt, returning the model's text reply.
	Complete(ctx context.Context, system, prompt string) (string, error)

	// ModelName returns the name of the completion model.
	ModelName() string
}
