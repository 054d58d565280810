package ai

import "context"

// Analyzer produces a model-written analysis from a system instruction
// and a user prompt.
type Analyzer interface {
	Analyze(ctx context.Context, system, prompt string) (string, error)
}

// Noop is an Analyzer that returns nothing, for offline use and tests.
type Noop struct{}

func (Noop) Analyze(ctx context.Context, system, prompt string) (string, error) {
	return "", nil
}
