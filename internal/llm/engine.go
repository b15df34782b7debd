package llm

import "context"

// Params are the sampling parameters sent with a completion request.
type Params struct {
	MaxTokens     int
	Temperature   float64
	TopP          float64
	RepeatPenalty float64
	Stop          []string
}

// DefaultParams returns the sampling parameters used for chat turns.
func DefaultParams() Params {
	return Params{
		MaxTokens:     384,
		Temperature:   0.7,
		TopP:          0.9,
		RepeatPenalty: 1.1,
		Stop:          []string{"</s>", "[INST]"},
	}
}

// Completion is the result of one generation.
type Completion struct {
	Text       string
	TokensUsed int
}

// Engine abstracts the model backend. Implementations must be safe for
// concurrent callers; how calls are serialized against a shared model
// instance is up to the implementation.
type Engine interface {
	Complete(ctx context.Context, prompt string, params Params) (*Completion, error)
}
